package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/pkg/analyzer/statemachine"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:     "states [path...]",
	Aliases: []string{"fsm"},
	Short:   "Reconstruct implicit state machines from integer variables",
	RunE:    runStates,
}

func init() {
	rootCmd.AddCommand(statesCmd)
}

// stateReport pairs a script path with its reconstructed machines and
// their lint findings.
type stateReport struct {
	Path     string                 `json:"path"`
	Machines []statemachine.Machine `json:"machines"`
	Findings []statemachine.Finding `json:"findings,omitempty"`
}

func runStates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	files, err := loadScripts(cfg, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No mission scripts found")
		return nil
	}

	formatter, err := output.NewFormatter(output.ParseFormat(getFormat(cmd)), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var reports []stateReport
	var rows [][]string
	machines, findings := 0, 0
	for _, f := range files {
		detected := statemachine.Detect(f.Text)
		report := stateReport{Path: f.Path, Machines: detected}
		for i := range detected {
			m := &detected[i]
			report.Findings = append(report.Findings, statemachine.Lint(m)...)
			rows = append(rows, []string{
				fmt.Sprintf("%s:%d", f.Path, m.Line),
				m.Variable,
				stateNames(m),
				fmt.Sprintf("%d", len(m.Transitions)),
				m.States[m.Initial],
			})
		}
		machines += len(detected)
		findings += len(report.Findings)
		reports = append(reports, report)
	}

	table := output.NewTable(
		"State Machines",
		[]string{"Location", "Variable", "States", "Transitions", "Initial"},
		rows,
		[]string{
			fmt.Sprintf("Machines: %d", machines),
			fmt.Sprintf("Findings: %d", findings),
		},
		reports,
	)
	if err := formatter.Output(table); err != nil {
		return err
	}

	if formatter.Format() == output.FormatText {
		for _, r := range reports {
			for _, fd := range r.Findings {
				color.Yellow("%s:%d: state %s of %q is %s",
					r.Path, fd.Line, fd.Name, fd.Variable, strings.ReplaceAll(string(fd.Kind), "_", " "))
			}
		}
	}
	return nil
}

// stateNames renders a machine's states in numeric order.
func stateNames(m *statemachine.Machine) string {
	keys := make([]int, 0, len(m.States))
	for k := range m.States {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d=%s", k, m.States[k])
	}
	return truncate(strings.Join(parts, " "), 50)
}
