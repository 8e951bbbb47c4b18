package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/pkg/analyzer/deadlock"
	"github.com/spf13/cobra"
)

var deadlockCmd = &cobra.Command{
	Use:   "deadlock [path...]",
	Short: "Detect deadlock risks between events sharing mutable state",
	RunE:  runDeadlock,
}

func init() {
	rootCmd.AddCommand(deadlockCmd)
}

// deadlockReport pairs a script path with its deadlock risks.
type deadlockReport struct {
	Path  string          `json:"path"`
	Risks []deadlock.Risk `json:"risks"`
}

func runDeadlock(cmd *cobra.Command, args []string) error {
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

	var reports []deadlockReport
	var rows [][]string
	high := 0
	for _, f := range files {
		risks := deadlock.Detect(f.Text)
		reports = append(reports, deadlockReport{Path: f.Path, Risks: risks})
		for _, r := range risks {
			level := string(r.Level)
			switch r.Level {
			case deadlock.RiskHigh:
				level = color.RedString(level)
				high++
			case deadlock.RiskMedium:
				level = color.YellowString(level)
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s:%d", f.Path, r.Line),
				fmt.Sprintf("%s / %s", r.Events[0], r.Events[1]),
				truncate(strings.Join(r.SharedResources, ", "), 40),
				level,
			})
		}
	}

	table := output.NewTable(
		"Deadlock Risks",
		[]string{"Location", "Events", "Shared State", "Risk"},
		rows,
		[]string{
			fmt.Sprintf("Total: %d", len(rows)),
			fmt.Sprintf("High: %d", high),
		},
		reports,
	)
	if err := formatter.Output(table); err != nil {
		return err
	}

	if high > 0 {
		return fmt.Errorf("found %d high-risk deadlocks", high)
	}
	return nil
}
