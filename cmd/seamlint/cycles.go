package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/pkg/analyzer/cycles"
	"github.com/spf13/cobra"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles [path...]",
	Short: "Detect circular event dependencies",
	RunE:  runCycles,
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
}

// cycleReport pairs a script path with its detected cycles.
type cycleReport struct {
	Path   string         `json:"path"`
	Cycles []cycles.Cycle `json:"cycles"`
}

func runCycles(cmd *cobra.Command, args []string) error {
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

	var reports []cycleReport
	var rows [][]string
	total := 0
	for _, f := range files {
		found := cycles.Detect(f.Text)
		reports = append(reports, cycleReport{Path: f.Path, Cycles: found})
		for _, c := range found {
			rows = append(rows, []string{
				fmt.Sprintf("%s:%d", f.Path, c.Line),
				strings.Join(c.Events, " -> "),
			})
		}
		total += len(found)
	}

	table := output.NewTable(
		"Circular Event Dependencies",
		[]string{"Location", "Cycle"},
		rows,
		[]string{fmt.Sprintf("Total: %d", total)},
		reports,
	)
	if err := formatter.Output(table); err != nil {
		return err
	}

	if total > 0 {
		return fmt.Errorf("found %d circular dependencies", total)
	}
	return nil
}
