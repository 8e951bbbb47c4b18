package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/pkg/analyzer/mutex"
	"github.com/spf13/cobra"
)

var mutexCmd = &cobra.Command{
	Use:   "mutex [path...]",
	Short: "Detect synchronization idioms (cooldowns, latches, exclusive states)",
	RunE:  runMutex,
}

func init() {
	rootCmd.AddCommand(mutexCmd)
}

// mutexReport pairs a script path with its detected patterns.
type mutexReport struct {
	Path     string          `json:"path"`
	Patterns []mutex.Pattern `json:"patterns"`
}

func runMutex(cmd *cobra.Command, args []string) error {
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

	var reports []mutexReport
	var rows [][]string
	total := 0
	for _, f := range files {
		patterns := mutex.Detect(f.Text)
		reports = append(reports, mutexReport{Path: f.Path, Patterns: patterns})
		for _, p := range patterns {
			rows = append(rows, []string{
				fmt.Sprintf("%s:%d", f.Path, p.Line),
				p.Variable,
				string(p.Kind),
				truncate(strings.Join(p.RelatedEvents, ", "), 60),
			})
		}
		total += len(patterns)
	}

	table := output.NewTable(
		"Synchronization Patterns",
		[]string{"Location", "Variable", "Kind", "Related Events"},
		rows,
		[]string{fmt.Sprintf("Total: %d", total)},
		reports,
	)
	return formatter.Output(table)
}
