package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/internal/service/analysis"
	"github.com/seamlint/seamlint/pkg/analyzer/performance"
	"github.com/spf13/cobra"
)

var perfCmd = &cobra.Command{
	Use:     "perf [path...]",
	Aliases: []string{"performance"},
	Short:   "Estimate runtime load from event, timer, and spawner counts",
	RunE:    runPerf,
}

func init() {
	rootCmd.AddCommand(perfCmd)
}

// perfReport pairs a script path with its performance metrics.
type perfReport struct {
	Path    string               `json:"path"`
	Metrics *performance.Metrics `json:"metrics"`
}

func runPerf(cmd *cobra.Command, args []string) error {
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

	weights := analysis.New(analysis.WithConfig(cfg)).Weights()

	var reports []perfReport
	var rows [][]string
	for _, f := range files {
		m := performance.AnalyzeWith(f.Text, weights)
		reports = append(reports, perfReport{Path: f.Path, Metrics: m})

		load := string(m.Load)
		switch m.Load {
		case performance.LoadCritical:
			load = color.RedString(load)
		case performance.LoadHigh:
			load = color.YellowString(load)
		case performance.LoadMedium:
			load = color.CyanString(load)
		}
		rows = append(rows, []string{
			f.Path,
			fmt.Sprintf("%d", m.Events),
			fmt.Sprintf("%d", m.ConditionComplexity),
			fmt.Sprintf("%d", m.Timers),
			fmt.Sprintf("%d", m.Spawners),
			fmt.Sprintf("%.1f", m.Score),
			load,
		})
	}

	table := output.NewTable(
		"Performance Estimate",
		[]string{"File", "Events", "Complexity", "Timers", "Spawners", "Score", "Load"},
		rows,
		nil,
		reports,
	)
	if err := formatter.Output(table); err != nil {
		return err
	}

	if formatter.Format() == output.FormatText {
		for _, r := range reports {
			for _, s := range r.Metrics.Suggestions {
				fmt.Fprintf(formatter.Writer(), "%s: %s\n", r.Path, s)
			}
		}
	}
	return nil
}
