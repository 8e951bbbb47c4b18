package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/pkg/analyzer/resources"
	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:     "resources [path...]",
	Aliases: []string{"res"},
	Short:   "Track resource sources, sinks, and balances",
	RunE:    runResources,
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}

// resourceReport pairs a script path with its per-resource flows.
type resourceReport struct {
	Path  string           `json:"path"`
	Flows []resources.Flow `json:"flows"`
}

func runResources(cmd *cobra.Command, args []string) error {
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

	var reports []resourceReport
	var rows [][]string
	for _, f := range files {
		flows := resources.Analyze(f.Text)
		reports = append(reports, resourceReport{Path: f.Path, Flows: flows})
		for _, flow := range flows {
			balance := fmt.Sprintf("%d", flow.Balance)
			if flow.Balance < 0 {
				balance = color.RedString(balance)
			}
			rows = append(rows, []string{
				f.Path,
				string(flow.Resource),
				fmt.Sprintf("%d", len(flow.Sources)),
				fmt.Sprintf("%d", len(flow.Sinks)),
				balance,
			})
		}
	}

	table := output.NewTable(
		"Resource Flow",
		[]string{"File", "Resource", "Sources", "Sinks", "Balance"},
		rows,
		nil,
		reports,
	)
	return formatter.Output(table)
}
