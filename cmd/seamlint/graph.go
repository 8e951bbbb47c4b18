package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/pkg/analyzer/eventgraph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [path...]",
	Short: "Build the event dependency graph",
	Long: `Builds the directed graph of event chain dependencies: bare
invocations, call directives, and trigger targets.

Examples:
  seamlint graph level.dat
  seamlint graph --mermaid level.dat > graph.mmd`,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().Bool("mermaid", false, "Output a Mermaid diagram instead of a table")

	rootCmd.AddCommand(graphCmd)
}

// graphReport is the serializable graph result for one script.
type graphReport struct {
	Path    string              `json:"path"`
	Graph   *eventgraph.Graph   `json:"graph"`
	Metrics *eventgraph.Metrics `json:"metrics"`
}

func runGraph(cmd *cobra.Command, args []string) error {
	mermaid, _ := cmd.Flags().GetBool("mermaid")

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

	var reports []graphReport
	for _, f := range files {
		g := eventgraph.Build(f.Text)
		reports = append(reports, graphReport{
			Path:    f.Path,
			Graph:   g,
			Metrics: eventgraph.Summarize(g),
		})
	}

	if mermaid {
		for _, r := range reports {
			if len(reports) > 1 {
				fmt.Fprintf(formatter.Writer(), "%% %s\n", r.Path)
			}
			fmt.Fprintln(formatter.Writer(), eventgraph.ToMermaid(r.Graph))
		}
		return nil
	}

	var rows [][]string
	totalEdges := 0
	for _, r := range reports {
		for _, e := range r.Graph.Edges {
			rows = append(rows, []string{
				fmt.Sprintf("%s:%d", r.Path, e.Line),
				e.From,
				e.To,
				string(e.Kind),
			})
		}
		totalEdges += len(r.Graph.Edges)
	}

	table := output.NewTable(
		"Event Dependency Graph",
		[]string{"Location", "From", "To", "Kind"},
		rows,
		[]string{fmt.Sprintf("Edges: %d", totalEdges)},
		reports,
	)
	if err := formatter.Output(table); err != nil {
		return err
	}

	if formatter.Format() == output.FormatText {
		for _, r := range reports {
			m := r.Metrics
			fmt.Fprintf(formatter.Writer(),
				"%s: %d events, %d edges, avg degree %.2f, density %.3f, %d SCCs, cyclic=%t\n",
				r.Path, m.Events, m.Edges, m.AvgDegree, m.Density, m.StronglyConnected, m.Cyclic)
		}
	}
	return nil
}
