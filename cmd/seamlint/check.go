package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/seamlint/seamlint/internal/output"
	"github.com/seamlint/seamlint/internal/progress"
	"github.com/seamlint/seamlint/internal/service/analysis"
	"github.com/seamlint/seamlint/pkg/diag"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:     "check [path...]",
	Aliases: []string{"lint"},
	Short:   "Run all analyzers and report diagnostics",
	Long: `Runs every enabled analyzer over the given scripts and merges the
findings into one diagnostic list. Exits non-zero when any error-severity
diagnostic is found.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// fileDiagnostics pairs a script path with its merged diagnostics.
type fileDiagnostics struct {
	Path        string            `json:"path"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	Errors      int               `json:"errors"`
	Warnings    int               `json:"warnings"`
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	startTime := time.Now()
	tracker := progress.NewTracker("Analyzing scripts...", len(files))
	svc := analysis.New(analysis.WithConfig(cfg))

	var results []fileDiagnostics
	totalErrors, totalWarnings := 0, 0
	for _, f := range files {
		result, err := svc.AnalyzeScript(cmd.Context(), f.Text)
		if err != nil {
			return fmt.Errorf("analysis of %s failed: %w", f.Path, err)
		}
		errs, warns := diag.Count(result.Diagnostics)
		totalErrors += errs
		totalWarnings += warns
		results = append(results, fileDiagnostics{
			Path:        f.Path,
			Diagnostics: result.Diagnostics,
			Errors:      errs,
			Warnings:    warns,
		})
		tracker.Tick()
	}
	tracker.FinishSuccess()

	if verbose {
		fmt.Printf("Analyzed %d scripts in %s\n\n", len(files), time.Since(startTime).Round(time.Millisecond))
	}

	formatter, err := output.NewFormatter(output.ParseFormat(getFormat(cmd)), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, fr := range results {
		for _, d := range fr.Diagnostics {
			sev := string(d.Severity)
			switch d.Severity {
			case diag.SeverityError:
				sev = color.RedString(sev)
			case diag.SeverityWarning:
				sev = color.YellowString(sev)
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s:%d", fr.Path, d.Line),
				sev,
				truncate(d.Message, 80),
			})
		}
	}

	table := output.NewTable(
		"Diagnostics",
		[]string{"Location", "Severity", "Message"},
		rows,
		[]string{
			fmt.Sprintf("Errors: %d", totalErrors),
			fmt.Sprintf("Warnings: %d", totalWarnings),
			fmt.Sprintf("Files: %d", len(results)),
		},
		results,
	)

	if err := formatter.Output(table); err != nil {
		return err
	}

	if totalErrors > 0 {
		return fmt.Errorf("found %d error(s)", totalErrors)
	}
	return nil
}
