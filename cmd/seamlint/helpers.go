package main

import (
	"fmt"
	"os"

	"github.com/seamlint/seamlint/internal/progress"
	scannerSvc "github.com/seamlint/seamlint/internal/service/scanner"
	"github.com/seamlint/seamlint/pkg/config"
	"github.com/seamlint/seamlint/pkg/script"
	"github.com/spf13/cobra"
)

// scriptFile is one loaded mission script, reduced to its script section.
type scriptFile struct {
	Path string
	Text string
}

// getPaths returns paths from args, defaulting to ["."]
func getPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// getFormat returns the format flag value from the command.
func getFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	return format
}

// getOutputFile returns the output file path from the command.
func getOutputFile(cmd *cobra.Command) string {
	outputFile, _ := cmd.Flags().GetString("output")
	return outputFile
}

// loadConfig resolves configuration from --config or the default search
// locations.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(), nil
}

// loadScripts discovers and reads mission scripts from the given paths.
// Full level files are reduced to their embedded script section with line
// numbers preserved.
func loadScripts(cfg *config.Config, args []string) ([]scriptFile, error) {
	scanSvc := scannerSvc.New(scannerSvc.WithConfig(cfg))
	scanResult, err := scanSvc.ScanPaths(getPaths(args))
	if err != nil {
		return nil, err
	}

	tracker := progress.NewTracker("Reading scripts...", len(scanResult.Files))
	files := make([]scriptFile, 0, len(scanResult.Files))
	for _, path := range scanResult.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, scriptFile{
			Path: path,
			Text: script.ExtractScriptSection(string(data)),
		})
		tracker.Tick()
	}
	tracker.FinishSuccess()
	return files, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
