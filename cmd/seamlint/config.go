package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml"
	"github.com/seamlint/seamlint/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validates a seamlint configuration file for syntax errors.

Examples:
  seamlint config validate                      # Validates default config locations
  seamlint config validate -c seamlint.toml     # Validates specific file`,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Shows the merged configuration from defaults and config file.

Examples:
  seamlint config show                  # Show effective config
  seamlint config show -c seamlint.toml # Show config from specific file`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath returns the explicit --config path or the first config
// file found in the default search locations.
func resolveConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.FindDefault()
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	if path == "" {
		color.Yellow("No config file found. Default configuration is valid.")
		return nil
	}

	if _, err := config.Load(path); err != nil {
		color.Red("Configuration validation failed:")
		fmt.Printf("  - %s\n", err)
		return err
	}

	color.Green("Configuration valid: %s", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		fmt.Printf("# Configuration from: %s\n\n", path)
	} else {
		fmt.Println("# Default configuration (no config file found)")
	}

	content, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(content))

	return nil
}
