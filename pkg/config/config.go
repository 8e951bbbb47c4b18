// Package config loads seamlint configuration from TOML, YAML or JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for seamlint.
type Config struct {
	// Analysis toggles individual detectors.
	Analysis AnalysisConfig `koanf:"analysis"`

	// Performance tunes the cost model of the performance analyzer.
	Performance PerformanceConfig `koanf:"performance"`

	// Exclude filters mission files during directory scans.
	Exclude ExcludeConfig `koanf:"exclude"`

	// Output controls rendering.
	Output OutputConfig `koanf:"output"`
}

// AnalysisConfig controls which detectors run during a check.
type AnalysisConfig struct {
	Mutex        bool `koanf:"mutex"`
	StateMachine bool `koanf:"state_machine"`
	Resources    bool `koanf:"resources"`
	Performance  bool `koanf:"performance"`
	Cycles       bool `koanf:"cycles"`
	Deadlock     bool `koanf:"deadlock"`
}

// PerformanceConfig carries the cost weights and load boundaries.
type PerformanceConfig struct {
	EventWeight     float64 `koanf:"event_weight"`
	ConditionWeight float64 `koanf:"condition_weight"`
	TimerWeight     float64 `koanf:"timer_weight"`
	SpawnerWeight   float64 `koanf:"spawner_weight"`
	MediumScore     float64 `koanf:"medium_score"`
	HighScore       float64 `koanf:"high_score"`
	CriticalScore   float64 `koanf:"critical_score"`
}

// ExcludeConfig defines file exclusion rules for directory scans.
type ExcludeConfig struct {
	Patterns   []string `koanf:"patterns"`
	Dirs       []string `koanf:"dirs"`
	Extensions []string `koanf:"extensions"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown, yaml
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with all detectors enabled and the
// standard cost model.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Mutex:        true,
			StateMachine: true,
			Resources:    true,
			Performance:  true,
			Cycles:       true,
			Deadlock:     true,
		},
		Performance: PerformanceConfig{
			EventWeight:     1,
			ConditionWeight: 0.5,
			TimerWeight:     2,
			SpawnerWeight:   3,
			MediumScore:     20,
			HighScore:       50,
			CriticalScore:   100,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.backup.dat",
			},
			Dirs: []string{
				".git",
				".seamlint",
				"backups",
			},
			Extensions: []string{".dat", ".mms"},
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file, picking the parser by extension.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindDefault returns the first config file found in the standard search
// locations, or "" when none exists.
func FindDefault() string {
	configNames := []string{
		"seamlint.toml",
		"seamlint.yaml",
		"seamlint.yml",
		"seamlint.json",
		".seamlint.toml",
		".seamlint.yaml",
		".seamlint.yml",
		".seamlint.json",
	}
	searchDirs := []string{".", ".seamlint"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// LoadOrDefault tries standard config locations and falls back to defaults.
func LoadOrDefault() *Config {
	if path := FindDefault(); path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return DefaultConfig()
}

// ShouldExclude checks if a path should be skipped during a scan.
func (c *Config) ShouldExclude(path string) bool {
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// IncludesExtension checks if a file carries a mission-script extension.
func (c *Config) IncludesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range c.Exclude.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
