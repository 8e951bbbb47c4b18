// Package scanner locates mission script files under the given paths.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/seamlint/seamlint/pkg/config"
)

// ScanResult contains the files found by a scan.
type ScanResult struct {
	Files []string
}

// Service provides mission-file discovery.
type Service struct {
	config *config.Config
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// New creates a new scanner service.
func New(opts ...Option) *Service {
	s := &Service{config: config.LoadOrDefault()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanPaths walks the given paths and returns every mission script file.
// Explicit file arguments are always included regardless of extension;
// directories are filtered by the configured extensions and exclusions.
// Results are sorted for deterministic processing order.
func (s *Service) ScanPaths(paths []string) (*ScanResult, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if s.config.ShouldExclude(p + string(filepath.Separator)) {
					return filepath.SkipDir
				}
				return nil
			}
			if s.config.ShouldExclude(p) || !s.config.IncludesExtension(p) {
				return nil
			}
			add(p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
	}

	sort.Strings(files)
	return &ScanResult{Files: files}, nil
}
