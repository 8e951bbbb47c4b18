// Package diag defines the flat diagnostic records every detector's findings
// are merged into.
package diag

import "sort"

// Severity is the diagnostic severity level.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// String returns the string representation.
func (s Severity) String() string {
	return string(s)
}

// Diagnostic is one finding, line-tagged and categorized for the validator
// orchestrator. Section is always "script" for this analyzer.
type Diagnostic struct {
	Message  string   `json:"message"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Severity Severity `json:"severity"`
	Section  string   `json:"section"`
}

// New creates a script-section diagnostic.
func New(severity Severity, line int, message string) Diagnostic {
	return Diagnostic{
		Message:  message,
		Line:     line,
		Severity: severity,
		Section:  "script",
	}
}

// Sort orders diagnostics by line, severity (errors first), then message.
// Sorting is stable across runs for identical input.
func Sort(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Line != ds[j].Line {
			return ds[i].Line < ds[j].Line
		}
		if ds[i].Severity != ds[j].Severity {
			return ds[i].Severity == SeverityError
		}
		return ds[i].Message < ds[j].Message
	})
}

// Count tallies diagnostics by severity.
func Count(ds []Diagnostic) (errors, warnings int) {
	for _, d := range ds {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
