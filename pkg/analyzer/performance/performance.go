// Package performance scores a script's runtime cost from event, timer and
// spawner counts plus condition branching complexity.
package performance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seamlint/seamlint/pkg/analyzer"
	"github.com/seamlint/seamlint/pkg/script"
)

var _ analyzer.TextAnalyzer[*Metrics] = analyzer.Func[*Metrics](Analyze)

var (
	spawnerRe  = regexp.MustCompile(`\b(spawncap|addrandomspawn)\s*:`)
	boolOpRe   = regexp.MustCompile(`\b(and|or)\b`)
	whenCondRe = regexp.MustCompile(`\bwhen\s*\(([^)]*)\)`)
)

// Suggestion thresholds, independent of the load bucket.
const (
	suggestComplexity = 50
	suggestTimers     = 10
	suggestSpawners   = 5
	suggestEvents     = 100
)

// Analyze computes performance metrics with the default cost model.
func Analyze(text string) *Metrics {
	return AnalyzeWith(text, DefaultWeights())
}

// AnalyzeWith computes performance metrics with a custom cost model.
// A single linear pass counts event openers, timer declarations, spawn
// configuration lines, and per-condition branching.
func AnalyzeWith(text string, w Weights) *Metrics {
	m := &Metrics{}

	for _, raw := range script.SplitLines(text) {
		line := script.StripComment(raw)

		if _, ok := script.Opener(line); ok {
			m.Events++
		}
		if d := declaredTimer(line); d {
			m.Timers++
		}
		if spawnerRe.MatchString(line) {
			m.Spawners++
		}
		for _, cm := range whenCondRe.FindAllStringSubmatch(line, -1) {
			m.ConditionComplexity += 1 + len(boolOpRe.FindAllString(cm[1], -1))
		}
	}

	m.Score = float64(m.Events)*w.Event +
		float64(m.ConditionComplexity)*w.Condition +
		float64(m.Timers)*w.Timer +
		float64(m.Spawners)*w.Spawner

	switch {
	case m.Score < w.MediumScore:
		m.Load = LoadLow
	case m.Score < w.HighScore:
		m.Load = LoadMedium
	case m.Score < w.CriticalScore:
		m.Load = LoadHigh
	default:
		m.Load = LoadCritical
	}

	m.Suggestions = suggestions(m)
	return m
}

// declaredTimer reports whether the line declares a timer variable.
func declaredTimer(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "timer ") {
		return false
	}
	return strings.Contains(trimmed, "=")
}

// suggestions emits remediation hints keyed off which counters exceeded
// their fixed thresholds.
func suggestions(m *Metrics) []string {
	var out []string
	if m.ConditionComplexity > suggestComplexity {
		out = append(out, fmt.Sprintf("condition complexity %d is high; consolidate overlapping when() guards", m.ConditionComplexity))
	}
	if m.Timers > suggestTimers {
		out = append(out, fmt.Sprintf("%d timers declared; share timers between events where possible", m.Timers))
	}
	if m.Spawners > suggestSpawners {
		out = append(out, fmt.Sprintf("%d spawner configurations; reduce concurrent spawners to limit entity churn", m.Spawners))
	}
	if m.Events > suggestEvents {
		out = append(out, fmt.Sprintf("%d events defined; merge rarely fired events to shrink the trigger table", m.Events))
	}
	return out
}
