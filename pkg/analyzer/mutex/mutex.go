// Package mutex classifies variables that serve as ad hoc synchronization
// primitives: global cooldowns, one-time-event flags, and exclusive
// multi-state guards. Each idiom has its own whole-text pass; a variable
// matching more than one is reported once, by an explicit priority table.
package mutex

import (
	"regexp"
	"sort"
	"strings"

	"github.com/seamlint/seamlint/pkg/analyzer"
	"github.com/seamlint/seamlint/pkg/script"
)

var _ analyzer.TextAnalyzer[[]Pattern] = analyzer.Func[[]Pattern](Detect)

// Detect classifies every variable in the script text. Results are ordered
// by declaration line so repeated runs yield identical output.
func Detect(text string) []Pattern {
	listing := script.Scan(text)
	lines := script.SplitLines(text)

	best := make(map[string]Kind)
	record := func(name string, kind Kind) {
		cur, ok := best[name]
		if !ok || priority[kind] < priority[cur] {
			best[name] = kind
		}
	}

	for name := range listing.Variables {
		if isGlobalCooldown(name, lines) {
			record(name, KindGlobalCooldown)
		}
		if isOneTimeEvent(listing.Variables[name], lines) {
			record(name, KindOneTimeEvent)
		}
		if isExclusiveState(listing.Variables[name], lines) {
			record(name, KindExclusiveState)
		}
	}

	patterns := make([]Pattern, 0, len(best))
	for name, kind := range best {
		patterns = append(patterns, Pattern{
			Variable:      name,
			Line:          listing.Variables[name].Line,
			Kind:          kind,
			RelatedEvents: relatedEvents(listing, name),
		})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Line != patterns[j].Line {
			return patterns[i].Line < patterns[j].Line
		}
		return patterns[i].Variable < patterns[j].Variable
	})
	return patterns
}

// isGlobalCooldown reports a self-increment by a literal plus a guard
// comparing the variable against time with <= or >=.
func isGlobalCooldown(name string, lines []string) bool {
	incrementRe := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(name) + `\s*:\s*` + regexp.QuoteMeta(name) + `\s*\+\s*\d+`)

	increments := false
	timeGuard := false
	for i, raw := range lines {
		line := script.StripComment(raw)
		if incrementRe.MatchString(line) {
			increments = true
		}
		for _, tr := range script.Triggers(line, i+1) {
			if comparesAgainstTime(tr.Condition, name) {
				timeGuard = true
			}
		}
	}
	return increments && timeGuard
}

// comparesAgainstTime checks for a <= or >= comparison between the variable
// and the built-in time counter inside a condition.
func comparesAgainstTime(cond, name string) bool {
	if !strings.Contains(cond, "<=") && !strings.Contains(cond, ">=") {
		return false
	}
	hasVar, hasTime := false, false
	for _, tok := range script.Identifiers(cond) {
		switch tok {
		case name:
			hasVar = true
		case "time":
			hasTime = true
		}
	}
	return hasVar && hasTime
}

// isOneTimeEvent reports a boolean declared false, later set true, checked
// as ==false in some guard, and never set back to false.
func isOneTimeEvent(v script.Variable, lines []string) bool {
	if v.Type != script.TypeBool || strings.TrimSpace(v.InitialValue) != "false" {
		return false
	}

	checkRe := regexp.MustCompile(regexp.QuoteMeta(v.Name) + `\s*==\s*false`)

	setTrue, checkedFalse := false, false
	for i, raw := range lines {
		line := script.StripComment(raw)
		if name, value, ok := script.Assignment(line); ok && name == v.Name {
			switch strings.TrimSpace(value) {
			case "true":
				setTrue = true
			case "false":
				return false
			}
		}
		for _, tr := range script.Triggers(line, i+1) {
			if checkRe.MatchString(tr.Condition) {
				checkedFalse = true
			}
		}
	}
	return setTrue && checkedFalse
}

// isExclusiveState reports an integer appearing with three or more distinct
// literal values across guard comparisons and assignments combined.
func isExclusiveState(v script.Variable, lines []string) bool {
	if v.Type != script.TypeInt {
		return false
	}
	return len(distinctValues(v.Name, lines)) >= 3
}

// distinctValues collects the literal values a variable is compared to or
// assigned anywhere in the text.
func distinctValues(name string, lines []string) map[int]bool {
	compareRe := regexp.MustCompile(regexp.QuoteMeta(name) + `\s*[=!]=\s*(-?\d+)`)

	values := make(map[int]bool)
	for _, raw := range lines {
		line := script.StripComment(raw)
		for _, m := range compareRe.FindAllStringSubmatch(line, -1) {
			if n, ok := script.IntLiteral(m[1]); ok {
				values[n] = true
			}
		}
		if lhs, value, ok := script.Assignment(line); ok && lhs == name {
			if n, ok := script.IntLiteral(value); ok {
				values[n] = true
			}
		}
	}
	return values
}

// relatedEvents returns the sorted names of every event block that mentions
// the variable.
func relatedEvents(listing *script.Listing, name string) []string {
	seen := make(map[string]bool)
	for i := range listing.Events {
		ev := &listing.Events[i]
		if ev.Mentions(name) {
			seen[ev.Name] = true
		}
	}
	events := make([]string, 0, len(seen))
	for name := range seen {
		events = append(events, name)
	}
	sort.Strings(events)
	return events
}
