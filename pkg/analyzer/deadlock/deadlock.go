// Package deadlock flags event pairs with conflicting shared-state access.
// Each event "holds" the identifiers it assigns; an event is "waited on"
// through the identifiers appearing in conditions that trigger into it.
// Pairwise analysis is O(E^2), which is fine at mission-script scale.
package deadlock

import (
	"sort"

	"github.com/seamlint/seamlint/pkg/analyzer"
	"github.com/seamlint/seamlint/pkg/script"
)

var _ analyzer.TextAnalyzer[[]Risk] = analyzer.Func[[]Risk](Detect)

// builtinResources are always treated as shared state when assigned.
var builtinResources = map[string]bool{
	"crystals": true, "ore": true, "studs": true, "air": true,
}

// eventState is the per-event shared-state footprint.
type eventState struct {
	name  string
	line  int
	holds map[string]bool
	waits map[string]bool
}

// Detect reports deadlock risks between every unordered pair of events that
// assign at least one common identifier. Results follow event declaration
// order, so repeated runs are identical.
func Detect(text string) []Risk {
	listing := script.Scan(text)

	states := collectStates(listing, text)

	var risks []Risk
	for i := 0; i < len(states); i++ {
		for j := i + 1; j < len(states); j++ {
			if r, ok := analyzePair(states[i], states[j]); ok {
				risks = append(risks, r)
			}
		}
	}
	return risks
}

// collectStates computes holds and waits for each distinct event name.
// Wait identifiers are attributed to the trigger's target event, wherever
// in the script the condition appears.
func collectStates(listing *script.Listing, text string) []*eventState {
	byName := make(map[string]*eventState)
	var ordered []*eventState

	for i := range listing.Events {
		ev := &listing.Events[i]
		st, ok := byName[ev.Name]
		if !ok {
			st = &eventState{
				name:  ev.Name,
				line:  ev.StartLine,
				holds: make(map[string]bool),
				waits: make(map[string]bool),
			}
			byName[ev.Name] = st
			ordered = append(ordered, st)
		}
		for _, ln := range ev.Lines {
			name, _, isAssign := script.Assignment(script.StripComment(ln.Text))
			if !isAssign {
				continue
			}
			if _, declared := listing.Variables[name]; declared || builtinResources[name] {
				st.holds[name] = true
			}
		}
	}

	for i, raw := range script.SplitLines(text) {
		for _, tr := range script.Triggers(script.StripComment(raw), i+1) {
			if tr.Keyword != "when" {
				continue
			}
			st, ok := byName[tr.Target]
			if !ok {
				continue
			}
			for _, ident := range script.Identifiers(tr.Condition) {
				st.waits[ident] = true
			}
		}
	}

	return ordered
}

// analyzePair grades one unordered event pair. High risk needs both wait
// directions over the shared identifiers; one direction is medium; disjoint
// holds are not reported at all.
func analyzePair(a, b *eventState) (Risk, bool) {
	shared := intersect(a.holds, b.holds)
	if len(shared) == 0 {
		return Risk{}, false
	}

	aWaitsOnB := overlaps(a.waits, b.holds)
	bWaitsOnA := overlaps(b.waits, a.holds)

	level := RiskLow
	switch {
	case aWaitsOnB && bWaitsOnA:
		level = RiskHigh
	case aWaitsOnB || bWaitsOnA:
		level = RiskMedium
	default:
		return Risk{}, false
	}

	line := a.line
	if b.line < line {
		line = b.line
	}

	return Risk{
		Events:          [2]string{a.name, b.name},
		SharedResources: shared,
		Level:           level,
		Line:            line,
	}, true
}

func intersect(a, b map[string]bool) []string {
	var out []string
	for name := range a {
		if b[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func overlaps(a, b map[string]bool) bool {
	for name := range a {
		if b[name] {
			return true
		}
	}
	return false
}
