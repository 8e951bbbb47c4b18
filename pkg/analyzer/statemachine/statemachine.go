// Package statemachine reconstructs finite-state machines from integer
// variables whose guards and assignments cycle through distinct values.
package statemachine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/seamlint/seamlint/pkg/analyzer"
	"github.com/seamlint/seamlint/pkg/script"
)

var _ analyzer.TextAnalyzer[[]Machine] = analyzer.Func[[]Machine](Detect)

// canonicalNames is the fallback naming table for common state values.
var canonicalNames = map[int]string{
	0: "IDLE",
	1: "ACTIVE",
	2: "COMPLETE",
	3: "FAILED",
}

// Detect reconstructs a machine for every integer variable with at least two
// recorded transitions. Machines are ordered by declaration line.
func Detect(text string) []Machine {
	listing := script.Scan(text)
	lines := script.SplitLines(text)

	vars := make([]script.Variable, 0, len(listing.Variables))
	for _, v := range listing.Variables {
		if v.Type == script.TypeInt {
			vars = append(vars, v)
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Line < vars[j].Line })

	var machines []Machine
	for _, v := range vars {
		transitions := collectTransitions(v.Name, listing, lines)
		if len(transitions) < 2 {
			continue
		}

		states := make(map[int]string)
		for _, tr := range transitions {
			states[tr.From] = ""
			states[tr.To] = ""
		}

		initial := 0
		if n, ok := script.IntLiteral(v.InitialValue); ok {
			initial = n
		}
		states[initial] = ""

		for value := range states {
			states[value] = stateName(v.Name, value, lines)
		}

		machines = append(machines, Machine{
			Variable:    v.Name,
			States:      states,
			Transitions: transitions,
			Initial:     initial,
			Line:        v.Line,
		})
	}
	return machines
}

// collectTransitions pairs each when(v==S)[E] guard with the first v:S'
// assignment inside event E's block. Scanning an event block stops at the
// next opener, so unterminated blocks simply extend to end of text.
func collectTransitions(name string, listing *script.Listing, lines []string) []Transition {
	guardRe := regexp.MustCompile(regexp.QuoteMeta(name) + `\s*==\s*(-?\d+)`)

	var transitions []Transition
	for i, raw := range lines {
		for _, tr := range script.Triggers(script.StripComment(raw), i+1) {
			if tr.Keyword != "when" {
				continue
			}
			m := guardRe.FindStringSubmatch(tr.Condition)
			if m == nil {
				continue
			}
			from, _ := script.IntLiteral(m[1])

			to, line, ok := firstAssignmentIn(listing, tr.Target, name)
			if !ok {
				continue
			}
			transitions = append(transitions, Transition{From: from, To: to, Trigger: tr.Target, Line: line})
		}
	}
	return transitions
}

// firstAssignmentIn finds the first integer assignment to the variable inside
// the named event's block.
func firstAssignmentIn(listing *script.Listing, event, name string) (value, line int, ok bool) {
	for i := range listing.Events {
		ev := &listing.Events[i]
		if ev.Name != event {
			continue
		}
		for _, ln := range ev.Lines {
			lhs, rhs, isAssign := script.Assignment(script.StripComment(ln.Text))
			if !isAssign || lhs != name {
				continue
			}
			if n, isInt := script.IntLiteral(rhs); isInt {
				return n, ln.Number, true
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}

// stateName names a state value: an inline comment on or immediately before
// the assignment that sets it wins, then the canonical table, then STATE_<n>.
func stateName(variable string, value int, lines []string) string {
	assignRe := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(variable) + `\s*:\s*` + fmt.Sprintf("%d", value) + `\s*;?\s*(#.*)?$`)

	for i, raw := range lines {
		if !assignRe.MatchString(raw) {
			continue
		}
		if c, ok := script.Comment(raw); ok {
			return normalizeName(c)
		}
		if i > 0 {
			prev := strings.TrimSpace(lines[i-1])
			if strings.HasPrefix(prev, "#") {
				if c, ok := script.Comment(prev); ok {
					return normalizeName(c)
				}
			}
		}
	}

	if name, ok := canonicalNames[value]; ok {
		return name
	}
	return fmt.Sprintf("STATE_%d", value)
}

// normalizeName upper-cases a comment and replaces spaces with underscores.
func normalizeName(comment string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(comment)), " ", "_")
}

// Lint flags unreachable and dead-end states of a machine. A state is
// unreachable when no transition enters it and it is not the initial state;
// it is a dead end when no transition leaves it, except the implicitly
// terminal state 0.
func Lint(m *Machine) []Finding {
	entered := make(map[int]bool)
	left := make(map[int]bool)
	for _, tr := range m.Transitions {
		entered[tr.To] = true
		left[tr.From] = true
	}

	values := make([]int, 0, len(m.States))
	for value := range m.States {
		values = append(values, value)
	}
	sort.Ints(values)

	var findings []Finding
	for _, value := range values {
		if !entered[value] && value != m.Initial {
			findings = append(findings, Finding{
				Kind:     FindingUnreachable,
				Variable: m.Variable,
				State:    value,
				Name:     m.States[value],
				Line:     m.Line,
			})
		}
		if !left[value] && value != 0 {
			findings = append(findings, Finding{
				Kind:     FindingDeadEnd,
				Variable: m.Variable,
				State:    value,
				Name:     m.States[value],
				Line:     m.Line,
			})
		}
	}
	return findings
}
