// Package script provides shared scanning over mission-script text: typed
// variable declarations, event block boundaries, and the line-level token
// helpers the pattern detectors are built on. Scanning is whole-text and
// best-effort; lines that match no known shape are simply kept as opaque
// command lines.
package script

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	declRe      = regexp.MustCompile(`^\s*(int|float|bool|string|timer|arrow)\s+([A-Za-z_]\w*)\s*=\s*(.*?)\s*;?\s*$`)
	openerRe    = regexp.MustCompile(`^\s*([A-Za-z_]\w*)::\s*$`)
	invokeRe    = regexp.MustCompile(`^\s*([A-Za-z_]\w*)::;`)
	triggerRe   = regexp.MustCompile(`\b(when|if)\s*\(([^)]*)\)\s*\[([A-Za-z_]\w*)\]`)
	callRe      = regexp.MustCompile(`\bcall\s*:\s*([A-Za-z_]\w*)`)
	assignRe    = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*:\s*([^:].*?)\s*;?\s*$`)
	identRe     = regexp.MustCompile(`[A-Za-z_]\w*`)
	commentRe   = regexp.MustCompile(`#\s*(.*?)\s*$`)
	scriptOpenRe = regexp.MustCompile(`^\s*script\s*\{\s*$`)
)

// conditionKeywords are tokens that never name shared state.
var conditionKeywords = map[string]bool{
	"true": true, "false": true, "and": true, "or": true, "not": true,
	"when": true, "if": true,
}

// assignmentKeywords are command names that look like assignments but are not.
var assignmentKeywords = map[string]bool{
	"call": true, "when": true, "if": true,
}

// SplitLines splits text into lines without the trailing newline.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Scan collects variable declarations and event blocks from raw script text.
// The whole text is scanned, so variables declared after first use are still
// registered. An unterminated final block extends to end of text.
func Scan(text string) *Listing {
	l := &Listing{Variables: make(map[string]Variable)}

	var cur *Event
	var lastTrigger *Trigger

	for i, raw := range SplitLines(text) {
		num := i + 1

		if m := openerRe.FindStringSubmatch(raw); m != nil {
			if cur != nil {
				l.Events = append(l.Events, *cur)
			}
			cur = &Event{Name: m[1], StartLine: num}
			if lastTrigger != nil && lastTrigger.Target == m[1] {
				cur.Condition = lastTrigger.Condition
			}
			lastTrigger = nil
			continue
		}

		if m := declRe.FindStringSubmatch(raw); m != nil {
			name := m[2]
			if _, seen := l.Variables[name]; !seen {
				l.Variables[name] = Variable{
					Name:         name,
					Type:         VarType(m[1]),
					Line:         num,
					InitialValue: m[3],
				}
			}
		}

		if ts := Triggers(raw, num); len(ts) > 0 {
			lastTrigger = &ts[len(ts)-1]
		} else if strings.TrimSpace(raw) != "" {
			lastTrigger = nil
		}

		line := Line{Number: num, Text: raw}
		if cur != nil {
			cur.Lines = append(cur.Lines, line)
		} else {
			l.Preamble = append(l.Preamble, line)
		}
	}

	if cur != nil {
		l.Events = append(l.Events, *cur)
	}
	return l
}

// Names returns the unique event names in first-seen order.
func (l *Listing) Names() []string {
	seen := make(map[string]bool, len(l.Events))
	var names []string
	for _, ev := range l.Events {
		if !seen[ev.Name] {
			seen[ev.Name] = true
			names = append(names, ev.Name)
		}
	}
	return names
}

// Duplicates returns event names declared more than once, with the line of
// each redeclaration. Duplicates are flagged downstream, never merged.
func (l *Listing) Duplicates() []Event {
	first := make(map[string]bool, len(l.Events))
	var dups []Event
	for _, ev := range l.Events {
		if first[ev.Name] {
			dups = append(dups, ev)
			continue
		}
		first[ev.Name] = true
	}
	return dups
}

// Text returns the joined block text of an event.
func (e *Event) Text() string {
	parts := make([]string, len(e.Lines))
	for i, ln := range e.Lines {
		parts[i] = ln.Text
	}
	return strings.Join(parts, "\n")
}

// Mentions reports whether the event block references the identifier.
func (e *Event) Mentions(name string) bool {
	for _, ln := range e.Lines {
		for _, tok := range identRe.FindAllString(ln.Text, -1) {
			if tok == name {
				return true
			}
		}
	}
	return false
}

// Opener returns the event name when the line opens an event block.
func Opener(line string) (string, bool) {
	m := openerRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Invocation returns the target of a bare `Other::;` invocation line.
func Invocation(line string) (string, bool) {
	m := invokeRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Triggers returns every when(cond)[Event] / if(cond)[Event] form on a line.
func Triggers(line string, num int) []Trigger {
	var out []Trigger
	for _, m := range triggerRe.FindAllStringSubmatch(line, -1) {
		out = append(out, Trigger{Keyword: m[1], Condition: m[2], Target: m[3], Line: num})
	}
	return out
}

// CallTargets returns the targets of every `call:Event` directive on a line.
func CallTargets(line string) []string {
	var out []string
	for _, m := range callRe.FindAllStringSubmatch(line, -1) {
		out = append(out, m[1])
	}
	return out
}

// Assignment returns the name and value of a `name:value` command line.
// Opener and invocation lines (`name::`) and directive keywords do not count.
func Assignment(line string) (name, value string, ok bool) {
	m := assignRe.FindStringSubmatch(line)
	if m == nil || assignmentKeywords[m[1]] {
		return "", "", false
	}
	return m[1], m[2], true
}

// Identifiers returns the identifier tokens of a condition, excluding
// boolean keywords. Order of first appearance, duplicates removed.
func Identifiers(cond string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range identRe.FindAllString(cond, -1) {
		if conditionKeywords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// Comment returns the `#` comment text of a line, if any.
func Comment(line string) (string, bool) {
	m := commentRe.FindStringSubmatch(line)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// StripComment removes a trailing `#` comment from a line.
func StripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// IntLiteral parses a bare integer literal.
func IntLiteral(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractScriptSection isolates the script{...} block of a full mission file.
// Lines outside the block are blanked rather than removed so that reported
// line numbers stay valid for the original file. Text without a script block
// is returned unchanged.
func ExtractScriptSection(text string) string {
	lines := SplitLines(text)
	start := -1
	for i, ln := range lines {
		if scriptOpenRe.MatchString(ln) {
			start = i
			break
		}
	}
	if start < 0 {
		return text
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "}" {
			end = i
			break
		}
	}

	out := make([]string, len(lines))
	for i := range lines {
		if i > start && i < end {
			out[i] = lines[i]
		}
	}
	return strings.Join(out, "\n")
}
