package script

import (
	"sort"
	"strconv"
	"strings"
)

// Section is the pre-parsed structural view handed over by the mission-file
// parser. It is reconstructed back into canonical script text before analysis
// so both input shapes feed the same detectors.
type Section struct {
	Variables map[string]string `json:"variables"`
	Events    []SectionEvent    `json:"events"`
}

// SectionEvent is one event of a pre-parsed section.
type SectionEvent struct {
	Name      string    `json:"name"`
	Condition string    `json:"condition,omitempty"`
	Commands  []Command `json:"commands"`
}

// Command is a single command with its parameters.
type Command struct {
	Command    string   `json:"command"`
	Parameters []string `json:"parameters"`
}

// Reconstruct renders the section as canonical script text: one line per
// declaration, then per event a when(cond)[name] trigger (when guarded),
// the name:: opener, and one line per command. Declarations are emitted in
// sorted name order so reconstruction is deterministic.
func (s *Section) Reconstruct() string {
	var b strings.Builder

	names := make([]string, 0, len(s.Variables))
	for name := range s.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := s.Variables[name]
		b.WriteString(string(inferType(value)))
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte('\n')
	}

	for _, ev := range s.Events {
		if ev.Condition != "" {
			b.WriteString("when(")
			b.WriteString(ev.Condition)
			b.WriteString(")[")
			b.WriteString(ev.Name)
			b.WriteString("]\n")
		}
		b.WriteString(ev.Name)
		b.WriteString("::\n")
		for _, cmd := range ev.Commands {
			b.WriteString(cmd.Command)
			if len(cmd.Parameters) > 0 {
				b.WriteByte(':')
				b.WriteString(strings.Join(cmd.Parameters, ","))
			}
			b.WriteString(";\n")
		}
	}

	return b.String()
}

// inferType guesses a declaration type from a raw section value.
func inferType(value string) VarType {
	v := strings.TrimSpace(value)
	switch {
	case v == "true" || v == "false":
		return TypeBool
	case isInt(v):
		return TypeInt
	case isFloat(v):
		return TypeFloat
	default:
		return TypeString
	}
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
