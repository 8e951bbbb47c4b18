package script

// VarType is the declared type of a script variable.
type VarType string

const (
	TypeInt     VarType = "int"
	TypeFloat   VarType = "float"
	TypeBool    VarType = "bool"
	TypeString  VarType = "string"
	TypeTimer   VarType = "timer"
	TypeArrow   VarType = "arrow"
	TypeUnknown VarType = "unknown"
)

// String returns the string representation.
func (t VarType) String() string {
	return string(t)
}

// Variable is a typed variable declaration collected from script text.
// Variables are immutable after collection; redeclarations keep the first.
type Variable struct {
	Name         string  `json:"name"`
	Type         VarType `json:"type"`
	Line         int     `json:"line"`
	InitialValue string  `json:"initial_value"`
}

// Line is a single script line with its 1-based position.
type Line struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Event is a named block of commands opened by a `Name::` line.
// The block extends to the next opener or end of text. Duplicate
// names are preserved as separate events, never merged.
type Event struct {
	Name      string `json:"name"`
	Condition string `json:"condition,omitempty"`
	StartLine int    `json:"start_line"`
	Lines     []Line `json:"lines"`
}

// Listing is the result of collecting declarations from script text.
type Listing struct {
	Variables map[string]Variable `json:"variables"`
	Events    []Event             `json:"events"`
	Preamble  []Line              `json:"preamble"`
}

// Trigger is a guarded event trigger such as when(cond)[Target].
type Trigger struct {
	Keyword   string // "when" or "if"
	Condition string
	Target    string
	Line      int
}
