package statemachine

// Transition is one observed state change: a guard on From firing event
// Trigger, whose block assigns To.
type Transition struct {
	From    int    `json:"from"`
	To      int    `json:"to"`
	Trigger string `json:"trigger"`
	Line    int    `json:"line"`
}

// Machine is a finite-state machine reconstructed for one integer variable.
// Initial is always a key of States.
type Machine struct {
	Variable    string         `json:"variable"`
	States      map[int]string `json:"states"`
	Transitions []Transition   `json:"transitions"`
	Initial     int            `json:"initial"`
	Line        int            `json:"line"`
}

// FindingKind classifies a state machine lint result.
type FindingKind string

const (
	// FindingUnreachable is a state no transition ever enters.
	FindingUnreachable FindingKind = "unreachable"
	// FindingDeadEnd is a state no transition ever leaves.
	FindingDeadEnd FindingKind = "dead_end"
)

// Finding is a diagnostic-worthy observation about a machine.
type Finding struct {
	Kind     FindingKind `json:"kind"`
	Variable string      `json:"variable"`
	State    int         `json:"state"`
	Name     string      `json:"name"`
	Line     int         `json:"line"`
}
