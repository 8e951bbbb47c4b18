package mutex

// Kind is the synchronization idiom a variable serves as.
type Kind string

const (
	// KindGlobalCooldown is a self-incrementing variable compared against time.
	KindGlobalCooldown Kind = "global_cooldown"
	// KindOneTimeEvent is a boolean latch that is set once and never cleared.
	KindOneTimeEvent Kind = "one_time_event"
	// KindExclusiveState is an integer cycling through three or more values.
	KindExclusiveState Kind = "exclusive_state"
)

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// priority decides which classification wins when a variable matches more
// than one idiom. Lower value wins.
var priority = map[Kind]int{
	KindGlobalCooldown: 0,
	KindOneTimeEvent:   1,
	KindExclusiveState: 2,
}

// Pattern is one classified synchronization idiom. A variable is reported
// under at most one kind per run.
type Pattern struct {
	Variable      string   `json:"variable"`
	Line          int      `json:"line"`
	Kind          Kind     `json:"kind"`
	RelatedEvents []string `json:"related_events"`
}
