package resources

// Resource is one of the four built-in score counters tracked by objectives.
type Resource string

const (
	Crystals Resource = "crystals"
	Ore      Resource = "ore"
	Studs    Resource = "studs"
	Air      Resource = "air"
)

// String returns the string representation.
func (r Resource) String() string {
	return string(r)
}

// All lists the tracked resources in their fixed reporting order.
var All = []Resource{Crystals, Ore, Studs, Air}

// Entry is one addition or consumption of a resource.
type Entry struct {
	Amount int `json:"amount"`
	Line   int `json:"line"`
}

// Flow is the per-resource balance sheet for one analysis run.
// Balance is always the source sum minus the sink sum.
type Flow struct {
	Resource Resource `json:"resource"`
	Sources  []Entry  `json:"sources"`
	Sinks    []Entry  `json:"sinks"`
	Balance  int      `json:"balance"`
}
