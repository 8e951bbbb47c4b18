package eventgraph

// EdgeKind classifies how one event references another.
type EdgeKind string

const (
	// EdgeCall is a bare `Other::;` invocation inside an event block.
	EdgeCall EdgeKind = "call"
	// EdgeWhenTrigger is a when(cond)[Other] trigger.
	EdgeWhenTrigger EdgeKind = "when_trigger"
	// EdgeCallCommand is an explicit call:Other directive.
	EdgeCallCommand EdgeKind = "call_command"
	// EdgeIfTrigger is an if(cond)[Other] trigger.
	EdgeIfTrigger EdgeKind = "if_trigger"
)

// String returns the string representation.
func (k EdgeKind) String() string {
	return string(k)
}

// Edge is a directed dependency between two events. Multiple edges between
// the same pair are retained when they differ in kind or line.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
	Line int      `json:"line"`
}

// Graph is the event dependency graph of a script.
type Graph struct {
	Events []string `json:"events"`
	Edges  []Edge   `json:"edges"`
}

// Adjacency collapses the edge list into an event -> set-of-targets map.
func (g *Graph) Adjacency() map[string]map[string]bool {
	adj := make(map[string]map[string]bool, len(g.Events))
	for _, ev := range g.Events {
		adj[ev] = make(map[string]bool)
	}
	for _, e := range g.Edges {
		if adj[e.From] == nil {
			adj[e.From] = make(map[string]bool)
		}
		adj[e.From][e.To] = true
	}
	return adj
}

// Metrics summarizes the shape of an event graph.
type Metrics struct {
	Events            int     `json:"events"`
	Edges             int     `json:"edges"`
	AvgDegree         float64 `json:"avg_degree"`
	Density           float64 `json:"density"`
	StronglyConnected int     `json:"strongly_connected_components"`
	Cyclic            bool    `json:"cyclic"`
}
