// Package eventgraph derives the directed dependency graph between script
// events from four syntactic forms: bare invocation, when/if triggers, and
// call: directives.
package eventgraph

import (
	"strings"

	"github.com/seamlint/seamlint/pkg/analyzer"
	"github.com/seamlint/seamlint/pkg/script"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

var _ analyzer.TextAnalyzer[*Graph] = analyzer.Func[*Graph](Build)

// Build constructs the event graph from script text. Self-edges are excluded
// at construction time; edges of different kinds between the same pair are
// all retained for diagnostic precision.
func Build(text string) *Graph {
	listing := script.Scan(text)

	g := &Graph{Events: listing.Names()}
	known := make(map[string]bool, len(g.Events))
	for _, name := range g.Events {
		known[name] = true
	}

	addEvent := func(name string) {
		if !known[name] {
			known[name] = true
			g.Events = append(g.Events, name)
		}
	}

	for _, ev := range listing.Events {
		for _, ln := range ev.Lines {
			if target, ok := script.Invocation(ln.Text); ok && target != ev.Name && known[target] {
				g.Edges = append(g.Edges, Edge{From: ev.Name, To: target, Kind: EdgeCall, Line: ln.Number})
			}
			for _, tr := range script.Triggers(ln.Text, ln.Number) {
				if tr.Target == ev.Name {
					continue
				}
				kind := EdgeWhenTrigger
				if tr.Keyword == "if" {
					kind = EdgeIfTrigger
				}
				addEvent(tr.Target)
				g.Edges = append(g.Edges, Edge{From: ev.Name, To: tr.Target, Kind: kind, Line: ln.Number})
			}
			for _, target := range script.CallTargets(ln.Text) {
				if target == ev.Name {
					continue
				}
				addEvent(target)
				g.Edges = append(g.Edges, Edge{From: ev.Name, To: target, Kind: EdgeCallCommand, Line: ln.Number})
			}
		}
	}

	return g
}

// Summarize computes graph metrics using gonum. Strongly connected
// components of size one are not counted; only real cycles are.
func Summarize(g *Graph) *Metrics {
	m := &Metrics{Events: len(g.Events), Edges: len(g.Edges)}
	if len(g.Events) == 0 {
		return m
	}

	directed := simple.NewDirectedGraph()
	ids := make(map[string]int64, len(g.Events))
	for i, name := range g.Events {
		ids[name] = int64(i)
		directed.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges {
		from, to := ids[e.From], ids[e.To]
		if from != to && !directed.HasEdgeFromTo(from, to) {
			directed.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		}
	}

	for _, scc := range topo.TarjanSCC(directed) {
		if len(scc) > 1 {
			m.StronglyConnected++
		}
	}
	m.Cyclic = m.StronglyConnected > 0

	adj := g.Adjacency()
	degree := 0
	for _, targets := range adj {
		degree += len(targets)
	}
	m.AvgDegree = float64(degree*2) / float64(len(g.Events))
	if len(g.Events) > 1 {
		maxEdges := len(g.Events) * (len(g.Events) - 1)
		m.Density = float64(degree) / float64(maxEdges)
	}

	return m
}

// ToMermaid renders the graph as a Mermaid diagram.
func ToMermaid(g *Graph) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	for _, name := range g.Events {
		b.WriteString("    ")
		b.WriteString(sanitizeID(name))
		b.WriteString("[\"")
		b.WriteString(name)
		b.WriteString("\"]\n")
	}
	for _, e := range g.Edges {
		b.WriteString("    ")
		b.WriteString(sanitizeID(e.From))
		b.WriteString(" ")
		b.WriteString(edgeArrow(e.Kind))
		b.WriteString(" ")
		b.WriteString(sanitizeID(e.To))
		b.WriteString("\n")
	}
	return b.String()
}

// edgeArrow returns the Mermaid arrow notation for an edge kind.
func edgeArrow(k EdgeKind) string {
	switch k {
	case EdgeCall:
		return "-->|invokes|"
	case EdgeCallCommand:
		return "-->|calls|"
	case EdgeIfTrigger:
		return "-.->|if|"
	default:
		return "-.->|when|"
	}
}

// sanitizeID makes an event name safe for Mermaid node IDs.
func sanitizeID(id string) string {
	var b strings.Builder
	for _, c := range id {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			b.WriteRune(c)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
