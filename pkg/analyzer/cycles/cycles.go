// Package cycles finds circular event-call dependencies with a DFS that
// carries the current path, so the reported cycle keeps its shape. Rotations
// and direction variants of the same member set collapse to one report.
package cycles

import (
	"sort"
	"strings"

	"github.com/seamlint/seamlint/pkg/analyzer"
	"github.com/seamlint/seamlint/pkg/analyzer/eventgraph"
)

var _ analyzer.TextAnalyzer[[]Cycle] = analyzer.Func[[]Cycle](Detect)

// Cycle is one circular dependency. Events is an ordered walk where the
// first and last entries are the same event. Line is the line of the edge
// that closes the cycle, 0 when unknown.
type Cycle struct {
	Events []string `json:"events"`
	Line   int      `json:"line"`
}

// neighbor is one outgoing edge of the simplified adjacency.
type neighbor struct {
	name string
	line int
}

// Detect builds its own event adjacency (same edge rules as the graph
// builder, reduced to unweighted neighbors) and reports each distinct cycle
// once, keyed by its sorted member set.
func Detect(text string) []Cycle {
	g := eventgraph.Build(text)

	adj := make(map[string][]neighbor, len(g.Events))
	seenEdge := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		key := e.From + "\x00" + e.To
		if seenEdge[key] {
			continue
		}
		seenEdge[key] = true
		adj[e.From] = append(adj[e.From], neighbor{name: e.To, line: e.Line})
	}

	var cycles []Cycle
	reported := make(map[string]bool)

	for _, start := range g.Events {
		visited := make(map[string]bool)
		onPath := make(map[string]int)

		var walk func(node string, path []string)
		walk = func(node string, path []string) {
			visited[node] = true
			onPath[node] = len(path) - 1

			for _, nb := range adj[node] {
				if idx, ok := onPath[nb.name]; ok {
					cycle := append(append([]string(nil), path[idx:]...), nb.name)
					key := memberKey(cycle)
					if !reported[key] {
						reported[key] = true
						cycles = append(cycles, Cycle{Events: cycle, Line: nb.line})
					}
					continue
				}
				if visited[nb.name] {
					continue
				}
				walk(nb.name, append(path, nb.name))
			}

			delete(onPath, node)
		}

		walk(start, []string{start})
	}

	return cycles
}

// memberKey is the dedup key: the sorted unique members of a cycle.
func memberKey(cycle []string) string {
	seen := make(map[string]bool, len(cycle))
	members := make([]string, 0, len(cycle))
	for _, ev := range cycle {
		if !seen[ev] {
			seen[ev] = true
			members = append(members, ev)
		}
	}
	sort.Strings(members)
	return strings.Join(members, "\x00")
}
