package diagnostics

import (
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

// Stats is the statistics gatherer of spec.md §4.H: a single-pass summary
// over a pdag's shape, useful for sanity-checking a loaded rulebase.
type Stats struct {
	Nodes          int
	TerminalNodes  int
	ParserEdges    int
	CustomEdges    int
	ParserCounts   map[string]int
	LongestPath    int
	EdgesPerNode   map[int]int // histogram: edge count -> number of nodes with that count
}

// Gather walks every component of ctx (each named type plus the main root)
// and accumulates Stats. Nodes reachable from more than one component are
// counted once per component they appear under, matching how the optimizer
// (internal/optimize) treats components as independent units.
func Gather(ctx *dag.Context) Stats {
	s := Stats{
		ParserCounts: map[string]int{},
		EdgesPerNode: map[int]int{},
	}
	for _, root := range ctx.Roots() {
		walk(root, 0, &s)
	}
	return s
}

func walk(n *dag.Node, depth int, s *Stats) {
	s.Nodes++
	if n.Terminal {
		s.TerminalNodes++
	}
	if depth > s.LongestPath {
		s.LongestPath = depth
	}
	s.EdgesPerNode[len(n.Edges)]++

	for _, e := range n.Edges {
		if e.ParserID == registry.CustomType {
			s.CustomEdges++
		} else {
			s.ParserEdges++
			name := "?"
			if entry, err := registry.Lookup(e.ParserID); err == nil {
				name = entry.Name
			}
			s.ParserCounts[name]++
		}
		walk(e.Child, depth+1, s)
	}
}
