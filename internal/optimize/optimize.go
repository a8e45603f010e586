// Package optimize implements spec.md §4.E: the single literal-path
// compaction pass run once after rulebase installation completes.
package optimize

import (
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

// Run walks every component of ctx — each named type's root, then the main
// root (spec.md §4.E) — fusing runs of single-character discardable literal
// edges back into multi-character ones. Idempotent: a second call finds
// nothing left to fuse (spec.md §8).
func Run(ctx *dag.Context) {
	litID := dag.LiteralID()
	for _, root := range ctx.Roots() {
		fuse(root, litID)
	}
}

// fuse applies the local fixpoint of spec.md §4.E to every outgoing edge of
// n, then recurses into each edge's child. Node identity is a tree here (no
// cycles), so no visited set is needed — the same reason
// internal/inference's cyclic-graph DFS in the teacher needs memoization
// and this walk does not.
func fuse(n *dag.Node, litID registry.ID) {
	for _, e := range n.Edges {
		for fusible(e, litID) {
			next := e.Child.Edges[0]
			entry, _ := registry.Lookup(litID)
			e.Data = entry.Combine(e.Data, next.Data)
			e.Child = next.Child
		}
		fuse(e.Child, litID)
	}
}

// fusible checks spec.md §4.E's guard: e and its child's sole outgoing edge
// must both be literal, both discardable (name "-"), and the intermediate
// node must not be terminal (terminal nodes carry success semantics that
// would be lost by fusing past them).
func fusible(e *dag.Edge, litID registry.ID) bool {
	if e.ParserID != litID || e.Name != "-" {
		return false
	}
	if e.Child == nil || e.Child.Terminal || len(e.Child.Edges) != 1 {
		return false
	}
	next := e.Child.Edges[0]
	return next.ParserID == litID && next.Name == "-"
}
