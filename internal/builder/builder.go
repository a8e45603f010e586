// Package builder implements spec.md §4.B (edge factories) and §4.D
// (addParser): the only way new nodes and edges enter a pdag.
package builder

import (
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

// NewEdge prepares a parser edge per spec.md §4.B. If prsid is
// registry.CustomType, custType is stored as a non-owning reference instead
// of calling a construct hook. Otherwise, if the registry entry has a
// Construct hook, it is invoked with extraData and config to produce
// parser_data.
func NewEdge(prsid registry.ID, name string, custType *dag.Node, extraData, config any) (*dag.Edge, error) {
	e := &dag.Edge{ParserID: prsid, Name: name}

	if prsid == registry.CustomType {
		e.CustomType = custType
		return e, nil
	}

	entry, err := registry.Lookup(prsid)
	if err != nil {
		return nil, err
	}
	if entry.Construct != nil {
		data, err := entry.Construct(extraData, config)
		if err != nil {
			return nil, err
		}
		e.Data = data
	}
	return e, nil
}

// NewLiteralEdge is the convenience factory of spec.md §4.B: a one-character
// literal edge named "-" (discard).
func NewLiteralEdge(literalID registry.ID, c byte) (*dag.Edge, error) {
	return NewEdge(literalID, "-", nil, string(c), nil)
}

// AddParser implements spec.md §4.D: search root's existing edges for one
// equivalent to edge; if found, discard edge (calling the registry entry's
// Destruct hook on its parser_data, if the entry has one; the memory itself
// is left to the garbage collector) and advance to the existing child. Otherwise allocate a fresh child, attach it, and
// append edge to root's edge list. Returns the new current node.
func AddParser(ctx *dag.Context, root *dag.Node, edge *dag.Edge) (*dag.Node, error) {
	if existing := root.FindEquivalent(edge.ParserID, edge.Name, edge.Data); existing != nil {
		if entry, err := registry.Lookup(edge.ParserID); err == nil && entry.Destruct != nil {
			entry.Destruct(edge.Data)
		}
		return existing.Child, nil
	}

	child := dag.NewNode(ctx)
	edge.Child = child
	root.AppendEdge(edge)
	return child, nil
}
