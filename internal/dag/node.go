// Package dag implements spec.md §3's data model: the pdag Context, its
// Node/Edge graph, and their ownership and destruction rules.
package dag

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/lognorm/pdag/internal/registry"
)

// Node is a pdag node: an ordered, append-only (until optimized) list of
// outgoing parser edges, plus the terminal flag and tags of spec.md §3.
type Node struct {
	Edges    []*Edge
	Terminal bool
	Tags     []any

	// index accelerates AddParser's equivalence search (spec.md §4.D step
	// 1) from a linear scan to an O(1) average lookup, keyed by a hash of
	// {ParserID, Name[, literal byte]}. Collisions are resolved by falling
	// back to Equivalent on each candidate.
	index map[uint64][]*Edge
}

// Edge is a parser edge (spec.md §3): the parser id, the result-field name,
// the reserved priority field, parser-owned data, and the owned child node.
// When ParserID == registry.CustomType, CustomType names a non-owning
// reference to a user-defined type's root instead.
type Edge struct {
	ParserID   registry.ID
	Name       string
	Prio       int
	CustomType *Node
	Data       any
	Child      *Node
}

// NewNode allocates an empty node and registers it with ctx's node count
// (spec.md §4.C).
func NewNode(ctx *Context) *Node {
	ctx.NodeCount++
	return &Node{}
}

// equivKey computes the hash bucket for an edge's equivalence class.
func equivKey(prsid registry.ID, name string, data any) uint64 {
	key := fmt.Sprintf("%d\x00%s", prsid, name)
	if prsid == literalParserID() {
		if s, ok := data.(string); ok && len(s) > 0 {
			key += "\x00" + string(s[0])
		}
	}
	return xxhash.Sum64String(key)
}

// literalParserID is indirected through a var so this package does not
// import internal/parsers (which would create an import cycle, since
// internal/parsers imports this package to call RegisterLiteralID). Callers
// that build literal edges set this once at program init via
// RegisterLiteralID.
var literalID registry.ID = registry.Invalid

// RegisterLiteralID tells the dag package which registry.ID is the literal
// parser, so AddParser can apply §4.D's "one edge per distinct literal
// character" rule. Called once from internal/parsers' init.
func RegisterLiteralID(id registry.ID) { literalID = id }

func literalParserID() registry.ID { return literalID }

// LiteralID exposes the registered literal parser id to other packages
// (internal/optimize needs it to recognize fusible edges).
func LiteralID() registry.ID { return literalID }

// Equivalent implements spec.md §4.D step 1's merge test: same ParserID and
// Name, and for the literal parser, the same leading character.
func (e *Edge) Equivalent(prsid registry.ID, name string, data any) bool {
	if e.ParserID != prsid || e.Name != name {
		return false
	}
	if prsid == literalParserID() {
		a, _ := e.Data.(string)
		b, _ := data.(string)
		return len(a) > 0 && len(b) > 0 && a[0] == b[0]
	}
	return true
}

// FindEquivalent returns an existing outgoing edge equivalent to the given
// {prsid, name, data}, or nil.
func (n *Node) FindEquivalent(prsid registry.ID, name string, data any) *Edge {
	key := equivKey(prsid, name, data)
	for _, candidate := range n.index[key] {
		if candidate.Equivalent(prsid, name, data) {
			return candidate
		}
	}
	return nil
}

// AppendEdge appends e to n's outgoing edge list and indexes it for future
// FindEquivalent lookups. Parser-edges lists are append-only during build
// (spec.md §3 invariant).
func (n *Node) AppendEdge(e *Edge) {
	n.Edges = append(n.Edges, e)
	if n.index == nil {
		n.index = make(map[uint64][]*Edge)
	}
	key := equivKey(e.ParserID, e.Name, e.Data)
	n.index[key] = append(n.index[key], e)
}
