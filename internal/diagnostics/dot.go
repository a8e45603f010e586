package diagnostics

import (
	"fmt"
	"strings"

	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

// DOT renders ctx's main root as a Graphviz graph: nodes are labeled "n",
// terminal nodes are drawn bold as double circles, and edges are labeled
// "literal:<text>" for literal edges, "<parser>:<field name>" for other
// parser edges, and "custom:<field name>" for custom-type edges.
func DOT(ctx *dag.Context) string {
	var b strings.Builder
	b.WriteString("digraph pdag {\n")
	ids := map[*dag.Node]int{}
	dotNode(&b, ctx.Root, ids)
	b.WriteString("}\n")
	return b.String()
}

func dotNode(b *strings.Builder, n *dag.Node, ids map[*dag.Node]int) int {
	if id, ok := ids[n]; ok {
		return id
	}
	id := len(ids)
	ids[n] = id

	shape := "circle"
	style := ""
	if n.Terminal {
		shape = "doublecircle"
		style = " style=bold"
	}
	fmt.Fprintf(b, "  n%d [label=\"n\" shape=%s%s];\n", id, shape, style)

	for _, e := range n.Edges {
		childID := dotNode(b, e.Child, ids)
		fmt.Fprintf(b, "  n%d -> n%d [label=%q];\n", id, childID, dotEdgeLabel(e))
	}
	return id
}

func dotEdgeLabel(e *dag.Edge) string {
	if e.ParserID == registry.CustomType {
		return "custom:" + e.Name
	}
	entry, err := registry.Lookup(e.ParserID)
	if err != nil {
		return e.Name
	}
	if lit, ok := e.Data.(string); ok && entry.Name == "literal" {
		return fmt.Sprintf("literal:%s", lit)
	}
	return fmt.Sprintf("%s:%s", entry.Name, e.Name)
}
