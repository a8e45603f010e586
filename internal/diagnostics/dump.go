// Package diagnostics implements spec.md §4.H: pure, read-only walkers over
// a pdag — a text dump, a DOT exporter, and a statistics gatherer. None of
// them mutate the graph.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

// Dump renders an indented textual tree of ctx's main root, in the spirit
// of the teacher's result.formatPath/String() helpers.
func Dump(ctx *dag.Context) string {
	var b strings.Builder
	dumpNode(&b, ctx.Root, 0, map[*dag.Node]bool{})
	return b.String()
}

// DumpType renders one named user-defined type's root.
func DumpType(ctx *dag.Context, name string) (string, bool) {
	root, ok := ctx.Type(name)
	if !ok {
		return "", false
	}
	var b strings.Builder
	dumpNode(&b, root, 0, map[*dag.Node]bool{})
	return b.String(), true
}

func dumpNode(b *strings.Builder, n *dag.Node, depth int, seen map[*dag.Node]bool) {
	indent := strings.Repeat("  ", depth)
	if seen[n] {
		fmt.Fprintf(b, "%s(repeat)\n", indent)
		return
	}
	seen[n] = true

	marker := ""
	if n.Terminal {
		marker = " [terminal]"
		if len(n.Tags) > 0 {
			marker += fmt.Sprintf(" tags=%v", n.Tags)
		}
	}
	fmt.Fprintf(b, "%snode%s\n", indent, marker)

	for _, e := range n.Edges {
		fmt.Fprintf(b, "%s  -%s-> %s\n", indent, edgeLabel(e), fieldLabel(e))
		if e.ParserID == registry.CustomType {
			fmt.Fprintf(b, "%s    (custom type edge)\n", indent)
		}
		dumpNode(b, e.Child, depth+2, seen)
	}
}

func edgeLabel(e *dag.Edge) string {
	if e.ParserID == registry.CustomType {
		return "custom"
	}
	entry, err := registry.Lookup(e.ParserID)
	if err != nil {
		return "?"
	}
	if lit, ok := e.Data.(string); ok && entry.Name == "literal" {
		return fmt.Sprintf("literal:%q", lit)
	}
	return entry.Name
}

func fieldLabel(e *dag.Edge) string {
	return fmt.Sprintf("field=%q", e.Name)
}
