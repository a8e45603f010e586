package optimize

import (
	"testing"

	"github.com/lognorm/pdag/internal/builder"
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

var litID = registry.Register(registry.Entry{
	Name: "optimize-test-literal",
	Construct: func(extraData, _ any) (any, error) {
		return extraData.(string), nil
	},
	Parse: func(_ *registry.Ctx, str string, offs int, data any) (int, any, error) {
		return len(data.(string)), data, nil
	},
	Combine: func(left, right any) any {
		return left.(string) + right.(string)
	},
})

func init() {
	dag.RegisterLiteralID(litID)
}

func installLiteralRun(t *testing.T, ctx *dag.Context, root *dag.Node, s string) *dag.Node {
	t.Helper()
	node := root
	for i := 0; i < len(s); i++ {
		edge, err := builder.NewLiteralEdge(litID, s[i])
		if err != nil {
			t.Fatalf("NewLiteralEdge: %v", err)
		}
		node, err = builder.AddParser(ctx, node, edge)
		if err != nil {
			t.Fatalf("AddParser: %v", err)
		}
	}
	return node
}

func TestRunFusesLiteralRun(t *testing.T) {
	ctx := dag.NewContext()
	end := installLiteralRun(t, ctx, ctx.Root, "abc")
	end.Terminal = true

	Run(ctx)

	if len(ctx.Root.Edges) != 1 {
		t.Fatalf("expected one fused edge, got %d", len(ctx.Root.Edges))
	}
	e := ctx.Root.Edges[0]
	if e.Data.(string) != "abc" {
		t.Fatalf("expected fused literal %q, got %v", "abc", e.Data)
	}
	if e.Child != end {
		t.Fatal("fused edge should still lead to the original terminal node")
	}
}

func TestRunStopsAtTerminalNode(t *testing.T) {
	ctx := dag.NewContext()
	mid := installLiteralRun(t, ctx, ctx.Root, "a")
	mid.Terminal = true
	end := installLiteralRun(t, ctx, mid, "b")
	end.Terminal = true

	Run(ctx)

	if len(ctx.Root.Edges) != 1 {
		t.Fatalf("expected one edge off root, got %d", len(ctx.Root.Edges))
	}
	if ctx.Root.Edges[0].Data.(string) != "a" {
		t.Fatal("fusing must not cross a terminal node")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := dag.NewContext()
	end := installLiteralRun(t, ctx, ctx.Root, "abcd")
	end.Terminal = true

	Run(ctx)
	Run(ctx)

	if len(ctx.Root.Edges) != 1 || ctx.Root.Edges[0].Data.(string) != "abcd" {
		t.Fatal("a second Run should find nothing left to fuse")
	}
}

func TestRunLeavesBranchingNodeUnfused(t *testing.T) {
	ctx := dag.NewContext()
	mid := installLiteralRun(t, ctx, ctx.Root, "a")
	end1 := installLiteralRun(t, ctx, mid, "b")
	end1.Terminal = true
	end2 := installLiteralRun(t, ctx, mid, "c")
	end2.Terminal = true

	Run(ctx)

	if len(ctx.Root.Edges) != 1 {
		t.Fatalf("expected a single edge off root, got %d", len(ctx.Root.Edges))
	}
	if ctx.Root.Edges[0].Data.(string) != "a" {
		t.Fatal("a node with two outgoing edges must not be fused through")
	}
	if len(mid.Edges) != 2 {
		t.Fatalf("expected branching node to keep both edges, got %d", len(mid.Edges))
	}
}
