package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lognorm/pdag/internal/builder"
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/parsers"
)

func installLiteral(t *testing.T, ctx *dag.Context, node *dag.Node, name, text string) *dag.Node {
	t.Helper()
	for i := 0; i < len(text); i++ {
		n := "-"
		if i == len(text)-1 && name != "" {
			n = name
		}
		edge, err := builder.NewEdge(parsers.Literal, n, nil, string(text[i]), nil)
		require.NoError(t, err)
		node, err = builder.AddParser(ctx, node, edge)
		require.NoError(t, err)
	}
	return node
}

func TestNormalizeMatchesLiteralLine(t *testing.T) {
	ctx := dag.NewContext()
	end := installLiteral(t, ctx, ctx.Root, "", "hello")
	end.Terminal = true

	res := Normalize(ctx, "hello", nil)

	assert.True(t, res.Matched)
	assert.Empty(t, res.Fields)
}

func TestNormalizeTotalFailureReportsWatermark(t *testing.T) {
	ctx := dag.NewContext()
	end := installLiteral(t, ctx, ctx.Root, "", "hello")
	end.Terminal = true

	res := Normalize(ctx, "help", nil)

	require.False(t, res.Matched)
	assert.Equal(t, "help", res.Fields["originalmsg"])
	assert.Equal(t, "p", res.Fields["unparsed-data"])
}

func TestNormalizeDiscardFieldName(t *testing.T) {
	ctx := dag.NewContext()
	node := ctx.Root
	edge, err := builder.NewEdge(parsers.Word, "-", nil, nil, nil)
	require.NoError(t, err)
	node, err = builder.AddParser(ctx, node, edge)
	require.NoError(t, err)
	node.Terminal = true

	res := Normalize(ctx, "abc", nil)

	require.True(t, res.Matched)
	assert.Empty(t, res.Fields)
}

func TestNormalizeJSONMergeRule(t *testing.T) {
	ctx := dag.NewContext()
	edge, err := builder.NewEdge(parsers.JSON, ".", nil, nil, nil)
	require.NoError(t, err)
	node, err := builder.AddParser(ctx, ctx.Root, edge)
	require.NoError(t, err)
	node.Terminal = true

	res := Normalize(ctx, `{"a":1,"b":"x"}`, nil)

	require.True(t, res.Matched)
	assert.EqualValues(t, 1, res.Fields["a"])
	assert.Equal(t, "x", res.Fields["b"])
}

func TestNormalizeTagsInvokesAnnotator(t *testing.T) {
	ctx := dag.NewContext()
	end := installLiteral(t, ctx, ctx.Root, "", "ping")
	end.Terminal = true
	end.Tags = []any{"net"}

	ann := &recordingAnnotator{}
	res := Normalize(ctx, "ping", ann)

	require.True(t, res.Matched)
	assert.Equal(t, []any{"net"}, res.Fields["event.tags"])
	assert.True(t, ann.called)
	assert.Equal(t, []any{"net"}, ann.tags)
}

type recordingAnnotator struct {
	called bool
	tags   []any
}

func (a *recordingAnnotator) Annotate(tags []any, fields map[string]any) {
	a.called = true
	a.tags = tags
	fields["annotations"] = map[string]any{"seen": true}
}

// TestNormalizeWordStopSet exercises spec.md §8 scenario 2: the graph of a
// sample "A%-:word%B" must still match "AxyzB" even though word is
// naturally greedy. The graph is built by hand here, passing the word edge
// the stop-set "B" that the rulebase parser derives from the trailing
// literal.
func TestNormalizeWordStopSet(t *testing.T) {
	ctx := dag.NewContext()

	edgeA, err := builder.NewEdge(parsers.Literal, "-", nil, "A", nil)
	require.NoError(t, err)
	node, err := builder.AddParser(ctx, ctx.Root, edgeA)
	require.NoError(t, err)

	wordEdge, err := builder.NewEdge(parsers.Word, "-", nil, "B", nil)
	require.NoError(t, err)
	node, err = builder.AddParser(ctx, node, wordEdge)
	require.NoError(t, err)

	end := installLiteral(t, ctx, node, "", "B")
	end.Terminal = true

	res := Normalize(ctx, "AxyzB", nil)

	require.True(t, res.Matched)
}
