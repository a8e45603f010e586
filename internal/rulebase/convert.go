package rulebase

import (
	"strings"

	"github.com/lognorm/pdag/internal/builder"
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/parsers"
	"github.com/lognorm/pdag/internal/registry"
)

// textPart is a run of literal text between placeholders (or before the
// first one / after the last one).
type textPart string

// fieldPart is one parsed "%name:parser[:extra]%" placeholder.
type fieldPart struct {
	field FieldAST
}

// splitParts walks line looking for "%...%" placeholders, parsing the
// interior of each with fieldParser and leaving everything else as literal
// text, in order.
func splitParts(line string) ([]any, error) {
	var parts []any
	rest := line
	for {
		start := strings.IndexByte(rest, '%')
		if start < 0 {
			if rest != "" {
				parts = append(parts, textPart(rest))
			}
			return parts, nil
		}
		if start > 0 {
			parts = append(parts, textPart(rest[:start]))
		}
		rest = rest[start+1:]

		end := strings.IndexByte(rest, '%')
		if end < 0 {
			return nil, errUnterminatedField(line)
		}
		inner := rest[:end]
		rest = rest[end+1:]

		ast, err := fieldParser.ParseString("", inner)
		if err != nil {
			return nil, SyntaxError{Kind: "InvalidField", Message: err.Error()}
		}
		parts = append(parts, fieldPart{field: *ast})
	}
}

// installLiteral adds one edge per byte of text (spec.md §4.D design note:
// samples install one character per literal edge; internal/optimize fuses
// runs of them back together after the whole rulebase is loaded).
func installLiteral(ctx *dag.Context, node *dag.Node, text string) (*dag.Node, error) {
	for i := 0; i < len(text); i++ {
		edge, err := builder.NewLiteralEdge(parsers.Literal, text[i])
		if err != nil {
			return nil, err
		}
		node, err = builder.AddParser(ctx, node, edge)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// installField adds the edge for one placeholder. nextLiteral is the
// literal text (if any) immediately following the placeholder in the
// sample, used to derive a stop-set for the word parser when the rule
// author did not supply an explicit extra (spec.md §8 scenario 2).
func installField(ctx *dag.Context, node *dag.Node, f FieldAST, nextLiteral string) (*dag.Node, error) {
	if id := registry.IDOf(f.Parser); id != registry.Invalid {
		extra := fieldExtra(f, nextLiteral)
		edge, err := builder.NewEdge(id, f.Name, nil, extra, nil)
		if err != nil {
			return nil, err
		}
		return builder.AddParser(ctx, node, edge)
	}

	if typeRoot, ok := ctx.Type(f.Parser); ok {
		edge, err := builder.NewEdge(registry.CustomType, f.Name, typeRoot, nil, nil)
		if err != nil {
			return nil, err
		}
		return builder.AddParser(ctx, node, edge)
	}

	return nil, errUnknownParser(f.Parser)
}

func fieldExtra(f FieldAST, nextLiteral string) any {
	if f.Extra != nil {
		return *f.Extra
	}
	if f.Parser == "word" && nextLiteral != "" {
		return string(nextLiteral[0])
	}
	return nil
}
