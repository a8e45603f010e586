// Package normalize implements spec.md §4.F (the recursive backtracking
// matcher, normalizeRec / Normalize) and §4.G (result-tree fold rules).
package normalize

import (
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

// Annotator decorates a matched result with the static metadata behind a
// terminal node's tags (spec.md §1, §4.G). The core only needs the
// interface; internal/annotate supplies a reference implementation.
type Annotator interface {
	Annotate(tags []any, fields map[string]any)
}

// Normalize is spec.md §6's runtime-facing entry point: normalize(ctx, str,
// strLen, &result). strLen is implicit in Go's string header, so it is
// dropped from the signature. On success Matched is true and Fields holds
// the extracted tree (plus event.tags, if the winning terminal carried
// any); on failure Fields holds originalmsg/unparsed-data (spec.md §4.G).
func Normalize(ctx *dag.Context, str string, annotator Annotator) Result {
	rctx := &registry.Ctx{Debug: ctx.Debug}

	ok, parsedTo, fields, endNode := normalizeRec(rctx, ctx.Root, str, 0, false)
	if ok {
		if fields == nil {
			fields = map[string]any{}
		}
		if len(endNode.Tags) > 0 {
			fields["event.tags"] = endNode.Tags
			if annotator != nil {
				annotator.Annotate(endNode.Tags, fields)
			}
		}
		return Result{Fields: fields, Matched: true}
	}

	if parsedTo < 0 {
		parsedTo = 0
	}
	if parsedTo > len(str) {
		parsedTo = len(str)
	}
	return Result{
		Fields: map[string]any{
			"originalmsg":   str,
			"unparsed-data": str[parsedTo:],
		},
		Matched: false,
	}
}

// normalizeRec is spec.md §4.F's normalizeRec, expressed in Go's idiom of
// returning the accumulated result instead of writing through out-params.
// On success, the returned fields map already contains every fold from
// node downward along the winning path (spec.md §4.G); the caller folds its
// own edge's value into it as the recursion unwinds.
func normalizeRec(rctx *registry.Ctx, node *dag.Node, str string, offs int, partial bool) (ok bool, parsedTo int, fields map[string]any, endNode *dag.Node) {
	parsedTo = offs

	for _, e := range node.Edges {
		var value any
		var consumedEnd int

		if e.ParserID == registry.CustomType {
			subOK, subParsedTo, subFields, _ := normalizeRec(rctx, e.CustomType, str, offs, true)
			if subParsedTo > parsedTo {
				parsedTo = subParsedTo
			}
			if !subOK {
				continue
			}
			value = subFields
			consumedEnd = subParsedTo
		} else {
			entry, err := registry.Lookup(e.ParserID)
			if err != nil {
				continue
			}
			parsed, v, perr := entry.Parse(rctx, str, offs, e.Data)
			if perr != nil {
				continue
			}
			consumedEnd = offs + parsed
			if e.Name != "-" {
				value = v
			}
		}

		childOK, childParsedTo, childFields, childEnd := normalizeRec(rctx, e.Child, str, consumedEnd, partial)
		if childParsedTo > parsedTo {
			parsedTo = childParsedTo
		}
		if !childOK {
			continue
		}

		if childFields == nil {
			childFields = map[string]any{}
		}
		return true, childParsedTo, fold(childFields, e.Name, value), childEnd
	}

	if node.Terminal && (offs == len(str) || partial) {
		return true, offs, map[string]any{}, node
	}

	return false, parsedTo, nil, nil
}
