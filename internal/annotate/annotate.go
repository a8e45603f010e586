// Package annotate is the reference implementation of the external
// annotation subsystem spec.md §1 and §4.G defer to: given the tags
// attached to a winning terminal node, decorate the result tree with
// static metadata. It is grounded on the teacher's
// sampling.WorldSampler-shaped "one interface, one reference impl" split.
package annotate

import "fmt"

// Annotator matches internal/normalize.Annotator structurally so either
// package can be used against the other without an import between them.
type Annotator interface {
	Annotate(tags []any, fields map[string]any)
}

// Static looks up each tag in a fixed table and merges the associated
// key/value pairs into the result, under "annotations". Unknown tags are
// ignored — annotation is enrichment, never a source of match failure.
type Static struct {
	Table map[string]map[string]any
}

// NewStatic builds a Static annotator from a tag->metadata table.
func NewStatic(table map[string]map[string]any) *Static {
	return &Static{Table: table}
}

// Annotate implements Annotator.
func (a *Static) Annotate(tags []any, fields map[string]any) {
	if a == nil || len(a.Table) == 0 {
		return
	}
	annotations := map[string]any{}
	for _, t := range tags {
		name := fmt.Sprint(t)
		meta, ok := a.Table[name]
		if !ok {
			continue
		}
		for k, v := range meta {
			annotations[k] = v
		}
	}
	if len(annotations) > 0 {
		fields["annotations"] = annotations
	}
}
