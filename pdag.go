// Package pdag is a thin facade over the internal pdag engine: build a
// graph from sample lines, optimize it, and normalize log lines against
// it.
package pdag

import (
	"github.com/lognorm/pdag/internal/annotate"
	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/diagnostics"
	"github.com/lognorm/pdag/internal/normalize"
	"github.com/lognorm/pdag/internal/optimize"
	"github.com/lognorm/pdag/internal/rulebase"
)

type (
	// Result is the outcome of a Normalize call (spec.md §3/§6).
	Result = normalize.Result
	// Annotator decorates a matched result with tag-derived metadata.
	Annotator = normalize.Annotator
	// Stats summarizes a pdag's shape (spec.md §4.H).
	Stats = diagnostics.Stats
)

// Context wraps an internal pdag build-and-match context.
type Context struct {
	ctx       *dag.Context
	rb        rulebase.Parser
	annotator Annotator
}

// New creates an empty context, ready to accept samples via AddSample.
func New() *Context {
	ctx := dag.NewContext()
	return &Context{ctx: ctx, rb: rulebase.New(ctx)}
}

// SetDebug toggles the debug flag threaded through to field parsers
// (spec.md §3, §6).
func (c *Context) SetDebug(debug bool) {
	c.ctx.Debug = debug
}

// SetAnnotator installs the collaborator Normalize calls on a match whose
// terminal node carries tags. A nil annotator (the default) disables
// annotation — matching stays possible without one.
func (c *Context) SetAnnotator(a Annotator) {
	c.annotator = a
}

// AddSample installs one rulebase line (spec.md §6's external rulebase
// parser, implemented by internal/rulebase).
func (c *Context) AddSample(line string) error {
	return c.rb.Install(line)
}

// Optimize runs the literal-path compaction pass (spec.md §4.E). Call it
// once after all samples are installed and before normalizing.
func (c *Context) Optimize() {
	optimize.Run(c.ctx)
}

// Normalize matches str against the pdag (spec.md §4.F/§4.G).
func (c *Context) Normalize(str string) Result {
	return normalize.Normalize(c.ctx, str, c.annotator)
}

// Dump renders the main root as an indented text tree (spec.md §4.H).
func (c *Context) Dump() string {
	return diagnostics.Dump(c.ctx)
}

// DOT renders the main root as a Graphviz graph (spec.md §4.H).
func (c *Context) DOT() string {
	return diagnostics.DOT(c.ctx)
}

// Stats gathers summary statistics over every component of the pdag
// (spec.md §4.H).
func (c *Context) Stats() Stats {
	return diagnostics.Gather(c.ctx)
}

// Destroy releases the context's graph (spec.md §4.C). Go's garbage
// collector reclaims the memory; Destroy exists to preserve the explicit
// create/destroy lifecycle spec.md §3 describes.
func (c *Context) Destroy() {
	c.ctx.Destroy()
}

// NewStaticAnnotator builds the reference annotator implementation: a
// fixed tag -> metadata table merged under "annotations" on a match.
func NewStaticAnnotator(table map[string]map[string]any) Annotator {
	return annotate.NewStatic(table)
}
