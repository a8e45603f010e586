package dag

// Context is the process-wide handle of spec.md §3: the main pdag root, the
// ordered table of user-defined types, a debug flag, and a node count. It
// exclusively owns every Node it transitively reaches.
type Context struct {
	Root      *Node
	Types     map[string]*Node
	TypeOrder []string
	Debug     bool
	NodeCount int
}

// NewContext creates an empty context with a fresh, non-terminal root node.
func NewContext() *Context {
	ctx := &Context{Types: make(map[string]*Node)}
	ctx.Root = NewNode(ctx)
	return ctx
}

// DefineType registers a new named user-defined type rooted at a fresh
// node, returning its root for the rulebase parser to build into. Returns
// the existing root if the name is already defined, so repeated
// installation of samples into the same type keeps sharing one root.
func (ctx *Context) DefineType(name string) *Node {
	if root, ok := ctx.Types[name]; ok {
		return root
	}
	root := NewNode(ctx)
	ctx.Types[name] = root
	ctx.TypeOrder = append(ctx.TypeOrder, name)
	return root
}

// Type looks up a previously defined user type's root.
func (ctx *Context) Type(name string) (*Node, bool) {
	root, ok := ctx.Types[name]
	return root, ok
}

// Roots returns every component the optimizer and diagnostics must walk:
// each named type's root (in definition order), then the main root
// (spec.md §4.E: "every component... each user-defined-type root, then the
// main root").
func (ctx *Context) Roots() []*Node {
	roots := make([]*Node, 0, len(ctx.TypeOrder)+1)
	for _, name := range ctx.TypeOrder {
		roots = append(roots, ctx.Types[name])
	}
	return append(roots, ctx.Root)
}

// Destroy releases the context's reference to its root and named types.
// Go's garbage collector reclaims the actual Node/Edge graph; Destroy
// exists to preserve the explicit create/destroy lifecycle spec.md §3
// describes (embedders that hold onto a *Context after Destroy get a
// context with no root, matching the "owns nothing after destruction"
// contract rather than relying on finalizers).
func (ctx *Context) Destroy() {
	ctx.Root = nil
	ctx.Types = nil
	ctx.TypeOrder = nil
}
