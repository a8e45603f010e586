package parsers

import "github.com/lognorm/pdag/internal/registry"

// Rest matches everything from offs to the end of the input. It always
// succeeds, including on an empty remainder, so it is typically installed
// as the last edge of a node.
var Rest = registry.Register(registry.Entry{
	Name: "rest",
	Parse: func(_ *registry.Ctx, str string, offs int, _ any) (int, any, error) {
		return len(str) - offs, str[offs:], nil
	},
})
