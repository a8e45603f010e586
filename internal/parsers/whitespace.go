package parsers

import (
	"unicode"

	"github.com/lognorm/pdag/internal/registry"
)

// Whitespace matches a run of one or more bytes that unicode.IsSpace
// accepts (space, tab, newline, carriage return, vertical tab, form feed,
// and the single bytes 0x85 and 0xA0). It never
// produces a value worth keeping by name, but can still be discarded (`-`)
// or merged like any other parser per spec.md §4.G.
var Whitespace = registry.Register(registry.Entry{
	Name: "whitespace",
	Parse: func(_ *registry.Ctx, str string, offs int, _ any) (int, any, error) {
		i := offs
		for i < len(str) && unicode.IsSpace(rune(str[i])) {
			i++
		}
		if i == offs {
			return 0, nil, errNoMatch("whitespace")
		}
		return i - offs, str[offs:i], nil
	},
})
