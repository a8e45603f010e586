package parsers

import (
	"strings"

	"github.com/lognorm/pdag/internal/registry"
)

// CharTo matches everything up to (but not including) the first occurrence
// of a configured terminator character. extraData is the single-character
// terminator; construct fails if it is missing.
//
// CharTo sets no Combine hook: internal/optimize fuses only literal edges,
// so adjacent char-to edges are never merged.
var CharTo = registry.Register(registry.Entry{
	Name: "char-to",
	Construct: func(extraData, _ any) (any, error) {
		s, ok := extraData.(string)
		if !ok || len(s) != 1 {
			return nil, errInvalidExtra("char-to", extraData)
		}
		return s[0], nil
	},
	Parse: func(_ *registry.Ctx, str string, offs int, data any) (int, any, error) {
		term := data.(byte)
		idx := strings.IndexByte(str[offs:], term)
		if idx <= 0 {
			return 0, nil, errNoMatch("char-to")
		}
		return idx, str[offs : offs+idx], nil
	},
})
