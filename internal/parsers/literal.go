package parsers

import (
	"strings"

	"github.com/lognorm/pdag/internal/dag"
	"github.com/lognorm/pdag/internal/registry"
)

// Literal matches a fixed byte string. Samples are installed one character
// per literal edge (spec.md §4.D design note) so that shared prefixes
// compact naturally; internal/optimize fuses runs of single-character
// literal edges back into multi-character ones (spec.md §4.E).
var Literal = registry.Register(registry.Entry{
	Name: "literal",
	Construct: func(extraData, _ any) (any, error) {
		s, ok := extraData.(string)
		if !ok || s == "" {
			return nil, errInvalidExtra("literal", extraData)
		}
		return s, nil
	},
	Parse: func(_ *registry.Ctx, str string, offs int, data any) (int, any, error) {
		payload := data.(string)
		if !strings.HasPrefix(str[offs:], payload) {
			return 0, nil, errNoMatch("literal")
		}
		return len(payload), payload, nil
	},
	Combine: func(left, right any) any {
		return left.(string) + right.(string)
	},
})

func init() {
	dag.RegisterLiteralID(Literal)
}
