package parsers

import (
	"strings"
	"unicode"

	"github.com/lognorm/pdag/internal/registry"
)

// Word matches a run of one or more letters, digits, or underscores.
//
// extraData, when a non-empty string, names additional characters that stop
// the run even though they are themselves word characters. internal/rulebase
// computes this stop-set at build time from the literal text immediately
// following the placeholder in a sample — see DESIGN.md's
// internal/parsers entry for why this is how spec.md §8's scenario 2
// (`A%-:word%B` matching `AxyzB`) resolves under the single-shot `parse`
// contract of §4.F.
var Word = registry.Register(registry.Entry{
	Name: "word",
	Construct: func(extraData, _ any) (any, error) {
		stop, _ := extraData.(string)
		return stop, nil
	},
	Parse: func(_ *registry.Ctx, str string, offs int, data any) (int, any, error) {
		stop, _ := data.(string)
		i := offs
		for i < len(str) {
			r := rune(str[i])
			if !isWordByte(str[i]) || strings.ContainsRune(stop, r) {
				break
			}
			i++
		}
		if i == offs {
			return 0, nil, errNoMatch("word")
		}
		return i - offs, str[offs:i], nil
	},
})

func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)) || b == '_'
}
