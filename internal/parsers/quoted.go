package parsers

import (
	"strconv"

	"github.com/lognorm/pdag/internal/registry"
)

// QuotedString matches a double-quoted string with backslash escapes,
// returning the unescaped content (without the surrounding quotes).
var QuotedString = registry.Register(registry.Entry{
	Name: "quoted-string",
	Parse: func(_ *registry.Ctx, str string, offs int, _ any) (int, any, error) {
		if offs >= len(str) || str[offs] != '"' {
			return 0, nil, errNoMatch("quoted-string")
		}
		i := offs + 1
		for i < len(str) {
			if str[i] == '\\' && i+1 < len(str) {
				i += 2
				continue
			}
			if str[i] == '"' {
				raw := str[offs : i+1]
				unquoted, err := strconv.Unquote(raw)
				if err != nil {
					// Fall back to the raw interior if it isn't valid Go
					// escape syntax; still a successful match.
					unquoted = str[offs+1 : i]
				}
				return i + 1 - offs, unquoted, nil
			}
			i++
		}
		return 0, nil, errNoMatch("quoted-string")
	},
})
