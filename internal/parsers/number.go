package parsers

import (
	"strconv"

	"github.com/lognorm/pdag/internal/registry"
)

// Number matches an optionally-signed integer or decimal, returning an
// int64 or float64 value depending on whether a fractional part (a '.'
// followed by at least one digit) was present. A '.' with no digit after it
// is not consumed.
var Number = registry.Register(registry.Entry{
	Name: "number",
	Parse: func(_ *registry.Ctx, str string, offs int, _ any) (int, any, error) {
		i := offs
		if i < len(str) && (str[i] == '-' || str[i] == '+') {
			i++
		}
		start := i
		for i < len(str) && str[i] >= '0' && str[i] <= '9' {
			i++
		}
		if i == start {
			return 0, nil, errNoMatch("number")
		}
		isFloat := false
		if i < len(str) && str[i] == '.' {
			j := i + 1
			for j < len(str) && str[j] >= '0' && str[j] <= '9' {
				j++
			}
			if j > i+1 {
				isFloat = true
				i = j
			}
		}

		text := str[offs:i]
		if isFloat {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return 0, nil, errNoMatch("number")
			}
			return i - offs, f, nil
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, nil, errNoMatch("number")
		}
		return i - offs, n, nil
	},
})
