package parsers

import (
	"strconv"

	"github.com/lognorm/pdag/internal/registry"
)

// IPv4 matches a dotted-quad address, validating each octet is 0-255.
var IPv4 = registry.Register(registry.Entry{
	Name: "ipv4",
	Parse: func(_ *registry.Ctx, str string, offs int, _ any) (int, any, error) {
		i := offs
		for octet := 0; octet < 4; octet++ {
			start := i
			for i < len(str) && str[i] >= '0' && str[i] <= '9' {
				i++
			}
			if i == start || i-start > 3 {
				return 0, nil, errNoMatch("ipv4")
			}
			n, err := strconv.Atoi(str[start:i])
			if err != nil || n > 255 {
				return 0, nil, errNoMatch("ipv4")
			}
			if octet < 3 {
				if i >= len(str) || str[i] != '.' {
					return 0, nil, errNoMatch("ipv4")
				}
				i++
			}
		}
		return i - offs, str[offs:i], nil
	},
})
