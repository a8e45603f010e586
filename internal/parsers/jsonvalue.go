package parsers

import (
	"bytes"
	"encoding/json"

	"github.com/lognorm/pdag/internal/registry"
)

// JSON decodes a single JSON value (object, array, string, number, bool, or
// null) starting at offs, returning the decoded value and the exact number
// of bytes it occupied. Combined with the `.` field name (spec.md §4.G,
// §8 scenario 3), an object result merges its keys into the enclosing
// result tree.
var JSON = registry.Register(registry.Entry{
	Name: "json",
	Parse: func(_ *registry.Ctx, str string, offs int, _ any) (int, any, error) {
		dec := json.NewDecoder(bytes.NewReader([]byte(str[offs:])))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return 0, nil, errNoMatch("json")
		}
		return int(dec.InputOffset()), normalizeJSONNumbers(v), nil
	},
})

// normalizeJSONNumbers turns json.Number into int64/float64 so downstream
// consumers of the result tree never have to special-case the decoder's
// deferred-precision type.
func normalizeJSONNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeJSONNumbers(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeJSONNumbers(val)
		}
		return out
	default:
		return v
	}
}
