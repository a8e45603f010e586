package normalize

import (
	"fmt"
	"sort"
	"strings"
)

// Result is the structured record spec.md §3 calls the "result tree": a
// hierarchical map of field names to values. It plays the role the teacher
// splits across its `query.Query`/`result.Result` pair — here there is only
// ever one "kind" of result, so Normalize returns this single type directly
// instead of a tagged union.
type Result struct {
	// Fields holds the extracted (or, on failure, the raw/unparsed) data.
	Fields map[string]any
	// Matched is true when a terminal was reached (spec.md §6: status 0).
	Matched bool
}

// String renders Result the way the teacher's result types render
// themselves — a small, deterministic, human-readable summary, not a JSON
// dump (spec.md leaves serialization to the embedder).
func (r Result) String() string {
	var b strings.Builder
	if r.Matched {
		b.WriteString("Matched:")
	} else {
		b.WriteString("No match:")
	}
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s = %v", k, r.Fields[k])
	}
	return b.String()
}

// fold applies spec.md §4.G's three rules for a successful edge's value,
// mutating and returning dest.
func fold(dest map[string]any, name string, value any) map[string]any {
	switch name {
	case "-":
		return dest
	case ".":
		obj, ok := value.(map[string]any)
		if !ok {
			dest["."] = value
			return dest
		}
		for k, v := range obj {
			dest[k] = v
		}
		return dest
	default:
		dest[name] = value
		return dest
	}
}
