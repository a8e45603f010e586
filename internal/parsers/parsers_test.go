package parsers

import (
	"testing"

	"github.com/lognorm/pdag/internal/registry"
)

func mustEntry(t *testing.T, id registry.ID) registry.Entry {
	t.Helper()
	e, err := registry.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup(%d) failed: %v", id, err)
	}
	return e
}

func TestLiteralParse(t *testing.T) {
	e := mustEntry(t, Literal)
	data, err := e.Construct("foo", nil)
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	n, v, err := e.Parse(&registry.Ctx{}, "foobar", 0, data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 3 || v.(string) != "foo" {
		t.Fatalf("expected (3, %q), got (%d, %v)", "foo", n, v)
	}
}

func TestLiteralConstructRejectsEmpty(t *testing.T) {
	e := mustEntry(t, Literal)
	if _, err := e.Construct("", nil); err == nil {
		t.Fatal("expected error constructing literal from empty string")
	}
}

func TestWordConsumesUntilNonWordByte(t *testing.T) {
	e := mustEntry(t, Word)
	n, v, err := e.Parse(&registry.Ctx{}, "abc123 def", 0, "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 6 || v.(string) != "abc123" {
		t.Fatalf("expected (6, %q), got (%d, %v)", "abc123", n, v)
	}
}

func TestWordStopSet(t *testing.T) {
	e := mustEntry(t, Word)
	data, _ := e.Construct("B", nil)
	n, v, err := e.Parse(&registry.Ctx{}, "xyzB", 0, data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 3 || v.(string) != "xyz" {
		t.Fatalf("expected (3, %q), got (%d, %v)", "xyz", n, v)
	}
}

func TestNumberParsesIntAndFloat(t *testing.T) {
	e := mustEntry(t, Number)

	n, v, err := e.Parse(&registry.Ctx{}, "-42rest", 0, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 3 || v.(int64) != -42 {
		t.Fatalf("expected (3, -42), got (%d, %v)", n, v)
	}

	n, v, err = e.Parse(&registry.Ctx{}, "3.14x", 0, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 4 || v.(float64) != 3.14 {
		t.Fatalf("expected (4, 3.14), got (%d, %v)", n, v)
	}
}

func TestIPv4RejectsOutOfRangeOctet(t *testing.T) {
	e := mustEntry(t, IPv4)
	if _, _, err := e.Parse(&registry.Ctx{}, "999.1.1.1", 0, nil); err == nil {
		t.Fatal("expected rejection of octet > 255")
	}
}

func TestIPv4MatchesDottedQuad(t *testing.T) {
	e := mustEntry(t, IPv4)
	n, v, err := e.Parse(&registry.Ctx{}, "10.0.0.1 rest", 0, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 8 || v.(string) != "10.0.0.1" {
		t.Fatalf("expected (8, %q), got (%d, %v)", "10.0.0.1", n, v)
	}
}

func TestQuotedStringUnescapes(t *testing.T) {
	e := mustEntry(t, QuotedString)
	n, v, err := e.Parse(&registry.Ctx{}, `"a\"b" rest`, 0, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.(string) != `a"b` {
		t.Fatalf("expected unescaped %q, got %v", `a"b`, v)
	}
	if n != len(`"a\"b"`) {
		t.Fatalf("expected to consume %d bytes, got %d", len(`"a\"b"`), n)
	}
}

func TestCharToRequiresNonEmptyMatch(t *testing.T) {
	e := mustEntry(t, CharTo)
	data, _ := e.Construct(",", nil)
	if _, _, err := e.Parse(&registry.Ctx{}, ",rest", 0, data); err == nil {
		t.Fatal("expected error for empty match before terminator")
	}
}

func TestCharToMatchesUpToTerminator(t *testing.T) {
	e := mustEntry(t, CharTo)
	data, _ := e.Construct(",", nil)
	n, v, err := e.Parse(&registry.Ctx{}, "abc,def", 0, data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 3 || v.(string) != "abc" {
		t.Fatalf("expected (3, %q), got (%d, %v)", "abc", n, v)
	}
}

func TestRestConsumesToEnd(t *testing.T) {
	e := mustEntry(t, Rest)
	n, v, err := e.Parse(&registry.Ctx{}, "hello", 2, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != 3 || v.(string) != "llo" {
		t.Fatalf("expected (3, %q), got (%d, %v)", "llo", n, v)
	}
}

func TestJSONDecodesObjectAndStopsAtEnd(t *testing.T) {
	e := mustEntry(t, JSON)
	n, v, err := e.Parse(&registry.Ctx{}, `{"a":1}tail`, 0, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if n != len(`{"a":1}`) {
		t.Fatalf("expected to consume %d bytes, got %d", len(`{"a":1}`), n)
	}
	m := v.(map[string]any)
	if m["a"].(int64) != 1 {
		t.Fatalf("expected a=1, got %v", m["a"])
	}
}
