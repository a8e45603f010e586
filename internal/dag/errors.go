package dag

import "fmt"

// BuildError is spec.md §7's BuildError: surfaced to the caller, leaving the
// pdag in its previous valid state.
type BuildError struct {
	Kind    string
	Message string
}

func (e BuildError) Error() string {
	return fmt.Sprintf("pdag build error (%s): %s", e.Kind, e.Message)
}

func errInvalidParserName(name string) error {
	return BuildError{Kind: "InvalidParserName", Message: fmt.Sprintf("unknown parser %q", name)}
}

func errUnknownType(name string) error {
	return BuildError{Kind: "UnknownCustomType", Message: fmt.Sprintf("no user-defined type %q", name)}
}
