package parsers

import "fmt"

// ParseError is the error type of the built-in parsers. Returned from a
// Parse hook it is the WrongParser status of spec.md §7: the normalizer's
// signal to try the next edge, which internal/normalize consumes and never
// returns. Returned from a Construct hook (invalid extraData) it is passed
// back to whoever builds the edge, so it can surface from AddSample.
type ParseError struct {
	Parser  string
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Parser, e.Message)
}

func errNoMatch(parser string) error {
	return ParseError{Parser: parser, Message: "no match at this position"}
}

func errInvalidExtra(parser string, extra any) error {
	return ParseError{Parser: parser, Message: fmt.Sprintf("invalid extraData %#v", extra)}
}
