package rulebase

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var fieldLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Ident allows internal hyphens so it matches registry names like
	// "char-to" and "quoted-string" (spec.md §4.A) as a single token.
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Extra", Pattern: `[^:]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// FieldAST is the grammar for the inside of one "%name:parser[:extra]%"
// placeholder, the only part of a rulebase sample line with enough
// structure to warrant a parser combinator instead of plain scanning.
type FieldAST struct {
	Name   string  `parser:"@(Ident|Extra) \":\""`
	Parser string  `parser:"@Ident"`
	Extra  *string `parser:"( \":\" @(Ident|Extra) )?"`
}

var fieldParser = participle.MustBuild[FieldAST](
	participle.Lexer(fieldLexer),
	participle.Elide("Whitespace"),
)
