// Package rulebase is the reference implementation of the "rulebase
// parser" collaborator spec.md §1 and §6 describe as external to the
// engine core: it turns sample lines into builder.AddParser calls.
package rulebase

import (
	"strings"

	"github.com/lognorm/pdag/internal/dag"
)

// Parser installs sample lines into a pdag context.
type Parser struct {
	ctx *dag.Context
}

// New wraps ctx for sample installation.
func New(ctx *dag.Context) Parser {
	return Parser{ctx: ctx}
}

// Install parses one rulebase line and adds it to the pdag.
//
// A line is, in order:
//
//	("type" <name> ":")?  ("tags=" <tag> ("," <tag>)* ":")?  <body>
//
// body is a sequence of literal text and "%name:parser[:extra]%"
// placeholders. A type directive installs body into the named
// user-defined type's root (creating it on first use) instead of the main
// root; placeholders may reference either a built-in parser or any type
// already defined by an earlier line.
func (p Parser) Install(line string) error {
	root := p.ctx.Root
	var tags []any

	rest := line
	if name, tail, ok := cutDirective(rest, "type "); ok {
		root = p.ctx.DefineType(strings.TrimSpace(name))
		rest = tail
	}
	if taglist, tail, ok := cutDirective(rest, "tags="); ok {
		for _, t := range strings.Split(taglist, ",") {
			tags = append(tags, strings.TrimSpace(t))
		}
		rest = tail
	}

	parts, err := splitParts(rest)
	if err != nil {
		return err
	}

	node := root
	for i, part := range parts {
		switch part := part.(type) {
		case textPart:
			node, err = installLiteral(p.ctx, node, string(part))
		case fieldPart:
			node, err = installField(p.ctx, node, part.field, nextLiteralText(parts, i))
		}
		if err != nil {
			return err
		}
	}

	node.Terminal = true
	if len(tags) > 0 {
		node.Tags = tags
	}
	return nil
}

func nextLiteralText(parts []any, i int) string {
	if i+1 >= len(parts) {
		return ""
	}
	if t, ok := parts[i+1].(textPart); ok {
		return string(t)
	}
	return ""
}

// cutDirective recognizes one optional "<prefix><value>:" directive at the
// start of s, returning the value and the remainder after its terminating
// colon.
func cutDirective(s, prefix string) (value, rest string, ok bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", s, false
	}
	body := s[len(prefix):]
	idx := strings.IndexByte(body, ':')
	if idx < 0 {
		return "", s, false
	}
	return body[:idx], body[idx+1:], true
}
