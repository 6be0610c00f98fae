// Package parser implements the concrete lexer and grammar for lumen
// source text, using github.com/alecthomas/participle/v2 (grounded on
// gaarutyunov-guix's pkg/parser). It produces trees satisfying
// reader.ParseNode, keeping package reader itself parser-agnostic.
package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"suse.dev/lumen/reader"
)

var lumenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Boolean", Pattern: `#t|#f`},
	{Name: "Float", Pattern: `[+-]?[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?`},
	{Name: "Int", Pattern: `[+-]?[0-9]+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Symbol", Pattern: `[A-Za-z0-9_+\-*/\\=<>!&?^]+`},
	{Name: "Punct", Pattern: `[(){}]`},
})

// sExprNode is the grammar production for a `(...)` form.
type sExprNode struct {
	Items []*exprNode `"(" @@* ")"`
}

// qExprNode is the grammar production for a `{...}` form.
type qExprNode struct {
	Items []*exprNode `"{" @@* "}"`
}

// exprNode is a single form: exactly one alternative is ever populated.
type exprNode struct {
	SExpr  *sExprNode `(  @@`
	QExpr  *qExprNode `|  @@`
	Bool   *string    `| @("#t" | "#f")`
	Number *string    `| @(Float | Int)`
	Str    *string    `| @String`
	Symbol *string    `| @Symbol )`
}

// Tag implements reader.ParseNode.
func (n *exprNode) Tag() string {
	switch {
	case n.SExpr != nil:
		return "sexpr"
	case n.QExpr != nil:
		return "qexpr"
	case n.Bool != nil:
		return "boolean"
	case n.Number != nil:
		return "number"
	case n.Str != nil:
		return "string"
	default:
		return "symbol"
	}
}

// Contents implements reader.ParseNode.
func (n *exprNode) Contents() string {
	switch {
	case n.Bool != nil:
		return *n.Bool
	case n.Number != nil:
		return *n.Number
	case n.Str != nil:
		return *n.Str
	case n.Symbol != nil:
		return *n.Symbol
	default:
		return ""
	}
}

// Children implements reader.ParseNode.
func (n *exprNode) Children() []reader.ParseNode {
	var items []*exprNode
	switch {
	case n.SExpr != nil:
		items = n.SExpr.Items
	case n.QExpr != nil:
		items = n.QExpr.Items
	default:
		return nil
	}
	out := make([]reader.ParseNode, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// program is the grammar's top-level production: a sequence of forms.
type program struct {
	Forms []*exprNode `@@*`
}

// Tag implements reader.ParseNode, mirroring the root tag (">") of the
// original mpc-based grammar.
func (p *program) Tag() string      { return ">" }
func (p *program) Contents() string { return "" }

func (p *program) Children() []reader.ParseNode {
	out := make([]reader.ParseNode, len(p.Forms))
	for i, f := range p.Forms {
		out[i] = f
	}
	return out
}

// Parser parses lumen source text into a reader.ParseNode tree.
type Parser struct {
	inner *participle.Parser[program]
}

// New builds a Parser, per spec.md §6's token grammar.
func New() (*Parser, error) {
	p, err := participle.Build[program](
		participle.Lexer(lumenLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("building lumen parser: %w", err)
	}
	return &Parser{inner: p}, nil
}

// ParseString parses a complete chunk of source text (a file, or one
// REPL line) into a reader.ParseNode tree rooted at the ">" tag.
func (p *Parser) ParseString(name, src string) (reader.ParseNode, error) {
	prog, err := p.inner.ParseString(name, src)
	if err != nil {
		return nil, err
	}
	return prog, nil
}
