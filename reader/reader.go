// Package reader converts a parsed syntax tree into lumen Values. The
// concrete grammar and parser are out of scope for this package (spec.md
// §1/§4.3): reader only depends on the small ParseNode interface below,
// which is the shape the external parser's tree nodes must have.
package reader

import (
	"strconv"
	"strings"

	"suse.dev/lumen"
)

// ParseNode is a node of the parser's syntax tree: a tag, the node's raw
// textual contents, and its children in source order. This mirrors the
// `tag`/`contents`/`children` fields of mpc_ast_t in the original C
// implementation's jblisp.c (lval_read), generalized to an interface so
// this package has no compile-time dependency on any concrete parser.
type ParseNode interface {
	Tag() string
	Contents() string
	Children() []ParseNode
}

// Reader converts parsed syntax trees into lumen Values.
type Reader struct{}

// New creates a Reader. Symbols are interned through the process-wide
// table (lumen.Intern) so that identifiers read here share identity with
// symbols bound by built-ins and the evaluator.
func New() *Reader {
	return &Reader{}
}

// Read converts a single parser syntax-tree node into a Value, per
// spec.md §4.3.
func (r *Reader) Read(node ParseNode) lumen.Value {
	tag := node.Tag()
	switch {
	case strings.Contains(tag, "number"):
		return r.readNumber(node.Contents())
	case strings.Contains(tag, "symbol"):
		return lumen.Intern(node.Contents())
	case strings.Contains(tag, "string"):
		return r.readString(node.Contents())
	case strings.Contains(tag, "boolean"):
		return lumen.MakeBool(node.Contents() == "#t")
	case tag == ">" || strings.Contains(tag, "sexpr"):
		return r.readSeq(node, false)
	case strings.Contains(tag, "qexpr"):
		return r.readSeq(node, true)
	default:
		return lumen.NewClassErrf(lumen.ErrReader, "Parser error: '%s' is not a valid type tag.", tag)
	}
}

func (r *Reader) readNumber(text string) lumen.Value {
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lumen.NewClassErrf(lumen.ErrReader, "Invalid number (float): %s.", text)
		}
		return lumen.MakeFloat(f)
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lumen.NewClassErrf(lumen.ErrReader, "Invalid number (integer): %s.", text)
	}
	return lumen.MakeInt(i)
}

func (r *Reader) readString(text string) lumen.Value {
	body := text
	if len(body) >= 2 && body[0] == '"' && body[len(body)-1] == '"' {
		body = body[1 : len(body)-1]
	}
	unescaped, err := lumen.UnescapeStr(body)
	if err != nil {
		return lumen.NewClassErrf(lumen.ErrReader, "Invalid string literal: %s.", text)
	}
	return lumen.MakeStr(unescaped)
}

func (r *Reader) readSeq(node ParseNode, quoted bool) lumen.Value {
	var items []lumen.Value
	for _, child := range node.Children() {
		if isBracket(child) || isWhitespaceOrComment(child) {
			continue
		}
		v := r.Read(child)
		if err, ok := v.(*lumen.Err); ok {
			return err
		}
		items = append(items, v)
	}
	if quoted {
		return lumen.NewQExpr(items...)
	}
	return lumen.NewSExpr(items...)
}

func isBracket(n ParseNode) bool {
	switch n.Contents() {
	case "(", ")", "{", "}":
		return true
	default:
		return false
	}
}

func isWhitespaceOrComment(n ParseNode) bool {
	tag := n.Tag()
	return strings.Contains(tag, "regex") || strings.Contains(tag, "comment")
}
