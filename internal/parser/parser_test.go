package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"suse.dev/lumen"
	"suse.dev/lumen/internal/parser"
	"suse.dev/lumen/reader"
)

func parse(t *testing.T, src string) lumen.Value {
	t.Helper()
	p, err := parser.New()
	require.NoError(t, err)
	tree, err := p.ParseString("<test>", src)
	require.NoError(t, err)
	rd := reader.New()
	return rd.Read(tree)
}

func TestParseSimpleSExpr(t *testing.T) {
	got := parse(t, "(+ 1 2)")
	want := lumen.NewSExpr(lumen.NewSExpr(lumen.Intern("+"), lumen.MakeInt(1), lumen.MakeInt(2)))
	require.True(t, lumen.Equal(got, want))
}

func TestParseQExprAndString(t *testing.T) {
	got := parse(t, `{a "hi\n"}`)
	want := lumen.NewSExpr(lumen.NewQExpr(lumen.Intern("a"), lumen.MakeStr("hi\n")))
	require.True(t, lumen.Equal(got, want))
}

func TestParseFloatAndBoolean(t *testing.T) {
	got := parse(t, "(list 1.5 #t #f)")
	want := lumen.NewSExpr(lumen.NewSExpr(
		lumen.Intern("list"), lumen.MakeFloat(1.5), lumen.MakeBool(true), lumen.MakeBool(false),
	))
	require.True(t, lumen.Equal(got, want))
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	got, ok := parse(t, "1 2 3").(*lumen.SExpr)
	require.True(t, ok)
	require.Equal(t, 3, got.Len())
}

func TestParseElidesComments(t *testing.T) {
	got := parse(t, "; a comment\n(+ 1 1) ; trailing\n")
	want := lumen.NewSExpr(lumen.NewSExpr(lumen.Intern("+"), lumen.MakeInt(1), lumen.MakeInt(1)))
	require.True(t, lumen.Equal(got, want))
}
