package lumen

import "testing"

func TestSExprString(t *testing.T) {
	s := NewSExpr(Intern("+"), MakeInt(1), MakeInt(2))
	if got, want := s.String(), "(+ 1 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestQExprString(t *testing.T) {
	q := NewQExpr(Intern("a"), Intern("b"))
	if got, want := q.String(), "{a b}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSExprToQExprSharesElements(t *testing.T) {
	s := NewSExpr(MakeInt(1))
	q := s.ToQExpr()
	if len(q.Items()) != 1 || !Equal(q.Items()[0], MakeInt(1)) {
		t.Errorf("ToQExpr did not preserve elements")
	}
}

func TestSExprDeepCopyIsFreshSlice(t *testing.T) {
	s := NewSExpr(MakeStr("x"))
	cp := s.deepCopy()
	if Is(cp.Items()[0], s.Items()[0]) {
		t.Errorf("deepCopy shares element identity with original")
	}
	if !Equal(cp, s) {
		t.Errorf("deepCopy not equal to original")
	}
}
