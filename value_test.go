package lumen

import "testing"

func TestDeepCopyStrIsFreshIdentity(t *testing.T) {
	s := MakeStr("hi")
	cp := DeepCopy(s)
	if !Equal(s, cp) {
		t.Fatalf("copy not equal to original")
	}
	if Is(s, cp) {
		t.Fatalf("copy shares identity with original")
	}
}

func TestDeepCopySymIsSameIdentity(t *testing.T) {
	sym := Intern("x")
	cp := DeepCopy(sym)
	if !Is(sym, cp) {
		t.Fatalf("interned symbol copy should share identity")
	}
}

func TestDeepCopyErrIsSameIdentity(t *testing.T) {
	e := NewErr("boom")
	cp := DeepCopy(e)
	if !Is(e, cp) {
		t.Fatalf("error copy should share identity")
	}
}

func TestEqualSExprPointwise(t *testing.T) {
	a := NewSExpr(MakeInt(1), MakeInt(2))
	b := NewSExpr(MakeInt(1), MakeInt(2))
	c := NewSExpr(MakeInt(1), MakeInt(3))
	if !Equal(a, b) {
		t.Fatalf("expected equal SExprs")
	}
	if Equal(a, c) {
		t.Fatalf("expected unequal SExprs")
	}
}

func TestErrNeverEqual(t *testing.T) {
	a := NewErr("boom")
	b := NewErr("boom")
	if Equal(a, b) {
		t.Fatalf("two distinct Err values must never be Equal")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{MakeBool(false), false},
		{MakeBool(true), true},
		{MakeInt(0), true},
		{MakeStr(""), true},
		{NewQExpr(), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
