package lumen

import "testing"

func TestEnvironmentGetWalksParentChain(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)
	x := Intern("x")
	root.Put(x, MakeInt(42))

	got := child.Get(x)
	if !Equal(got, MakeInt(42)) {
		t.Errorf("Get(x) = %v, want 42", got)
	}
}

func TestEnvironmentPutNeverSearchesUpward(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)
	x := Intern("shadowed")
	root.Put(x, MakeInt(1))
	child.Put(x, MakeInt(2))

	if got := root.Get(x); !Equal(got, MakeInt(1)) {
		t.Errorf("root binding was overwritten: got %v", got)
	}
	if got := child.Get(x); !Equal(got, MakeInt(2)) {
		t.Errorf("child binding missing: got %v", got)
	}
}

func TestEnvironmentUnboundSymbol(t *testing.T) {
	env := NewEnvironment(nil)
	got := env.Get(Intern("nope"))
	e, ok := got.(*Err)
	if !ok || e.Class != ErrUnboundSymbol {
		t.Errorf("Get(nope) = %v, want an ErrUnboundSymbol", got)
	}
}

func TestEnvironmentGlobal(t *testing.T) {
	root := NewEnvironment(nil)
	mid := NewEnvironment(root)
	leaf := NewEnvironment(mid)
	if leaf.Global() != root {
		t.Errorf("Global() did not walk to the root frame")
	}
}

func TestEnvironmentPutStoresDeepCopy(t *testing.T) {
	env := NewEnvironment(nil)
	s := MakeStr("hi")
	sym := Intern("s")
	env.Put(sym, s)
	got := env.Get(sym)
	if Is(got, s) {
		t.Errorf("Get returned the same Str identity that was Put")
	}
	if !Equal(got, s) {
		t.Errorf("Get(s) = %v, want equal to original", got)
	}
}
