package lumen

import "testing"

func TestErrStringVsHuman(t *testing.T) {
	e := NewErr("bad thing")
	if e.String() != "<error: bad thing>" {
		t.Errorf("String() = %q", e.String())
	}
	if e.Human() != "Error: bad thing" {
		t.Errorf("Human() = %q", e.Human())
	}
}

func TestNewClassErrfClass(t *testing.T) {
	e := NewClassErrf(ErrArity, "expected %d, got %d", 2, 1)
	if e.Class != ErrArity {
		t.Errorf("Class = %v, want ErrArity", e.Class)
	}
	if e.Msg != "expected 2, got 1" {
		t.Errorf("Msg = %q", e.Msg)
	}
}
