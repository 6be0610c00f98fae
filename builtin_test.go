package lumen

import "testing"

func TestBuiltinCallAndString(t *testing.T) {
	b := NewBuiltin("inc", func(_ *Environment, args []Value) Value {
		return BinaryArith(OpAdd, args[0], MakeInt(1))
	})
	if b.String() != "#<builtin:inc>" {
		t.Errorf("String() = %q", b.String())
	}
	got := b.Call(nil, []Value{MakeInt(1)})
	if !Equal(got, MakeInt(2)) {
		t.Errorf("Call() = %v, want 2", got)
	}
}
