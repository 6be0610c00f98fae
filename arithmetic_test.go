package lumen

import "testing"

func TestVariadicArithIdentities(t *testing.T) {
	if got := VariadicArith(OpAdd, nil); !Equal(got, MakeInt(0)) {
		t.Errorf("+ with no args = %v, want 0", got)
	}
	if got := VariadicArith(OpMul, nil); !Equal(got, MakeInt(1)) {
		t.Errorf("* with no args = %v, want 1", got)
	}
}

func TestVariadicArithUnary(t *testing.T) {
	got := VariadicArith(OpSub, []Value{MakeInt(5)})
	if !Equal(got, MakeInt(-5)) {
		t.Errorf("unary - 5 = %v, want -5", got)
	}
	got = VariadicArith(OpDiv, []Value{MakeFloat(4)})
	if !Equal(got, MakeFloat(0.25)) {
		t.Errorf("unary / 4.0 = %v, want 0.25", got)
	}
}

func TestBinaryArithPromotesToFloat(t *testing.T) {
	got := BinaryArith(OpAdd, MakeInt(1), MakeFloat(2.5))
	f, ok := got.(Float)
	if !ok || float64(f) != 3.5 {
		t.Errorf("1 + 2.5 = %v, want Float(3.5)", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	got := BinaryArith(OpDiv, MakeInt(1), MakeInt(0))
	if !IsErr(got) {
		t.Errorf("1 / 0 = %v, want an Err", got)
	}
}

func TestModuloUndefinedOnFloat(t *testing.T) {
	got := BinaryArith(OpMod, MakeFloat(1), MakeFloat(2))
	if !IsErr(got) {
		t.Errorf("1.0 %% 2.0 = %v, want an Err", got)
	}
}

func TestNumLessAndEqual(t *testing.T) {
	if got := NumLess(MakeInt(1), MakeInt(2)); !Equal(got, MakeBool(true)) {
		t.Errorf("1 < 2 = %v, want #t", got)
	}
	if got := NumEqual(MakeInt(2), MakeFloat(2)); !Equal(got, MakeBool(true)) {
		t.Errorf("2 = 2.0 = %v, want #t", got)
	}
}
