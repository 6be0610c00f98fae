package lumen

import "math"

// ArithOp names a binary arithmetic or comparison operator, per spec.md §4.5.
type ArithOp string

const (
	OpAdd ArithOp = "+"
	OpSub ArithOp = "-"
	OpMul ArithOp = "*"
	OpDiv ArithOp = "/"
	OpMod ArithOp = "%"
	OpPow ArithOp = "^"
	OpMin ArithOp = "min"
	OpMax ArithOp = "max"
)

// asFloat64 extracts the numeric payload of v, promoted to float64.
func asFloat64(v Value) float64 {
	switch x := v.(type) {
	case Int:
		return float64(x)
	case Float:
		return float64(x)
	default:
		panic("lumen: asFloat64: not a number")
	}
}

// Promote2 applies spec.md §4.5's promotion rule: if either operand is
// Float, the other is coerced to Float.
func Promote2(a, b Value) (Value, Value, bool) {
	ai, aIsInt := a.(Int)
	bi, bIsInt := b.(Int)
	if aIsInt && bIsInt {
		return ai, bi, false
	}
	af, aIsFloat := a.(Float)
	bf, bIsFloat := b.(Float)
	if !((aIsInt || aIsFloat) && (bIsInt || bIsFloat)) {
		return nil, nil, false
	}
	if aIsInt {
		af = Float(ai)
	}
	if bIsInt {
		bf = Float(bi)
	}
	return af, bf, true
}

// BinaryArith applies op to two already-type-checked numeric values,
// returning an Err value (never a Go error) on a domain violation such as
// division by zero or modulo on a float.
func BinaryArith(op ArithOp, a, b Value) Value {
	x, y, isFloat := Promote2(a, b)
	if x == nil {
		return NewErrf("Arithmetic op '%s': expected numbers, got %s and %s.", op, KindName(a), KindName(b))
	}
	if isFloat {
		return binaryArithFloat(op, float64(x.(Float)), float64(y.(Float)))
	}
	return binaryArithInt(op, int64(x.(Int)), int64(y.(Int)))
}

func binaryArithInt(op ArithOp, a, b int64) Value {
	switch op {
	case OpAdd:
		return Int(a + b)
	case OpSub:
		return Int(a - b)
	case OpMul:
		return Int(a * b)
	case OpDiv:
		if b == 0 {
			return NewErr("Division by zero.")
		}
		return Int(a / b)
	case OpMod:
		if b == 0 {
			return NewErr("Division by zero.")
		}
		return Int(a % b)
	case OpPow:
		return Int(intPow(a, b))
	case OpMin:
		if a < b {
			return Int(a)
		}
		return Int(b)
	case OpMax:
		if a > b {
			return Int(a)
		}
		return Int(b)
	default:
		return NewErrf("Unknown arithmetic op '%s'.", op)
	}
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

func binaryArithFloat(op ArithOp, a, b float64) Value {
	switch op {
	case OpAdd:
		return Float(a + b)
	case OpSub:
		return Float(a - b)
	case OpMul:
		return Float(a * b)
	case OpDiv:
		if b == 0 {
			return NewErr("Division by zero.")
		}
		return Float(a / b)
	case OpMod:
		return NewErr("Modulo not defined on float.")
	case OpPow:
		return Float(math.Pow(a, b))
	case OpMin:
		return Float(math.Min(a, b))
	case OpMax:
		return Float(math.Max(a, b))
	default:
		return NewErrf("Unknown arithmetic op '%s'.", op)
	}
}

// VariadicArith implements spec.md §4.5's variadic forms: `+`/`*` on zero
// args yield the identity (0, 1); `-`/`/` on one arg behave as unary
// negate/reciprocal, using Int zero/one as the left operand, promoted if
// the single argument is a Float.
func VariadicArith(op ArithOp, args []Value) Value {
	switch op {
	case OpAdd:
		if len(args) == 0 {
			return Int(0)
		}
	case OpMul:
		if len(args) == 0 {
			return Int(1)
		}
	case OpSub:
		if len(args) == 1 {
			return BinaryArith(OpSub, identityFor(args[0], 0), args[0])
		}
	case OpDiv:
		if len(args) == 1 {
			return BinaryArith(OpDiv, identityFor(args[0], 1), args[0])
		}
	}
	if len(args) == 0 {
		return NewErrf("Builtin op '%s' takes at least 1 argument.", op)
	}
	acc := args[0]
	for _, next := range args[1:] {
		acc = BinaryArith(op, acc, next)
		if IsErr(acc) {
			return acc
		}
	}
	return acc
}

// identityFor returns the Int identity n, promoted to Float if like is a
// Float, so unary -/÷ promote consistently with the rest of §4.5.
func identityFor(like Value, n int64) Value {
	if _, ok := like.(Float); ok {
		return Float(n)
	}
	return Int(n)
}

// NumLess implements `<`.
func NumLess(a, b Value) Value {
	x, y, isFloat := Promote2(a, b)
	if x == nil {
		return NewErrf("Comparison '<': expected numbers, got %s and %s.", KindName(a), KindName(b))
	}
	if isFloat {
		return MakeBool(float64(x.(Float)) < float64(y.(Float)))
	}
	return MakeBool(int64(x.(Int)) < int64(y.(Int)))
}

// NumEqual implements numeric `=`.
func NumEqual(a, b Value) Value {
	x, y, isFloat := Promote2(a, b)
	if x == nil {
		return NewErrf("Comparison '=': expected numbers, got %s and %s.", KindName(a), KindName(b))
	}
	if isFloat {
		return MakeBool(float64(x.(Float)) == float64(y.(Float)))
	}
	return MakeBool(int64(x.(Int)) == int64(y.(Int)))
}
