package builtins

import (
	"suse.dev/lumen"
	"suse.dev/lumen/eval"
)

// registerLogic binds `and`, `or` and `not`, per spec.md §4.6.
//
// spec.md §8 requires and/or to genuinely short-circuit ("and false
// <never-evaluated> never evaluates its second operand"), which the
// generic eager-argument-evaluation convention of §4.6/§4.7 cannot give a
// plain built-in on its own. Since the language has no macros and no
// evaluator-level special forms beyond the Q-expression-as-inert-data
// trick spec.md §9 already uses for `if`/`cond` branches, and/or extend
// that same trick to their own operands: each operand is written as a
// QExpr thunk and the builtin evaluates operands itself, one at a time,
// stopping as soon as the result is decided.
func registerLogic(root *lumen.Environment) {
	bind(root, "and", builtinAnd)
	bind(root, "or", builtinOr)
	bind(root, "not", builtinNot)
}

// builtinAnd implements `and {op1} {op2} ...`: evaluates operands in
// order, stopping and returning the first falsy result; returns the last
// value examined, or Bool(true) on zero operands.
func builtinAnd(env *lumen.Environment, args []lumen.Value) lumen.Value {
	var last lumen.Value = lumen.MakeBool(true)
	for i := range args {
		q, err := GetQExpr("and", args, i)
		if err != nil {
			return err
		}
		last = eval.EvalBody(env, q.Items())
		if lumen.IsErr(last) || !lumen.Truthy(last) {
			return last
		}
	}
	return last
}

// builtinOr implements `or {op1} {op2} ...`: evaluates operands in order,
// stopping and returning the first truthy result; returns the last value
// examined, or Bool(false) on zero operands.
func builtinOr(env *lumen.Environment, args []lumen.Value) lumen.Value {
	var last lumen.Value = lumen.MakeBool(false)
	for i := range args {
		q, err := GetQExpr("or", args, i)
		if err != nil {
			return err
		}
		last = eval.EvalBody(env, q.Items())
		if lumen.IsErr(last) || lumen.Truthy(last) {
			return last
		}
	}
	return last
}

// builtinNot implements `not v`: Bool(true) iff v is falsy.
func builtinNot(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("not", args, 1, 1); err != nil {
		return err
	}
	return lumen.MakeBool(!lumen.Truthy(args[0]))
}
