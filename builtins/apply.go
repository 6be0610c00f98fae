package builtins

import (
	"suse.dev/lumen"
	"suse.dev/lumen/eval"
)

// registerApply binds `apply` and `eval`, per spec.md §4.6/§4.7.
func registerApply(root *lumen.Environment) {
	bind(root, "apply", builtinApply)
	bind(root, "eval", builtinEval)
}

// builtinApply implements `apply proc args`, equivalent to evaluating
// `(proc . args)` with args spliced positionally.
func builtinApply(env *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("apply", args, 2, 2); err != nil {
		return err
	}
	spliced, err := GetQExpr("apply", args, 1)
	if err != nil {
		return err
	}
	return eval.Apply(env, args[0], spliced.Items())
}

// builtinEval implements `eval xs`: converts a QExpr to an SExpr and
// evaluates it, the one sanctioned crossing point between quoted data and
// applicative form, per spec.md §4.6/§9.
func builtinEval(env *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("eval", args, 1, 1); err != nil {
		return err
	}
	q, err := GetQExpr("eval", args, 0)
	if err != nil {
		return err
	}
	return eval.Eval(env, q.ToSExpr())
}
