package builtins

import (
	"suse.dev/lumen"
	"suse.dev/lumen/eval"
)

// registerControl binds `if` and `cond`, per spec.md §4.6/§9. Both require
// their branch bodies to arrive as Q-expressions: the evaluator returns a
// quoted form unevaluated, so only the chosen branch is ever evaluated.
func registerControl(root *lumen.Environment) {
	bind(root, "if", builtinIf)
	bind(root, "cond", builtinCond)
}

// builtinIf implements `if pred {then...} {else...}`.
func builtinIf(env *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("if", args, 3, 3); err != nil {
		return err
	}
	if lumen.IsErr(args[0]) {
		return args[0]
	}
	thenBranch, err := GetQExpr("if", args, 1)
	if err != nil {
		return err
	}
	elseBranch, err := GetQExpr("if", args, 2)
	if err != nil {
		return err
	}
	if lumen.Truthy(args[0]) {
		return eval.EvalBody(env, thenBranch.Items())
	}
	return eval.EvalBody(env, elseBranch.Items())
}

// builtinCond implements `cond {p1 {body1}} {p2 {body2}} ...`: each clause is
// a 2-element Q-expression of a predicate form and a Q-expression body. Clauses are
// tried in order; predicates are evaluated eagerly, bodies only for the
// first clause whose predicate is truthy. A bare `else` predicate symbol
// is recognized as always-true, per the usual Lisp convention.
func builtinCond(env *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("cond", args, 1, -1); err != nil {
		return err
	}
	for i := range args {
		clause, err := GetQExpr("cond", args, i)
		if err != nil {
			return err
		}
		items := clause.Items()
		if len(items) != 2 {
			return lumen.NewClassErrf(lumen.ErrArity,
				"Procedure 'cond' expected each clause to have 2 elements, got %d.", len(items))
		}
		pred := items[0]
		matched := false
		if sym, ok := pred.(*lumen.Sym); ok && sym.Name() == "else" {
			matched = true
		} else {
			result := eval.Eval(env, pred)
			if lumen.IsErr(result) {
				return result
			}
			matched = lumen.Truthy(result)
		}
		if !matched {
			continue
		}
		bodyQ, ok := items[1].(*lumen.QExpr)
		if !ok {
			return lumen.NewClassErrf(lumen.ErrType,
				"Procedure 'cond' expected a Q-expression body, got '%s'.", lumen.KindName(items[1]))
		}
		return eval.EvalBody(env, bodyQ.Items())
	}
	return lumen.NewSExpr()
}
