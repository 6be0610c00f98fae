// Package eval implements the evaluator (spec.md §4.7): symbol lookup,
// S-expression application and lambda-call parameter binding.
package eval

import "suse.dev/lumen"

// Eval reduces v in env, per spec.md §4.7:
//   - Sym -> Environment.Get.
//   - QExpr -> returned unchanged (inert data).
//   - SExpr -> evaluated as an application.
//   - any other kind -> returned unchanged.
func Eval(env *lumen.Environment, v lumen.Value) lumen.Value {
	switch x := v.(type) {
	case *lumen.Sym:
		return env.Get(x)
	case *lumen.QExpr:
		return x
	case *lumen.SExpr:
		return evalSExpr(env, x)
	default:
		return v
	}
}

// EvalBody evaluates a sequence of forms in env, in source order,
// returning the last result; an Err in any form short-circuits the
// sequence and is returned immediately. Used for lambda bodies, `if`
// branches, `cond` clause bodies and `and`/`or` operands, per spec.md §4.7/§5/§7.
func EvalBody(env *lumen.Environment, body []lumen.Value) lumen.Value {
	var result lumen.Value = lumen.NewSExpr()
	for _, form := range body {
		result = Eval(env, form)
		if lumen.IsErr(result) {
			return result
		}
	}
	return result
}

// evalSExpr implements S-expression application, per spec.md §4.7:
//  1. empty -> empty SExpr.
//  2. evaluate the head to obtain proc; an Err there propagates.
//  3. evaluate remaining children left to right; an Err in any of them
//     discards the partial argument list and propagates.
//  4. dispatch proc: Builtin is invoked, Proc performs a lambda call,
//     anything else is an application error.
func evalSExpr(env *lumen.Environment, s *lumen.SExpr) lumen.Value {
	items := s.Items()
	if len(items) == 0 {
		return lumen.NewSExpr()
	}

	proc := Eval(env, items[0])
	if lumen.IsErr(proc) {
		return proc
	}

	args := make([]lumen.Value, 0, len(items)-1)
	for _, child := range items[1:] {
		v := Eval(env, child)
		if lumen.IsErr(v) {
			return v
		}
		args = append(args, v)
	}

	return Apply(env, proc, args)
}

// Apply dispatches proc over args, implementing spec.md §4.7 step 4 and
// the `apply` built-in's splice semantics.
func Apply(env *lumen.Environment, proc lumen.Value, args []lumen.Value) lumen.Value {
	switch p := proc.(type) {
	case *lumen.Builtin:
		return p.Call(env, args)
	case *lumen.Proc:
		return callProc(p, args)
	default:
		return lumen.NewClassErrf(lumen.ErrApplication, "Object '%s' is not applicable.", lumen.KindName(proc))
	}
}

// callProc performs a lambda call, per spec.md §4.7:
//  1. a fresh local frame F is created whose parent is the closure's
//     captured environment C — never the captured environment itself,
//     per the REDESIGN FLAG in spec.md §9 ("mutating the captured
//     environment is a bug that leaks bindings across calls").
//  2. formals are bound positionally.
//  3. if the closure has a variadic tail, it binds the remaining
//     arguments as a QExpr.
//  4. a leftover formal or argument is an arity error.
//  5. the body is evaluated sequentially in F.
func callProc(p *lumen.Proc, args []lumen.Value) lumen.Value {
	frame := lumen.NewEnvironment(p.Env)

	bound := 0
	for _, sym := range p.Params {
		if bound >= len(args) {
			return lumen.NewClassErr(lumen.ErrArity, "Wrong number of arguments to lambda.")
		}
		frame.Put(sym, args[bound])
		bound++
	}

	if p.Rest != nil {
		rest := append([]lumen.Value(nil), args[bound:]...)
		frame.Put(p.Rest, lumen.NewQExpr(rest...))
		bound = len(args)
	}

	if bound != len(args) {
		return lumen.NewClassErr(lumen.ErrArity, "Wrong number of arguments to lambda.")
	}

	return EvalBody(frame, p.Body)
}
