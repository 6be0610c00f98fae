package builtins

import "suse.dev/lumen"

// registerArith binds the arithmetic and numeric-comparison built-ins of
// spec.md §4.5/§4.6, plus `min`/`max` (supplemental — see SPEC_FULL.md).
func registerArith(root *lumen.Environment) {
	bind(root, "+", arithFn("+", lumen.OpAdd))
	bind(root, "-", arithFn("-", lumen.OpSub))
	bind(root, "*", arithFn("*", lumen.OpMul))
	bind(root, "/", arithFn("/", lumen.OpDiv))
	bind(root, "%", modFn)
	bind(root, "^", arithFn("^", lumen.OpPow))
	bind(root, "min", reduceFn("min", lumen.OpMin))
	bind(root, "max", reduceFn("max", lumen.OpMax))
	bind(root, "<", cmpFn("<", lumen.NumLess))
	bind(root, "=", cmpFn("=", lumen.NumEqual))
}

func checkAllNumbers(name string, args []lumen.Value) *lumen.Err {
	for i, a := range args {
		if !lumen.IsNumber(a) {
			return lumen.NewClassErrf(lumen.ErrType,
				"Procedure '%s' expected argument %d to be a number, got '%s'.", name, i, lumen.KindName(a))
		}
	}
	return nil
}

// arithFn builds the builtin for a variadic operator (`+ - * / ^`), per
// spec.md §4.5's identity/unary conventions.
func arithFn(name string, op lumen.ArithOp) lumen.BuiltinFn {
	return func(_ *lumen.Environment, args []lumen.Value) lumen.Value {
		if err := checkAllNumbers(name, args); err != nil {
			return err
		}
		return lumen.VariadicArith(op, args)
	}
}

// modFn implements `%`: Int-only, at least one argument, left-reduced.
func modFn(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("%", args, 1, -1); err != nil {
		return err
	}
	if err := checkAllNumbers("%", args); err != nil {
		return err
	}
	for _, a := range args {
		if _, ok := a.(lumen.Float); ok {
			return lumen.NewErr("Modulo not defined on float.")
		}
	}
	acc := args[0]
	for _, next := range args[1:] {
		acc = lumen.BinaryArith(lumen.OpMod, acc, next)
		if lumen.IsErr(acc) {
			return acc
		}
	}
	return acc
}

// reduceFn builds a strictly-binary-reduced arithmetic builtin (`min`,
// `max`), requiring at least one argument.
func reduceFn(name string, op lumen.ArithOp) lumen.BuiltinFn {
	return func(_ *lumen.Environment, args []lumen.Value) lumen.Value {
		if err := CheckArgs(name, args, 1, -1); err != nil {
			return err
		}
		if err := checkAllNumbers(name, args); err != nil {
			return err
		}
		acc := args[0]
		for _, next := range args[1:] {
			acc = lumen.BinaryArith(op, acc, next)
			if lumen.IsErr(acc) {
				return acc
			}
		}
		return acc
	}
}

// cmpFn builds a binary numeric-comparison builtin (`<`, `=`).
func cmpFn(name string, fn func(a, b lumen.Value) lumen.Value) lumen.BuiltinFn {
	return func(_ *lumen.Environment, args []lumen.Value) lumen.Value {
		if err := CheckArgs(name, args, 2, 2); err != nil {
			return err
		}
		if err := checkAllNumbers(name, args); err != nil {
			return err
		}
		return fn(args[0], args[1])
	}
}
