package builtins

import "suse.dev/lumen"

// registerPredicates binds the type-test and equality built-ins of
// spec.md §4.6.
func registerPredicates(root *lumen.Environment) {
	bind(root, "integer?", kindPred("integer?", lumen.KindInt))
	bind(root, "float?", kindPred("float?", lumen.KindFloat))
	bind(root, "boolean?", kindPred("boolean?", lumen.KindBool))
	bind(root, "string?", kindPred("string?", lumen.KindStr))
	bind(root, "list?", kindPred("list?", lumen.KindSExpr))
	bind(root, "quoted-list?", kindPred("quoted-list?", lumen.KindQExpr))
	bind(root, "error?", kindPred("error?", lumen.KindErr))
	bind(root, "procedure?", kindPred("procedure?", lumen.KindProc))
	bind(root, "builtin?", kindPred("builtin?", lumen.KindBuiltin))
	bind(root, "equal?", builtinEqualP)
	bind(root, "is?", builtinIsP)
}

func kindPred(name string, k lumen.Kind) lumen.BuiltinFn {
	return func(_ *lumen.Environment, args []lumen.Value) lumen.Value {
		if err := CheckArgs(name, args, 1, 1); err != nil {
			return err
		}
		return lumen.MakeBool(args[0].Kind() == k)
	}
}

// builtinEqualP implements `equal? a b`: structural/semantic equality.
func builtinEqualP(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("equal?", args, 2, 2); err != nil {
		return err
	}
	return lumen.MakeBool(lumen.Equal(args[0], args[1]))
}

// builtinIsP implements `is? a b`: identity comparison.
func builtinIsP(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("is?", args, 2, 2); err != nil {
		return err
	}
	return lumen.MakeBool(lumen.Is(args[0], args[1]))
}
