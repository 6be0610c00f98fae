package builtins

import "suse.dev/lumen"

// registerErrors binds `error` and `assert`, per spec.md §4.6/§7.
func registerErrors(root *lumen.Environment) {
	bind(root, "error", builtinError)
	bind(root, "assert", builtinAssert)
}

// builtinError implements `error msg`: raises a user-level error carrying
// the given string as its message.
func builtinError(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("error", args, 1, 1); err != nil {
		return err
	}
	if err := CheckType("error", args, 0, lumen.KindStr); err != nil {
		return err
	}
	return lumen.NewClassErr(lumen.ErrUser, args[0].(*lumen.Str).Text())
}

// builtinAssert implements `assert pred msg`: returns an assertion-class
// error "Assertion error: msg" when pred is falsy, otherwise returns pred.
func builtinAssert(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("assert", args, 2, 2); err != nil {
		return err
	}
	if lumen.IsErr(args[0]) {
		return args[0]
	}
	if err := CheckType("assert", args, 1, lumen.KindStr); err != nil {
		return err
	}
	if !lumen.Truthy(args[0]) {
		return lumen.NewClassErrf(lumen.ErrAssertion, "Assertion error: %s", args[1].(*lumen.Str).Text())
	}
	return args[0]
}
