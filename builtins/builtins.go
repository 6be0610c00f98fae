// Package builtins provides the named procedures of spec.md §4.6, plus the
// uniform argument-validation helpers they share, grounded on sxpf's
// sxbuiltins.CheckArgs/GetSymbol/GetString/GetNumber family.
package builtins

import (
	"suse.dev/lumen"
)

// CheckArgs validates the argument count against [minArgs, maxArgs].
// A negative maxArgs means "no upper bound". On failure it returns an Err
// value naming the procedure and the precise expected/actual counts, per
// spec.md §4.6's "arity check with precise count".
func CheckArgs(name string, args []lumen.Value, minArgs, maxArgs int) *lumen.Err {
	n := len(args)
	switch {
	case maxArgs < 0:
		if n < minArgs {
			return lumen.NewClassErrf(lumen.ErrArity,
				"Procedure '%s' expected at least %d argument(s), got %d.", name, minArgs, n)
		}
	case minArgs == maxArgs:
		if n != minArgs {
			return lumen.NewClassErrf(lumen.ErrArity,
				"Procedure '%s' expected %d argument(s), got %d.", name, minArgs, n)
		}
	default:
		if n < minArgs || n > maxArgs {
			return lumen.NewClassErrf(lumen.ErrArity,
				"Procedure '%s' expected between %d and %d argument(s), got %d.", name, minArgs, maxArgs, n)
		}
	}
	return nil
}

// CheckType validates that args[pos] has the expected kind, naming the
// offending index and expected/actual type, per spec.md §4.6.
func CheckType(name string, args []lumen.Value, pos int, kind lumen.Kind) *lumen.Err {
	if args[pos].Kind() != kind {
		return lumen.NewClassErrf(lumen.ErrType,
			"Procedure '%s' expected argument %d of type '%s', got '%s'.",
			name, pos, kind, lumen.KindName(args[pos]))
	}
	return nil
}

// GetQExpr returns args[pos] as a *QExpr, or a type Err naming name/pos.
func GetQExpr(name string, args []lumen.Value, pos int) (*lumen.QExpr, *lumen.Err) {
	if err := CheckType(name, args, pos, lumen.KindQExpr); err != nil {
		return nil, err
	}
	return args[pos].(*lumen.QExpr), nil
}

// GetSymbols returns the elements of args[pos] (a *QExpr) as a symbol
// slice, or a type Err if the QExpr contains a non-symbol.
func GetSymbols(name string, args []lumen.Value, pos int) ([]*lumen.Sym, *lumen.Err) {
	q, err := GetQExpr(name, args, pos)
	if err != nil {
		return nil, err
	}
	syms := make([]*lumen.Sym, len(q.Items()))
	for i, v := range q.Items() {
		sym, ok := v.(*lumen.Sym)
		if !ok {
			return nil, lumen.NewClassErrf(lumen.ErrType,
				"Procedure '%s' expected a symbol list, item %d is '%s'.", name, i, lumen.KindName(v))
		}
		syms[i] = sym
	}
	return syms, nil
}

// Register binds every built-in of spec.md §4.6 into root.
func Register(root *lumen.Environment) {
	registerDefine(root)
	registerApply(root)
	registerList(root)
	registerLogic(root)
	registerArith(root)
	registerPredicates(root)
	registerControl(root)
	registerStrings(root)
	registerErrors(root)
	registerLoad(root)
}

func bind(root *lumen.Environment, name string, fn lumen.BuiltinFn) {
	root.Put(lumen.Intern(name), lumen.NewBuiltin(name, fn))
}
