package builtins

import "suse.dev/lumen"

// registerDefine binds `def`, `def*`, `\` and `fun`, per spec.md §4.6.
func registerDefine(root *lumen.Environment) {
	bind(root, "def", builtinDef)
	bind(root, "def*", builtinDefStar)
	bind(root, "\\", builtinLambda)
	bind(root, "fun", builtinFun)
}

// builtinDef implements `def {syms...} v1 ... vn`: binds each sym to the
// corresponding value in the current frame and returns the bound values as
// an SExpr. The arity of the symbol list must equal the number of values.
func builtinDef(env *lumen.Environment, args []lumen.Value) lumen.Value {
	return def(env, args, "def")
}

// builtinDefStar implements the `def*` variant, which walks to the global
// frame and binds there instead of the current frame.
func builtinDefStar(env *lumen.Environment, args []lumen.Value) lumen.Value {
	return def(env.Global(), args, "def*")
}

func def(target *lumen.Environment, args []lumen.Value, name string) lumen.Value {
	if err := CheckArgs(name, args, 1, -1); err != nil {
		return err
	}
	syms, err := GetSymbols(name, args, 0)
	if err != nil {
		return err
	}
	vals := args[1:]
	if len(syms) != len(vals) {
		return lumen.NewClassErrf(lumen.ErrArity,
			"Procedure '%s': wrong number of symbols, got %d symbol(s) for %d value(s).", name, len(syms), len(vals))
	}
	for i, sym := range syms {
		target.Put(sym, vals[i])
	}
	return lumen.NewSExpr(append([]lumen.Value(nil), vals...)...)
}

// builtinLambda implements `\ {params} {body}`, building a Proc that
// captures env as its closure, per spec.md §4.6/§9. The `&`-tail
// convention is validated here, at construction time: the symbol `&` may
// appear at most once, must be followed by exactly one more symbol, and
// nothing may follow that symbol.
func builtinLambda(env *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("\\", args, 2, 2); err != nil {
		return err
	}
	rawParams, err := GetSymbols("\\", args, 0)
	if err != nil {
		return err
	}
	body, berr := GetQExpr("\\", args, 1)
	if berr != nil {
		return berr
	}
	params, rest, aerr := splitVariadicTail(rawParams)
	if aerr != nil {
		return aerr
	}
	return lumen.NewProc(params, rest, append([]lumen.Value(nil), body.Items()...), env)
}

// splitVariadicTail separates an ordinary parameter list from an optional
// `&`-tail symbol, per spec.md §9's scan-over-the-parameter-list strategy.
func splitVariadicTail(raw []*lumen.Sym) (params []*lumen.Sym, rest *lumen.Sym, err *lumen.Err) {
	for i, sym := range raw {
		if sym != lumen.AmpersandSym {
			continue
		}
		if i+1 >= len(raw) {
			return nil, nil, lumen.NewClassErr(lumen.ErrArity, "Missing symbol after '&' in parameter list.")
		}
		if i+2 != len(raw) {
			return nil, nil, lumen.NewClassErr(lumen.ErrArity, "Only one symbol allowed after '&' in parameter list.")
		}
		return append([]*lumen.Sym(nil), raw[:i]...), raw[i+1], nil
	}
	return raw, nil, nil
}

// builtinFun implements `fun {name p1 ... pn} {body}`, syntactic sugar for
// `def {name} (\ {p1 ... pn} {body})`.
func builtinFun(env *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("fun", args, 2, 2); err != nil {
		return err
	}
	header, err := GetQExpr("fun", args, 0)
	if err != nil {
		return err
	}
	body, berr := GetQExpr("fun", args, 1)
	if berr != nil {
		return berr
	}
	items := header.Items()
	if len(items) == 0 {
		return lumen.NewClassErr(lumen.ErrArity, "Procedure 'fun' expected a name followed by parameters.")
	}
	name, ok := items[0].(*lumen.Sym)
	if !ok {
		return lumen.NewClassErrf(lumen.ErrType, "Procedure 'fun' expected a symbol name, got '%s'.", lumen.KindName(items[0]))
	}
	rawParams := make([]*lumen.Sym, 0, len(items)-1)
	for _, v := range items[1:] {
		sym, ok := v.(*lumen.Sym)
		if !ok {
			return lumen.NewClassErrf(lumen.ErrType, "Procedure 'fun' expected symbol parameters, got '%s'.", lumen.KindName(v))
		}
		rawParams = append(rawParams, sym)
	}
	params, rest, aerr := splitVariadicTail(rawParams)
	if aerr != nil {
		return aerr
	}
	proc := lumen.NewProc(params, rest, append([]lumen.Value(nil), body.Items()...), env)
	proc.Name = name.Name()
	env.Put(name, proc)
	return proc
}
