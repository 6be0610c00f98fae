package builtins

import "suse.dev/lumen"

// registerList binds the Q-expression-as-data list operations of
// spec.md §4.6.
func registerList(root *lumen.Environment) {
	bind(root, "list", builtinList)
	bind(root, "head", builtinHead)
	bind(root, "tail", builtinTail)
	bind(root, "init", builtinInit)
	bind(root, "last", builtinLast)
	bind(root, "nth", builtinNth)
	bind(root, "cons", builtinCons)
	bind(root, "join", builtinJoin)
	bind(root, "len", builtinLen)
}

// builtinList implements `list v1 ... vn`: produces a QExpr from its args.
func builtinList(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	return lumen.NewQExpr(append([]lumen.Value(nil), args...)...)
}

func requireNonEmptyQExpr(name string, args []lumen.Value, pos int) (*lumen.QExpr, *lumen.Err) {
	q, err := GetQExpr(name, args, pos)
	if err != nil {
		return nil, err
	}
	if q.Len() == 0 {
		return nil, lumen.NewClassErrf(lumen.ErrDomain, "Procedure '%s' cannot operate on {}.", name)
	}
	return q, nil
}

// builtinHead implements `head xs`: returns the first element.
func builtinHead(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("head", args, 1, 1); err != nil {
		return err
	}
	q, err := requireNonEmptyQExpr("head", args, 0)
	if err != nil {
		return err
	}
	return q.Items()[0]
}

// builtinTail implements `tail xs`: returns all but the first element.
func builtinTail(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("tail", args, 1, 1); err != nil {
		return err
	}
	q, err := requireNonEmptyQExpr("tail", args, 0)
	if err != nil {
		return err
	}
	return lumen.NewQExpr(append([]lumen.Value(nil), q.Items()[1:]...)...)
}

// builtinInit implements `init xs`: returns all but the last element.
func builtinInit(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("init", args, 1, 1); err != nil {
		return err
	}
	q, err := requireNonEmptyQExpr("init", args, 0)
	if err != nil {
		return err
	}
	items := q.Items()
	return lumen.NewQExpr(append([]lumen.Value(nil), items[:len(items)-1]...)...)
}

// builtinLast implements `last xs`: returns the last element.
func builtinLast(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("last", args, 1, 1); err != nil {
		return err
	}
	q, err := requireNonEmptyQExpr("last", args, 0)
	if err != nil {
		return err
	}
	items := q.Items()
	return items[len(items)-1]
}

// builtinNth implements `nth i xs`: returns the i-th element (0-based),
// with a domain error when i is out of range.
func builtinNth(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("nth", args, 2, 2); err != nil {
		return err
	}
	if err := CheckType("nth", args, 0, lumen.KindInt); err != nil {
		return err
	}
	q, err := GetQExpr("nth", args, 1)
	if err != nil {
		return err
	}
	i := int64(args[0].(lumen.Int))
	items := q.Items()
	if i < 0 || i >= int64(len(items)) {
		return lumen.NewClassErrf(lumen.ErrDomain, "Procedure 'nth': index %d out of range for list of length %d.", i, len(items))
	}
	return items[i]
}

// builtinCons implements `cons v xs`: prepends v to xs.
func builtinCons(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("cons", args, 2, 2); err != nil {
		return err
	}
	q, err := GetQExpr("cons", args, 1)
	if err != nil {
		return err
	}
	items := append([]lumen.Value{args[0]}, q.Items()...)
	return lumen.NewQExpr(items...)
}

// builtinJoin implements `join xs1 ... xsn`: concatenates the given lists.
func builtinJoin(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("join", args, 0, -1); err != nil {
		return err
	}
	var items []lumen.Value
	for i := range args {
		q, err := GetQExpr("join", args, i)
		if err != nil {
			return err
		}
		items = append(items, q.Items()...)
	}
	return lumen.NewQExpr(items...)
}

// builtinLen implements `len xs`: returns the element count.
func builtinLen(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("len", args, 1, 1); err != nil {
		return err
	}
	q, err := GetQExpr("len", args, 0)
	if err != nil {
		return err
	}
	return lumen.MakeInt(int64(q.Len()))
}
