package builtins

import (
	"strings"

	"suse.dev/lumen"
)

// registerStrings binds `concat`, per spec.md §4.6.
func registerStrings(root *lumen.Environment) {
	bind(root, "concat", builtinConcat)
}

// builtinConcat implements `concat s1 ... sn`: string concatenation.
func builtinConcat(_ *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("concat", args, 0, -1); err != nil {
		return err
	}
	var b strings.Builder
	for i, a := range args {
		if err := CheckType("concat", args, i, lumen.KindStr); err != nil {
			return err
		}
		b.WriteString(a.(*lumen.Str).Text())
	}
	return lumen.MakeStr(b.String())
}
