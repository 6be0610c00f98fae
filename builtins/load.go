package builtins

import (
	"os"

	"github.com/sirupsen/logrus"

	"suse.dev/lumen"
	"suse.dev/lumen/eval"
	"suse.dev/lumen/internal/parser"
	"suse.dev/lumen/reader"
)

// loadDepth is the per-call recursion counter spec.md §5 calls out, used to
// indent `load`'s status messages when one loaded file loads another.
// Execution is single-threaded, so a package-level counter is safe.
var loadDepth int

// registerLoad binds `load`, per spec.md §4.6/§5.
func registerLoad(root *lumen.Environment) {
	bind(root, "load", builtinLoad)
}

// builtinLoad implements `load "path"`: reads the named file, parses it as
// a sequence of top-level forms, and evaluates each form in turn in the
// global environment. The first Err aborts the remaining forms in that
// file and is returned as load's result, per spec.md §4.6/§7.
func builtinLoad(env *lumen.Environment, args []lumen.Value) lumen.Value {
	if err := CheckArgs("load", args, 1, 1); err != nil {
		return err
	}
	if err := CheckType("load", args, 0, lumen.KindStr); err != nil {
		return err
	}
	path := args[0].(*lumen.Str).Text()

	indent := ""
	for i := 0; i < loadDepth; i++ {
		indent += "  "
	}
	logrus.WithField("path", path).Debugf("%sloading", indent)

	src, ioErr := os.ReadFile(path)
	if ioErr != nil {
		return lumen.NewClassErrf(lumen.ErrIO, "Could not load '%s': %s.", path, ioErr)
	}

	p, perr := parser.New()
	if perr != nil {
		return lumen.NewClassErrf(lumen.ErrIO, "Internal parser error loading '%s': %s.", path, perr)
	}
	tree, perr := p.ParseString(path, string(src))
	if perr != nil {
		return lumen.NewClassErrf(lumen.ErrReader, "Parse error in '%s': %s.", path, perr)
	}

	rd := reader.New()
	forms := rd.Read(tree)
	if e, ok := forms.(*lumen.Err); ok {
		return e
	}

	seq, ok := forms.(*lumen.SExpr)
	if !ok {
		return lumen.NewClassErrf(lumen.ErrReader, "Internal reader error loading '%s'.", path)
	}

	loadDepth++
	defer func() { loadDepth-- }()

	global := env.Global()
	var last lumen.Value = lumen.NewSExpr()
	for _, form := range seq.Items() {
		last = eval.Eval(global, form)
		if lumen.IsErr(last) {
			logrus.WithField("path", path).Debugf("%saborted: %s", indent, last.(*lumen.Err).Human())
			return last
		}
	}
	logrus.WithField("path", path).Debugf("%sloaded", indent)
	return last
}
