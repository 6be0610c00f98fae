// Command lumen is the CLI entry point of spec.md §6, grounded on the
// sxpf/cmd/main.go startup shape (build engine, register built-ins,
// evaluate sources) and on github.com/spf13/cobra for flag and argument
// parsing.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"suse.dev/lumen"
	"suse.dev/lumen/builtins"
	"suse.dev/lumen/eval"
	"suse.dev/lumen/internal/parser"
	"suse.dev/lumen/internal/repl"
	"suse.dev/lumen/reader"
)

func main() {
	os.Exit(run())
}

func run() int {
	var stop bool

	root := &cobra.Command{
		Use:           "lumen [flags] [file...]",
		Short:         "A tree-walking interpreter for a small Lisp-family language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVar(&stop, "stop", false, "load files and exit without entering the REPL")

	exitCode := 0
	root.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = runInterpreter(stop, args)
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

const preludePath = "lang/base.lsp"

func runInterpreter(stop bool, files []string) int {
	logrus.SetLevel(logrus.InfoLevel)

	env := lumen.NewEnvironment(nil)
	builtins.Register(env)

	p, err := parser.New()
	if err != nil {
		logrus.WithError(err).Error("could not build parser")
		return 1
	}
	rd := reader.New()

	if err := loadFile(env, p, rd, preludePath); err != nil {
		logrus.WithError(err).WithField("path", preludePath).Error("could not load prelude")
		return 1
	}

	for _, path := range files {
		if err := loadFile(env, p, rd, path); err != nil {
			logrus.WithError(err).WithField("path", path).Error("could not load file")
			return 1
		}
	}

	if stop {
		return 0
	}

	session, err := repl.New(env, os.Stdout)
	if err != nil {
		logrus.WithError(err).Error("could not start REPL")
		return 1
	}
	if err := session.Run(); err != nil {
		logrus.WithError(err).Error("REPL exited with an error")
		return 1
	}
	return 0
}

// loadFile evaluates one file's top-level forms into env, printing (but not
// aborting the process on) the first Err and continuing to the next file,
// per spec.md §6. A genuine I/O failure opening the file is returned as a
// Go error, which is fatal to the process.
func loadFile(env *lumen.Environment, p *parser.Parser, rd *reader.Reader, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tree, perr := p.ParseString(path, string(src))
	if perr != nil {
		fmt.Fprintf(os.Stderr, "Error: parse error in '%s': %s\n", path, perr)
		return nil
	}
	v := rd.Read(tree)
	if e, ok := v.(*lumen.Err); ok {
		fmt.Fprintln(os.Stderr, e.Human())
		return nil
	}
	seq, ok := v.(*lumen.SExpr)
	if !ok {
		return nil
	}
	for _, form := range seq.Items() {
		result := eval.Eval(env, form)
		if e, ok := result.(*lumen.Err); ok {
			fmt.Fprintln(os.Stderr, e.Human())
			break
		}
	}
	return nil
}
