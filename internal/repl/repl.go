// Package repl implements the read-eval-print loop of spec.md §6, grounded
// on the read -> parse -> eval -> print loop in sxpf/cmd/main.go, using
// github.com/chzyer/readline for line editing/history in place of sxpf's
// bufio.Scanner (sxpf has no interactive REPL of its own; readline is the
// closest grounded analogue available in the retrieval pack — see
// SPEC_FULL.md).
package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"suse.dev/lumen"
	"suse.dev/lumen/eval"
	"suse.dev/lumen/internal/parser"
	"suse.dev/lumen/reader"
)

const prompt = "interpreter> "

// REPL ties the reader, parser, evaluator and printer into an interactive
// loop over an already-populated root environment.
type REPL struct {
	env    *lumen.Environment
	parser *parser.Parser
	reader *reader.Reader
	out    io.Writer
}

// New builds a REPL evaluating against env and writing results to out.
func New(env *lumen.Environment, out io.Writer) (*REPL, error) {
	p, err := parser.New()
	if err != nil {
		return nil, fmt.Errorf("building parser: %w", err)
	}
	return &REPL{
		env:    env,
		parser: p,
		reader: reader.New(),
		out:    out,
	}, nil
}

// exitSym is the symbol naming the `(exit)` termination form of spec.md §6.
var exitSym = lumen.Intern("exit")

// Run drives the loop until an `(exit)` form is read or input is exhausted
// (EOF on Ctrl-D), per spec.md §6.
func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting line editor: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil // io.EOF: clean exit
		}
		if line == "" {
			continue
		}
		if r.evalLine(line) {
			return nil
		}
	}
}

// evalLine reads, evaluates and prints one line of input, returning true
// when the line was `(exit)`.
func (r *REPL) evalLine(line string) (exit bool) {
	tree, err := r.parser.ParseString("<repl>", line)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %s\n", err)
		return false
	}
	v := r.reader.Read(tree)
	if e, ok := v.(*lumen.Err); ok {
		fmt.Fprintln(r.out, e.Human())
		return false
	}
	seq, ok := v.(*lumen.SExpr)
	if !ok {
		fmt.Fprintln(r.out, lumen.Display(v))
		return false
	}
	for _, form := range seq.Items() {
		if isExitForm(form) {
			return true
		}
		result := eval.Eval(r.env, form)
		fmt.Fprintln(r.out, lumen.Display(result))
	}
	return false
}

func isExitForm(form lumen.Value) bool {
	s, ok := form.(*lumen.SExpr)
	if !ok || s.Len() != 1 {
		return false
	}
	sym, ok := s.Items()[0].(*lumen.Sym)
	return ok && sym == exitSym
}
