package repl

import (
	"bytes"
	"strings"
	"testing"

	"suse.dev/lumen"
	"suse.dev/lumen/builtins"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	env := lumen.NewEnvironment(nil)
	builtins.Register(env)
	var buf bytes.Buffer
	r, err := New(env, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, &buf
}

func TestEvalLinePrintsResult(t *testing.T) {
	r, buf := newTestREPL(t)
	if exit := r.evalLine("(+ 1 2)"); exit {
		t.Fatalf("unexpected exit")
	}
	if got := strings.TrimSpace(buf.String()); got != "3" {
		t.Errorf("output = %q, want %q", got, "3")
	}
}

func TestEvalLineExitForm(t *testing.T) {
	r, _ := newTestREPL(t)
	if exit := r.evalLine("(exit)"); !exit {
		t.Fatalf("(exit) should signal termination")
	}
}

func TestEvalLinePrintsErrorHumanForm(t *testing.T) {
	r, buf := newTestREPL(t)
	r.evalLine("undefined-name")
	if got := strings.TrimSpace(buf.String()); got != "Error: Unbound symbol 'undefined-name'." {
		t.Errorf("output = %q", got)
	}
}
