package lumen

import "testing"

func TestProcStringAnonymousVsNamed(t *testing.T) {
	p := NewProc(nil, nil, nil, nil)
	if p.String() != "#<lambda>" {
		t.Errorf("anonymous Proc.String() = %q", p.String())
	}
	p.Name = "square"
	if p.String() != "#<lambda:square>" {
		t.Errorf("named Proc.String() = %q", p.String())
	}
}

func TestProcDeepCopySharesEnv(t *testing.T) {
	env := NewEnvironment(nil)
	p := NewProc([]*Sym{Intern("x")}, nil, []Value{Intern("x")}, env)
	cp := p.deepCopy()
	if cp.Env != env {
		t.Errorf("deepCopy must share the captured environment by reference")
	}
	if &cp.Params[0] == &p.Params[0] {
		t.Errorf("deepCopy should own a fresh Params slice")
	}
}
