package lumen

// Proc is a user-defined closure: an ordered parameter list (optionally
// ending in a variadic `&`-tail symbol), a body sequence of forms, and the
// environment captured at the point `\` built the closure, per spec.md §3.
type Proc struct {
	Name   string // empty for anonymous lambdas; set by `fun` sugar
	Params []*Sym
	Rest   *Sym // non-nil when the parameter list ends in `& rest`
	Body   []Value
	Env    *Environment
}

// NewProc constructs a closure capturing env by reference.
func NewProc(params []*Sym, rest *Sym, body []Value, env *Environment) *Proc {
	return &Proc{Params: params, Rest: rest, Body: body, Env: env}
}

func (*Proc) Kind() Kind { return KindProc }

func (p *Proc) String() string {
	if p.Name != "" {
		return "#<lambda:" + p.Name + ">"
	}
	return "#<lambda>"
}

// deepCopy copies the parameter and body sequences but shares the captured
// environment, per spec.md §4.1.
func (p *Proc) deepCopy() *Proc {
	params := make([]*Sym, len(p.Params))
	copy(params, p.Params)
	body := make([]Value, len(p.Body))
	for i, f := range p.Body {
		body[i] = DeepCopy(f)
	}
	return &Proc{Name: p.Name, Params: params, Rest: p.Rest, Body: body, Env: p.Env}
}
