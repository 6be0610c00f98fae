package lumen

// BuiltinFn is a procedure implemented in Go and registered in the root
// environment. It receives the already-evaluated argument list and returns
// a single result Value — an Err value on failure, never a Go error,
// per spec.md §4.6/§7.
type BuiltinFn func(env *Environment, args []Value) Value

// Builtin is a stateless, shareable handle to a BuiltinFn plus its name,
// used both for dispatch and for printing (`#<builtin:name>`).
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

// NewBuiltin constructs a Builtin value.
func NewBuiltin(name string, fn BuiltinFn) *Builtin { return &Builtin{Name: name, Fn: fn} }

func (*Builtin) Kind() Kind { return KindBuiltin }

func (b *Builtin) String() string { return "#<builtin:" + b.Name + ">" }

// Call invokes the builtin.
func (b *Builtin) Call(env *Environment, args []Value) Value { return b.Fn(env, args) }
