package lumen

import "fmt"

// ErrClass taxonomizes Err values per spec.md §7. It is informational only
// — propagation never branches on it, matching spec.md's "Errors are
// ordinary values of kind Err" design.
type ErrClass int

const (
	ErrGeneric ErrClass = iota
	ErrReader
	ErrUnboundSymbol
	ErrType
	ErrArity
	ErrDomain
	ErrApplication
	ErrAssertion
	ErrUser
	ErrIO
)

// Err is a first-class error value. Once created it propagates through
// S-expression evaluation and is never silently consumed by arithmetic or
// predicates. Two freshly constructed Err values are never Equal to each
// other, per spec.md §4.1 and §9: equality is identity-only.
type Err struct {
	Msg   string
	Class ErrClass
}

func (*Err) Kind() Kind { return KindErr }

// String renders the structured form used when an Err appears nested
// inside a printed SExpr/QExpr, per spec.md §4.4.
func (e *Err) String() string { return fmt.Sprintf("<error: %s>", e.Msg) }

// Human renders the top-level form used by the REPL/CLI, per spec.md §4.4
// and §6.
func (e *Err) Human() string { return "Error: " + e.Msg }

// NewErr constructs a generic Err value.
func NewErr(msg string) *Err { return &Err{Msg: msg} }

// NewErrf constructs a generic Err value with a formatted message.
func NewErrf(format string, args ...any) *Err { return &Err{Msg: fmt.Sprintf(format, args...)} }

// NewClassErr constructs an Err value of the given class.
func NewClassErr(class ErrClass, msg string) *Err { return &Err{Msg: msg, Class: class} }

// NewClassErrf constructs an Err value of the given class with a formatted message.
func NewClassErrf(class ErrClass, format string, args ...any) *Err {
	return &Err{Msg: fmt.Sprintf(format, args...), Class: class}
}
