package lumen

// Bool is the boolean value kind. It is a plain value type: booleans have
// no identity of their own, only the two values true and false.
type Bool bool

// MakeBool constructs a Bool value.
func MakeBool(b bool) Bool { return Bool(b) }

func (Bool) Kind() Kind { return KindBool }

func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}
