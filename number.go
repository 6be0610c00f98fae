package lumen

import "strconv"

// Int is a 64-bit signed integer value.
type Int int64

// MakeInt constructs an Int value.
func MakeInt(i int64) Int { return Int(i) }

func (Int) Kind() Kind { return KindInt }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a double-precision floating point value.
type Float float64

// MakeFloat constructs a Float value.
func MakeFloat(f float64) Float { return Float(f) }

func (Float) Kind() Kind { return KindFloat }

// String renders the shortest decimal that parses back to the same float64
// (%g style, at most 17 significant digits).
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// IsNumber reports whether v is an Int or a Float.
func IsNumber(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	default:
		return false
	}
}
