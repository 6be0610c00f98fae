package lumen

// Repr returns the canonical textual form of v used for nested printing
// (inside an SExpr/QExpr) and for nothing-special top-level values. It is
// identical to v.String() for every kind; it exists as a named entry point
// mirroring spec.md §4.4's Printer component, distinct from Display below.
func Repr(v Value) string { return v.String() }

// Display returns the form used to print a top-level result: identical to
// Repr except for Err, which prints as `Error: msg` instead of the nested
// `<error: msg>` form, per spec.md §4.4/§6.
func Display(v Value) string {
	if e, ok := v.(*Err); ok {
		return e.Human()
	}
	return v.String()
}
