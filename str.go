package lumen

import "strings"

// Str is a byte sequence with a stored length, per spec.md §3. It is
// heap-backed (a pointer type) so that DeepCopy can produce a fresh
// identity distinct from the original, per spec.md §4.1's deep-copy
// invariant for composite/heap-backed kinds.
type Str struct {
	data string
}

// MakeStr constructs a Str value from Go string s.
func MakeStr(s string) *Str { return &Str{data: s} }

func (*Str) Kind() Kind { return KindStr }

func (s *Str) String() string { return quoteStr(s.data) }

// Text returns the raw, unquoted byte sequence.
func (s *Str) Text() string { return s.data }

// Len returns the exact length in bytes.
func (s *Str) Len() int { return len(s.data) }

func (s *Str) deepCopy() *Str { return &Str{data: s.data} }

func quoteStr(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// UnescapeStr expands the standard backslash escapes (\n, \t, \r, \", \\)
// in a string literal's body (delimiting quotes already stripped), per
// spec.md §4.3.
func UnescapeStr(s string) (string, error) {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		i++
		if i >= len(runes) {
			b.WriteByte('\\')
			break
		}
		switch runes[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '0':
			b.WriteByte(0)
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String(), nil
}
