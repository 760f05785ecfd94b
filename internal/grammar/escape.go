package grammar

import (
	"bytes"
)

const upperhex = "0123456789ABCDEF"

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG"
// into the hex-decoded byte. Malformed triplets are copied as is.
// If plusAsSpace is set, each "+" is converted to a space.
func Unescape[T Byteseq](s T, plusAsSpace bool) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && IsHexDig(s[i+1]) && IsHexDig(s[i+2]):
			b.WriteByte(Unhex(s[i+1])<<4 | Unhex(s[i+2]))
			i += 2
		case s[i] == '+' && plusAsSpace:
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Escape escapes s by replacing each byte matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// Unlike [Unescape] it never keeps existing triplets: a "%" is escaped like any other byte
// unless shouldEscape says otherwise.
// By default, every byte except unreserved ones is escaped.
func Escape[T Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}
