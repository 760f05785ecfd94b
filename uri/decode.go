package uri

import "github.com/ghettovoice/uriparse/internal/grammar"

// Decode percent-decodes src into dst and returns the number of bytes written.
//
// Each "%" HEXDIG HEXDIG triplet becomes the byte it encodes, malformed triplets
// and all other bytes are copied as is. A NUL byte in src ends the input.
// If plusAsSpace is set, "+" is decoded as a space.
//
// Decode returns [Error] with the bytes written so far if dst is too small.
// The output is never longer than src, so len(dst) >= len(src) always suffices.
func Decode(dst, src []byte, plusAsSpace bool) (int, Status) {
	cur := grammar.NewCursor(src)
	n := 0
	for !cur.Done() {
		m := cur.Mark()
		var b byte
		if cur.Try((*grammar.Cursor).PctEncoded) {
			b = grammar.Unhex(src[m+1])<<4 | grammar.Unhex(src[m+2])
		} else if b = cur.Next(); b == '+' && plusAsSpace {
			b = ' '
		}

		if n == len(dst) {
			return n, Error
		}
		dst[n] = b
		n++
	}
	return n, Success
}

// Unescape returns s with every "%" HEXDIG HEXDIG triplet decoded.
// See [Decode].
func Unescape[T ~string | ~[]byte](s T, plusAsSpace bool) T {
	return grammar.Unescape(s, plusAsSpace)
}

// Escape returns s with every byte for which shouldEscape reports true
// encoded as a "%" triplet with upper-case hex digits.
// A nil shouldEscape escapes everything but unreserved bytes.
func Escape[T ~string | ~[]byte](s T, shouldEscape func(c byte) bool) T {
	return grammar.Escape(s, shouldEscape)
}
