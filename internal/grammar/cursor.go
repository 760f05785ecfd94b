package grammar

// EOF is the sentinel byte returned by [Cursor.Next] once the input is exhausted.
const EOF byte = 0

// Cursor is a bounds-checked byte reader over a resident input buffer.
//
// Every read advances the offset by one, even past the end of the input.
// Reads past the end yield [EOF], so running out of input behaves like
// hitting an embedded terminator. Callers roll back failed attempts with
// [Cursor.Mark] and [Cursor.Reset].
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor over b. The input is cut at its first NUL byte.
func NewCursor(b []byte) Cursor {
	for i, c := range b {
		if c == EOF {
			b = b[:i]
			break
		}
	}
	return Cursor{buf: b}
}

// Next returns the byte at the current offset and advances the offset.
func (c *Cursor) Next() byte {
	b := EOF
	if c.pos < len(c.buf) {
		b = c.buf[c.pos]
	}
	c.pos++
	return b
}

// Peek returns the byte at the current offset without advancing.
func (c *Cursor) Peek() byte {
	if c.pos < len(c.buf) {
		return c.buf[c.pos]
	}
	return EOF
}

// Mark returns a checkpoint to be passed to [Cursor.Reset].
func (c *Cursor) Mark() int { return c.pos }

// Reset moves the cursor back to the checkpoint m.
func (c *Cursor) Reset(m int) { c.pos = m }

// Pos returns the current offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the logical input length.
func (c *Cursor) Len() int { return len(c.buf) }

// Done reports whether the whole input was consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.buf) }

// Bytes returns the input between the offsets from and to.
func (c *Cursor) Bytes(from, to int) []byte {
	to = min(to, len(c.buf))
	from = min(from, to)
	return c.buf[from:to:to]
}

// Try runs the step fn and restores the offset if the step did not match.
func (c *Cursor) Try(fn func(c *Cursor) bool) bool {
	m := c.pos
	if fn(c) {
		return true
	}
	c.pos = m
	return false
}

// Accept consumes one byte if it satisfies pred.
func (c *Cursor) Accept(pred func(b byte) bool) bool {
	m := c.pos
	if pred(c.Next()) {
		return true
	}
	c.pos = m
	return false
}

// Char matches the literal byte b.
func (c *Cursor) Char(b byte) bool { return c.Next() == b && b != EOF }

// Lit consumes the literal byte b if it is next, otherwise leaves the offset untouched.
func (c *Cursor) Lit(b byte) bool {
	if b != EOF && c.Peek() == b {
		c.pos++
		return true
	}
	return false
}

// Alpha matches ALPHA.
func (c *Cursor) Alpha() bool { return IsAlpha(c.Next()) }

// Digit matches DIGIT.
func (c *Cursor) Digit() bool { return IsDigit(c.Next()) }

// HexDig matches HEXDIG.
func (c *Cursor) HexDig() bool { return IsHexDig(c.Next()) }

// Unreserved matches unreserved.
func (c *Cursor) Unreserved() bool { return IsUnreserved(c.Next()) }

// SubDelims matches sub-delims.
func (c *Cursor) SubDelims() bool { return IsSubDelim(c.Next()) }

// PctEncoded matches pct-encoded = "%" HEXDIG HEXDIG.
func (c *Cursor) PctEncoded() bool { return c.Char('%') && c.HexDig() && c.HexDig() }

// Pchar matches pchar = unreserved / pct-encoded / sub-delims / ":" / "@".
func (c *Cursor) Pchar() bool {
	return c.Try((*Cursor).Unreserved) ||
		c.Try((*Cursor).PctEncoded) ||
		c.Try((*Cursor).SubDelims) ||
		c.Accept(isColonOrAt)
}

// UserinfoChar matches unreserved / pct-encoded / sub-delims / ":".
func (c *Cursor) UserinfoChar() bool {
	return c.Try((*Cursor).Unreserved) ||
		c.Try((*Cursor).PctEncoded) ||
		c.Try((*Cursor).SubDelims) ||
		c.Lit(':')
}

// RegNameChar matches unreserved / pct-encoded / sub-delims.
func (c *Cursor) RegNameChar() bool {
	return c.Try((*Cursor).Unreserved) ||
		c.Try((*Cursor).PctEncoded) ||
		c.Try((*Cursor).SubDelims)
}

// QueryChar matches pchar / "/" / "?", the repeated element of query and fragment.
func (c *Cursor) QueryChar() bool {
	return c.Pchar() || c.Lit('/') || c.Lit('?')
}

func isColonOrAt(b byte) bool { return b == ':' || b == '@' }
