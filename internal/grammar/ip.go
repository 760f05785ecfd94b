package grammar

// The matchers below consume input like the primitives of [Cursor]:
// on mismatch the offset is left wherever matching stopped,
// callers wrap them with [Cursor.Try] to roll back.

// DecOctet consumes up to 3 digits and checks that their decimal value is in [0, 255].
// Leading zeros are tolerated, unlike the exact dec-octet rule.
func (c *Cursor) DecOctet() bool {
	start := c.pos
	v := 0
	for c.pos-start < 3 && c.Accept(IsDigit) {
		v = v*10 + int(c.buf[c.pos-1]-'0')
	}
	return c.pos > start && v <= 255
}

// IPv4Address matches dec-octet "." dec-octet "." dec-octet "." dec-octet.
func (c *Cursor) IPv4Address() bool {
	return c.DecOctet() && c.Char('.') &&
		c.DecOctet() && c.Char('.') &&
		c.DecOctet() && c.Char('.') &&
		c.DecOctet()
}

// H16 matches h16 = 1*4HEXDIG.
func (c *Cursor) H16() bool {
	n := 0
	for n < 4 && c.Accept(IsHexDig) {
		n++
	}
	return n > 0
}

func (c *Cursor) h16Colon() bool { return c.H16() && c.Char(':') }

func (c *Cursor) h16Pair() bool { return c.H16() && c.Char(':') && c.H16() }

// Ls32 matches ls32 = ( h16 ":" h16 ) / IPv4address.
func (c *Cursor) Ls32() bool {
	return c.Try((*Cursor).h16Pair) || c.Try((*Cursor).IPv4Address)
}

// IPv6Address matches the simplified form
//
//	[ ( ":" / 1*7( h16 ":" ) ) ":" ] ( ( 0*6( h16 ":" ) ls32 ) / h16 )
//
// It accepts every RFC 3986 IPv6address that has at least one group after
// the "::" elision, plus some addresses with too few groups.
func (c *Cursor) IPv6Address() bool {
	c.Try((*Cursor).ipv6Prefix)

	// 0*6( h16 ":" ) ls32, backing off one repetition at a time until ls32 fits
	var marks [7]int
	n := 0
	marks[0] = c.pos
	for n < 6 && c.Try((*Cursor).h16Colon) {
		n++
		marks[n] = c.pos
	}
	for ; n >= 0; n-- {
		c.pos = marks[n]
		if c.Ls32() {
			return true
		}
	}
	c.pos = marks[0]
	return c.H16()
}

func (c *Cursor) ipv6Prefix() bool {
	if !c.Lit(':') {
		n := 0
		for n < 7 && c.Try((*Cursor).h16Colon) {
			n++
		}
		if n == 0 {
			return false
		}
	}
	return c.Char(':')
}

// IPvFuture matches IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
func (c *Cursor) IPvFuture() bool {
	if !c.Lit('v') && !c.Lit('V') {
		return false
	}
	if !c.HexDig() {
		return false
	}
	for c.Accept(IsHexDig) {
	}
	if !c.Char('.') {
		return false
	}
	n := 0
	for c.Accept(isIPvFutureChar) {
		n++
	}
	return n > 0
}

func isIPvFutureChar(b byte) bool { return IsUnreserved(b) || IsSubDelim(b) || b == ':' }
