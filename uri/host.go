package uri

import "github.com/ghettovoice/uriparse/internal/grammar"

// host = IP-literal / IPv4address / reg-name
func (p *parser[C]) host() Status {
	start := p.cur.Mark()
	if p.try((*parser[C]).ipLiteral) == Error && p.try((*parser[C]).ipv4Address) == Error {
		p.regName()
	}
	return p.emit(p.st.Host, start, p.cur.Pos())
}

// IP-literal = "[" ( IPv6address / IPvFuture ) "]"
func (p *parser[C]) ipLiteral() Status {
	if !p.cur.Lit('[') {
		return Error
	}

	if p.st.StrictHost {
		start := p.cur.Mark()
		for p.cur.Peek() != ']' && !p.cur.Done() {
			p.cur.Next()
		}
		addr := p.cur.Bytes(start, p.cur.Pos())
		if !grammar.IsIPv6Address(addr) && !grammar.IsIPvFuture(addr) {
			return Error
		}
	} else if !p.cur.Try((*grammar.Cursor).IPv6Address) && !p.cur.Try((*grammar.Cursor).IPvFuture) {
		return Error
	}

	return matched(p.cur.Lit(']'))
}

// IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
//
// A dotted quad followed by a reg-name character is left to reg-name.
func (p *parser[C]) ipv4Address() Status {
	start := p.cur.Mark()
	if !p.cur.IPv4Address() || grammar.IsRegNameChar(p.cur.Peek()) {
		return Error
	}
	if p.st.StrictHost && !grammar.IsIPv4Address(p.cur.Bytes(start, p.cur.Pos())) {
		return Error
	}
	return Success
}

// reg-name = *( unreserved / pct-encoded / sub-delims )
func (p *parser[C]) regName() {
	for p.cur.RegNameChar() {
	}
}
