package uri

import (
	"strconv"

	"github.com/ghettovoice/uriparse/internal/grammar"
)

// parser holds the state of one parse call.
type parser[C any] struct {
	cur grammar.Cursor
	st  *Settings[C]
	ctx C
}

type production[C any] func(p *parser[C]) Status

// try runs prod and moves the cursor back to where it was if prod fails.
// Canceled is not a failure, the cursor stays where the hook stopped it.
func (p *parser[C]) try(prod production[C]) Status {
	m := p.cur.Mark()
	s := prod(p)
	if s == Error {
		p.cur.Reset(m)
	}
	return s
}

// alt returns the status of the first alternative that does not fail.
func (p *parser[C]) alt(prods ...production[C]) Status {
	for _, prod := range prods {
		if s := p.try(prod); s != Error {
			return s
		}
	}
	return Error
}

func matched(ok bool) Status {
	if ok {
		return Success
	}
	return Error
}

func proceed(ok bool) Status {
	if ok {
		return Success
	}
	return Canceled
}

// emit passes the input between from and to to hook.
func (p *parser[C]) emit(hook Hook[C], from, to int) Status {
	if hook == nil {
		return Success
	}

	span := p.cur.Bytes(from, to)
	if !p.st.Decode {
		return proceed(hook(p.ctx, span))
	}

	d := p.decode(span)
	defer d.free()
	return proceed(hook(p.ctx, d.b))
}

type decoded struct {
	alloc Allocator
	buf   []byte
	b     []byte
}

// decode copies the decoded span into a buffer from the allocator.
// The caller must free the result.
func (p *parser[C]) decode(span []byte) decoded {
	a := p.st.allocator()
	buf := a.Alloc(len(span))
	// decoded output is never longer than the input
	n, _ := Decode(buf, span, p.st.PlusAsSpace)
	return decoded{alloc: a, buf: buf, b: buf[:n]}
}

func (d decoded) free() { d.alloc.Free(d.buf) }

// URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
func (p *parser[C]) uri() Status {
	if s := p.scheme(); s != Success {
		return s
	}
	if !p.cur.Lit(':') {
		return Error
	}
	if s := p.hierPart(); s != Success {
		return s
	}
	if s := p.try((*parser[C]).queryPart); s == Canceled {
		return s
	}
	if s := p.try((*parser[C]).fragmentPart); s == Canceled {
		return s
	}
	return Success
}

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func (p *parser[C]) scheme() Status {
	start := p.cur.Mark()
	if !p.cur.Accept(grammar.IsAlpha) {
		return Error
	}
	for p.cur.Accept(grammar.IsSchemeChar) {
	}
	return p.emit(p.st.Scheme, start, p.cur.Pos())
}

// hier-part = "//" authority path-abempty / path-absolute / path-rootless / path-empty
func (p *parser[C]) hierPart() Status {
	return p.alt(
		(*parser[C]).authorityPath,
		(*parser[C]).pathAbsolute,
		(*parser[C]).pathRootless,
		(*parser[C]).pathEmpty,
	)
}

func (p *parser[C]) authorityPath() Status {
	if !p.cur.Lit('/') || !p.cur.Lit('/') {
		return Error
	}
	if s := p.authority(); s != Success {
		return s
	}
	return p.pathAbempty()
}

// authority = [ userinfo "@" ] host [ ":" port ]
func (p *parser[C]) authority() Status {
	if s := p.try((*parser[C]).userinfoAt); s == Canceled {
		return s
	}
	if s := p.host(); s != Success {
		return s
	}
	if s := p.try((*parser[C]).colonPort); s == Canceled {
		return s
	}
	return Success
}

// userinfo "@", the userinfo is emitted only once the "@" is seen.
func (p *parser[C]) userinfoAt() Status {
	start := p.cur.Mark()
	for p.cur.UserinfoChar() {
	}
	end := p.cur.Pos()
	if !p.cur.Lit('@') {
		return Error
	}
	return p.emit(p.st.Userinfo, start, end)
}

func (p *parser[C]) colonPort() Status {
	if !p.cur.Lit(':') {
		return Error
	}
	return p.port()
}

// port = *DIGIT
func (p *parser[C]) port() Status {
	start := p.cur.Mark()
	for p.cur.Accept(grammar.IsDigit) {
	}
	end := p.cur.Pos()
	if s := p.emit(p.st.Port, start, end); s != Success {
		return s
	}

	if p.st.PortNumber == nil || start == end {
		return Success
	}
	v, err := strconv.ParseUint(string(p.cur.Bytes(start, end)), 10, 16)
	if err != nil {
		return Success
	}
	return proceed(p.st.PortNumber(p.ctx, uint16(v)))
}

// path-abempty = *( "/" segment )
func (p *parser[C]) pathAbempty() Status {
	start := p.cur.Mark()
	if s := p.segments(); s != Success {
		return s
	}
	return p.emit(p.st.Path, start, p.cur.Pos())
}

// path-absolute = "/" [ segment-nz *( "/" segment ) ]
func (p *parser[C]) pathAbsolute() Status {
	start := p.cur.Mark()
	if !p.cur.Lit('/') {
		return Error
	}
	if s := p.try((*parser[C]).rootlessSegments); s == Canceled {
		return s
	}
	return p.emit(p.st.Path, start, p.cur.Pos())
}

// path-rootless = segment-nz *( "/" segment )
func (p *parser[C]) pathRootless() Status {
	start := p.cur.Mark()
	if s := p.rootlessSegments(); s != Success {
		return s
	}
	return p.emit(p.st.Path, start, p.cur.Pos())
}

// path-empty = 0<pchar>
func (p *parser[C]) pathEmpty() Status {
	return p.emit(p.st.Path, p.cur.Pos(), p.cur.Pos())
}

// segment-nz *( "/" segment )
func (p *parser[C]) rootlessSegments() Status {
	start := p.cur.Mark()
	if !p.cur.Pchar() {
		return Error
	}
	for p.cur.Pchar() {
	}
	if s := p.emit(p.st.PathSegment, start, p.cur.Pos()); s != Success {
		return s
	}
	return p.segments()
}

// *( "/" segment ), empty segments are not emitted.
func (p *parser[C]) segments() Status {
	for p.cur.Lit('/') {
		start := p.cur.Mark()
		for p.cur.Pchar() {
		}
		if p.cur.Pos() == start {
			continue
		}
		if s := p.emit(p.st.PathSegment, start, p.cur.Pos()); s != Success {
			return s
		}
	}
	return Success
}

// path as accepted by [ParsePath].
func (p *parser[C]) path() Status {
	return p.alt((*parser[C]).pathRootless, (*parser[C]).pathAbempty)
}

func (p *parser[C]) queryPart() Status {
	if !p.cur.Lit('?') {
		return Error
	}
	return p.query()
}

// query = *( pchar / "/" / "?" )
func (p *parser[C]) query() Status {
	start := p.cur.Mark()
	for p.cur.QueryChar() {
	}
	end := p.cur.Pos()
	if s := p.emit(p.st.Query, start, end); s != Success {
		return s
	}
	return p.queryItems(p.cur.Bytes(start, end))
}

// "#" fragment, fragment = *( pchar / "/" / "?" )
func (p *parser[C]) fragmentPart() Status {
	if !p.cur.Lit('#') {
		return Error
	}
	start := p.cur.Mark()
	for p.cur.QueryChar() {
	}
	return p.emit(p.st.Fragment, start, p.cur.Pos())
}
