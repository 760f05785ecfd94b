package uri

import (
	"context"
	"log/slog"

	"github.com/ghettovoice/uriparse/internal/grammar"
)

// ParseFullURI parses s as URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
// and passes every matched component to the hooks of st along with c.
//
// The input ends at len(s) or at the first NUL byte.
// A nil st parses without hooks.
func ParseFullURI[C any, T ~string | ~[]byte](s T, st *Settings[C], c C) Status {
	status, _ := run("uri", []byte(s), st, c, (*parser[C]).uri)
	return status
}

// ParsePath parses s as a path, either path-rootless or path-abempty.
// Only the Path and PathSegment hooks of st fire.
func ParsePath[C any, T ~string | ~[]byte](s T, st *Settings[C], c C) Status {
	status, _ := run("path", []byte(s), st, c, (*parser[C]).path)
	return status
}

// ParseQuery parses s as a query body without the leading "?".
// Only the Query and query item hooks of st fire.
func ParseQuery[C any, T ~string | ~[]byte](s T, st *Settings[C], c C) Status {
	status, _ := run("query", []byte(s), st, c, (*parser[C]).query)
	return status
}

// run parses s with prod and returns the status and the offset where matching stopped.
func run[C any](mode string, s []byte, st *Settings[C], c C, prod production[C]) (Status, int) {
	if st == nil {
		st = &Settings[C]{}
	}

	p := parser[C]{
		cur: grammar.NewCursor(s),
		st:  st,
		ctx: c,
	}
	status := prod(&p)
	off := min(p.cur.Pos(), p.cur.Len())

	var trailing int
	if status == Success && !p.cur.Done() {
		status = Error
		trailing = p.cur.Len() - off
	}

	if log := st.logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		attrs := []slog.Attr{
			slog.String("mode", mode),
			slog.String("status", status.String()),
			slog.Int("offset", off),
			slog.Int("length", p.cur.Len()),
		}
		if trailing > 0 {
			attrs = append(attrs, slog.Int("trailing", trailing))
		}
		log.LogAttrs(context.Background(), slog.LevelDebug, "uri parse finished", attrs...)
	}
	return status, off
}
