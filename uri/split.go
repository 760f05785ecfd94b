package uri

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparse/internal/errorutil"
	"github.com/ghettovoice/uriparse/internal/grammar"
	"github.com/ghettovoice/uriparse/internal/util"
)

// ErrMalformedInput is returned by [Split], [SplitPath] and [SplitQuery]
// when the grammar does not match the whole input.
const ErrMalformedInput = grammar.ErrMalformedInput

// Value is a classified query item value.
type Value struct {
	Kind ValueKind
	Int  int64
	Real float64
	Text string
}

// QueryItem is a query item collected by [Split].
type QueryItem struct {
	Key   string
	Value Value
}

// Parts holds the components of a URI collected by [Split].
//
// The Has* flags tell an absent component from an empty one.
type Parts struct {
	Scheme       string
	HasAuthority bool
	HasUserinfo  bool
	Userinfo     string
	Host         string
	HasPort      bool
	Port         string
	Path         string
	Segments     []string
	HasQuery     bool
	Query        string
	Items        []QueryItem
	HasFragment  bool
	Fragment     string
}

// String reassembles the URI from its components.
// The result equals the parsed input unless the parts were decoded.
func (p *Parts) String() string {
	if p == nil {
		return "<nil>"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if p.Scheme != "" {
		sb.WriteString(p.Scheme)
		sb.WriteByte(':')
	}
	if p.HasAuthority {
		sb.WriteString("//")
		if p.HasUserinfo {
			sb.WriteString(p.Userinfo)
			sb.WriteByte('@')
		}
		sb.WriteString(p.Host)
		if p.HasPort {
			sb.WriteByte(':')
			sb.WriteString(p.Port)
		}
	}
	sb.WriteString(p.Path)
	if p.HasQuery {
		sb.WriteByte('?')
		sb.WriteString(p.Query)
	}
	if p.HasFragment {
		sb.WriteByte('#')
		sb.WriteString(p.Fragment)
	}
	return sb.String()
}

// SplitOptions configures [Split], [SplitPath] and [SplitQuery].
// A nil *SplitOptions uses the defaults.
type SplitOptions struct {
	Decode                bool
	PlusAsSpace           bool
	StrictHost            bool
	QueryItemSeparator    byte
	QueryItemKeySeparator byte
	Logger                *slog.Logger
}

var partsHooks = Settings[*Parts]{
	Scheme: func(p *Parts, b []byte) bool {
		p.Scheme = string(b)
		return true
	},
	Userinfo: func(p *Parts, b []byte) bool {
		p.HasUserinfo, p.Userinfo = true, string(b)
		return true
	},
	Host: func(p *Parts, b []byte) bool {
		p.HasAuthority, p.Host = true, string(b)
		return true
	},
	Port: func(p *Parts, b []byte) bool {
		p.HasPort, p.Port = true, string(b)
		return true
	},
	Path: func(p *Parts, b []byte) bool {
		p.Path = string(b)
		return true
	},
	PathSegment: func(p *Parts, b []byte) bool {
		p.Segments = append(p.Segments, string(b))
		return true
	},
	Query: func(p *Parts, b []byte) bool {
		p.HasQuery, p.Query = true, string(b)
		return true
	},
	QueryNullItem: func(p *Parts, k []byte) bool {
		p.Items = append(p.Items, QueryItem{Key: string(k), Value: Value{Kind: NullValue}})
		return true
	},
	QueryIntItem: func(p *Parts, k []byte, v int64) bool {
		p.Items = append(p.Items, QueryItem{Key: string(k), Value: Value{Kind: IntValue, Int: v}})
		return true
	},
	QueryRealItem: func(p *Parts, k []byte, v float64) bool {
		p.Items = append(p.Items, QueryItem{Key: string(k), Value: Value{Kind: RealValue, Real: v}})
		return true
	},
	QueryTextItem: func(p *Parts, k, v []byte) bool {
		p.Items = append(p.Items, QueryItem{Key: string(k), Value: Value{Kind: TextValue, Text: string(v)}})
		return true
	},
	Fragment: func(p *Parts, b []byte) bool {
		p.HasFragment, p.Fragment = true, string(b)
		return true
	},
}

func (o *SplitOptions) settings() *Settings[*Parts] {
	st := partsHooks
	if o != nil {
		st.Decode = o.Decode
		st.PlusAsSpace = o.PlusAsSpace
		st.StrictHost = o.StrictHost
		st.QueryItemSeparator = o.QueryItemSeparator
		st.QueryItemKeySeparator = o.QueryItemKeySeparator
		st.Logger = o.Logger
	}
	return &st
}

// Split parses s as a URI and collects its components.
// See [ParseFullURI].
func Split[T ~string | ~[]byte](s T, opts *SplitOptions) (*Parts, error) {
	return errtrace.Wrap2(split("uri", []byte(s), opts, (*parser[*Parts]).uri))
}

// SplitPath parses s as a path and collects the path and its segments.
// See [ParsePath].
func SplitPath[T ~string | ~[]byte](s T, opts *SplitOptions) (*Parts, error) {
	return errtrace.Wrap2(split("path", []byte(s), opts, (*parser[*Parts]).path))
}

// SplitQuery parses s as a query body and collects the query and its items.
// See [ParseQuery].
func SplitQuery[T ~string | ~[]byte](s T, opts *SplitOptions) (*Parts, error) {
	return errtrace.Wrap2(split("query", []byte(s), opts, (*parser[*Parts]).query))
}

func split(mode string, s []byte, opts *SplitOptions, prod production[*Parts]) (*Parts, error) {
	parts := new(Parts)
	if status, off := run(mode, s, opts.settings(), parts, prod); status != Success {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "%s stopped at offset %d", mode, off))
	}
	return parts, nil
}
