package uri

import (
	"log/slog"

	"github.com/ghettovoice/uriparse/internal/log"
)

// Default query tokenizer delimiters.
const (
	DefaultQueryItemSeparator    byte = '&'
	DefaultQueryItemKeySeparator byte = '='
)

// Hook observes a matched span.
// It returns false to cancel the parse.
type Hook[C any] func(c C, span []byte) bool

// Settings configures a parse call.
// Nil hooks are skipped, the productions still run.
//
// A Settings value is only read by the parser, so it can be shared
// between concurrent calls as long as its hooks and allocator allow that.
type Settings[C any] struct {
	Scheme   Hook[C]
	Userinfo Hook[C]
	Host     Hook[C]
	// Port receives the port digits, possibly empty.
	Port Hook[C]
	// PortNumber receives the port value after Port, if the port is not empty
	// and fits in 16 bits.
	PortNumber func(c C, port uint16) bool
	// Path receives the whole path, after its segments.
	Path Hook[C]
	// PathSegment receives every non-empty path segment, left to right.
	PathSegment Hook[C]
	// Query receives the whole query body, before its items.
	Query    Hook[C]
	Fragment Hook[C]

	// QueryNullItem receives items without a key separator.
	QueryNullItem func(c C, key []byte) bool
	// QueryIntItem receives items whose value is a base-10 64-bit integer.
	QueryIntItem func(c C, key []byte, val int64) bool
	// QueryRealItem receives items whose value is a finite floating-point number.
	QueryRealItem func(c C, key []byte, val float64) bool
	// QueryTextItem receives all other items.
	QueryTextItem func(c C, key, val []byte) bool

	// QueryItemSeparator splits the query into items, zero means [DefaultQueryItemSeparator].
	QueryItemSeparator byte
	// QueryItemKeySeparator splits an item into key and value, zero means [DefaultQueryItemKeySeparator].
	QueryItemKeySeparator byte

	// Decode enables percent-decoding of every emitted span and query item.
	Decode bool
	// PlusAsSpace decodes "+" as a space, only used with Decode.
	PlusAsSpace bool
	// StrictHost validates IP literals and IPv4 addresses with the exact RFC 3986 grammar.
	StrictHost bool

	// Allocator provides decode buffers, nil means [DefaultAllocator].
	Allocator Allocator
	// Logger receives a debug record per parse call, nil means no logging.
	Logger *slog.Logger
}

// DefaultSettings returns settings without hooks and with default separators.
func DefaultSettings[C any]() *Settings[C] {
	return &Settings[C]{
		QueryItemSeparator:    DefaultQueryItemSeparator,
		QueryItemKeySeparator: DefaultQueryItemKeySeparator,
		Allocator:             DefaultAllocator,
		Logger:                log.Noop,
	}
}

func (s *Settings[C]) itemSep() byte {
	if s.QueryItemSeparator == 0 {
		return DefaultQueryItemSeparator
	}
	return s.QueryItemSeparator
}

func (s *Settings[C]) keySep() byte {
	if s.QueryItemKeySeparator == 0 {
		return DefaultQueryItemKeySeparator
	}
	return s.QueryItemKeySeparator
}

func (s *Settings[C]) allocator() Allocator {
	if s.Allocator == nil {
		return DefaultAllocator
	}
	return s.Allocator
}

func (s *Settings[C]) logger() *slog.Logger {
	if s.Logger == nil {
		return log.Noop
	}
	return s.Logger
}
