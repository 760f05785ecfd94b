// Package uri implements a push-style parser for generic URIs as defined by RFC 3986.
//
// # Overview
//
// The parser never builds a tree. It walks the RFC 3986 productions top-down and pushes
// every recognized component to a hook registered in [Settings]: scheme, userinfo, host,
// port, path and its segments, query and its typed items, fragment.
// A hook returns true to continue or false to stop the parse, which then reports [Canceled].
//
// Three entry points cover the grammars a caller may need:
//
//   - [ParseFullURI] parses URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ];
//   - [ParsePath] parses a path that was already isolated from a URI;
//   - [ParseQuery] parses a query body, without the leading "?".
//
// Every entry point accepts a string or a byte slice. The input ends at its length or
// at its first NUL byte, whichever comes first.
//
// # Hooks and spans
//
// Hooks receive the per-call context value and the matched span:
//
//	type counter struct{ segs int }
//
//	st := &uri.Settings[*counter]{
//		PathSegment: func(c *counter, seg []byte) bool {
//			c.segs++
//			return true
//		},
//	}
//	var c counter
//	status := uri.ParseFullURI("http://example.com/a/b/c", st, &c)
//	// status == uri.Success, c.segs == 3
//
// Spans alias the input unless [Settings.Decode] is set. Decoded spans live in buffers
// obtained from [Settings.Allocator] and are released as soon as the hook returns,
// so hooks must copy what they keep.
//
// Components emitted before a failure are not retracted: [Error] does not mean
// that no hook has fired.
//
// # Query items
//
// Query bodies are split on [Settings.QueryItemSeparator] ("&" by default) and each
// token on the first [Settings.QueryItemKeySeparator] ("=" by default).
// Values are classified in a fixed order:
//
//   - no key separator: null item;
//   - base-10 64-bit integer: integer item;
//   - finite floating-point number: real item;
//   - anything else, including an empty value: text item.
//
// # Collecting
//
// [Split], [SplitPath] and [SplitQuery] run the parser with hooks that collect every
// component into [Parts], for callers that prefer a value to callbacks.
package uri

//go:generate go tool errtrace -w .
