package uri

import "github.com/ghettovoice/uriparse/internal/grammar"

// IsURI reports whether s is a URI according to the exact RFC 3986 grammar.
func IsURI[T ~string | ~[]byte](s T) bool { return grammar.IsURI(s) }

// IsIPv4Address reports whether s is an RFC 3986 IPv4address.
// Octets with leading zeros are rejected.
func IsIPv4Address[T ~string | ~[]byte](s T) bool { return grammar.IsIPv4Address(s) }

// IsIPv6Address reports whether s is an RFC 3986 IPv6address, without brackets.
func IsIPv6Address[T ~string | ~[]byte](s T) bool { return grammar.IsIPv6Address(s) }
