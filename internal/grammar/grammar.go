// Package grammar provides the lexical layer of the RFC 3986 URI grammar:
// a bounds-checked cursor, single-step character matchers,
// percent-encoding helpers and the exact ABNF rules used for strict validation.
package grammar

import (
	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrMalformedInput Error = "malformed input"

// IsURI reports whether s matches the RFC 3986 URI rule exactly.
func IsURI[T Byteseq](s T) bool { return matchAll(uri, s) }

// IsIPv6Address reports whether s matches the RFC 3986 IPv6address rule exactly.
func IsIPv6Address[T Byteseq](s T) bool { return matchAll(ipv6Address, s) }

// IsIPvFuture reports whether s matches the RFC 3986 IPvFuture rule.
func IsIPvFuture[T Byteseq](s T) bool { return matchAll(ipvFuture, s) }

// IsIPv4Address reports whether s matches the RFC 3986 IPv4address rule exactly.
// Unlike the relaxed dotted-quad matcher of the parser, octets with leading zeros are rejected.
func IsIPv4Address[T Byteseq](s T) bool { return matchAll(ipv4Address, s) }

func matchAll[T Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
