package grammar

import (
	"github.com/ghettovoice/abnf"
)

// Core rules (RFC 5234 Appendix B).
var (
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	hexdig = abnf.Alt(
		"HEXDIG",
		digit,
		abnf.Range("%x41-46", []byte{0x41}, []byte{0x46}),
		abnf.Range("%x61-66", []byte{0x61}, []byte{0x66}),
	)
)

func lit(s string) abnf.Operator { return abnf.Literal(`"`+s+`"`, []byte(s)) }

func oneOf(key, chars string) abnf.Operator {
	ops := make([]abnf.Operator, len(chars))
	for i := range len(chars) {
		ops[i] = lit(chars[i : i+1])
	}
	return abnf.Alt(key, ops[0], ops[1:]...)
}

// RFC 3986 Appendix A.
var (
	unreserved = abnf.Alt("unreserved", alpha, digit, oneOf("unreserved-mark", "-._~"))
	subDelims  = oneOf("sub-delims", "!$&'()*+,;=")
	pctEncoded = abnf.Concat("pct-encoded", lit("%"), hexdig, hexdig)
	pchar      = abnf.Alt("pchar", unreserved, pctEncoded, subDelims, lit(":"), lit("@"))

	scheme = abnf.Concat(
		"scheme",
		alpha,
		abnf.Repeat0Inf("scheme-tail", abnf.Alt("scheme-char", alpha, digit, lit("+"), lit("-"), lit("."))),
	)

	userinfo = abnf.Repeat0Inf("userinfo", abnf.Alt("userinfo-char", unreserved, pctEncoded, subDelims, lit(":")))

	decOctet = abnf.Alt(
		"dec-octet",
		digit,
		abnf.Concat("dec-octet-2", abnf.Range("%x31-39", []byte{0x31}, []byte{0x39}), digit),
		abnf.Concat("dec-octet-3", lit("1"), abnf.RepeatN("2DIGIT", 2, digit)),
		abnf.Concat("dec-octet-4", lit("2"), abnf.Range("%x30-34", []byte{0x30}, []byte{0x34}), digit),
		abnf.Concat("dec-octet-5", lit("25"), abnf.Range("%x30-35", []byte{0x30}, []byte{0x35})),
	)
	ipv4Address = abnf.Concat(
		"IPv4address",
		decOctet, lit("."), decOctet, lit("."), decOctet, lit("."), decOctet,
	)

	h16      = abnf.Repeat("h16", 1, 4, hexdig)
	h16Colon = abnf.Concat("h16-colon", h16, lit(":"))
	ls32     = abnf.Alt("ls32", abnf.Concat("ls32-h16", h16, lit(":"), h16), ipv4Address)

	ipv6Address = abnf.Alt(
		"IPv6address",
		abnf.Concat("IPv6address-1", abnf.RepeatN("6h16", 6, h16Colon), ls32),
		abnf.Concat("IPv6address-2", lit("::"), abnf.RepeatN("5h16", 5, h16Colon), ls32),
		abnf.Concat("IPv6address-3", abnf.Optional("opt-h16", h16), lit("::"), abnf.RepeatN("4h16", 4, h16Colon), ls32),
		abnf.Concat("IPv6address-4", ipv6Head(1), lit("::"), abnf.RepeatN("3h16", 3, h16Colon), ls32),
		abnf.Concat("IPv6address-5", ipv6Head(2), lit("::"), abnf.RepeatN("2h16", 2, h16Colon), ls32),
		abnf.Concat("IPv6address-6", ipv6Head(3), lit("::"), h16Colon, ls32),
		abnf.Concat("IPv6address-7", ipv6Head(4), lit("::"), ls32),
		abnf.Concat("IPv6address-8", ipv6Head(5), lit("::"), h16),
		abnf.Concat("IPv6address-9", ipv6Head(6), lit("::")),
	)

	ipvFuture = abnf.Concat(
		"IPvFuture",
		lit("v"),
		abnf.Repeat1Inf("1*HEXDIG", hexdig),
		lit("."),
		abnf.Repeat1Inf("IPvFuture-tail", abnf.Alt("IPvFuture-char", unreserved, subDelims, lit(":"))),
	)
	ipLiteral = abnf.Concat("IP-literal", lit("["), abnf.Alt("IP-literal-body", ipv6Address, ipvFuture), lit("]"))

	regName = abnf.Repeat0Inf("reg-name", abnf.Alt("reg-name-char", unreserved, pctEncoded, subDelims))
	host    = abnf.Alt("host", ipLiteral, ipv4Address, regName)
	port    = abnf.Repeat0Inf("port", digit)

	authority = abnf.Concat(
		"authority",
		abnf.Optional("userinfo-at", abnf.Concat("userinfo-at-seq", userinfo, lit("@"))),
		host,
		abnf.Optional("colon-port", abnf.Concat("colon-port-seq", lit(":"), port)),
	)

	segment   = abnf.Repeat0Inf("segment", pchar)
	segmentNz = abnf.Repeat1Inf("segment-nz", pchar)
	slashSegs = abnf.Repeat0Inf("slash-segments", abnf.Concat("slash-segment", lit("/"), segment))

	pathAbempty  = abnf.Repeat0Inf("path-abempty", abnf.Concat("path-abempty-seq", lit("/"), segment))
	pathAbsolute = abnf.Concat(
		"path-absolute",
		lit("/"),
		abnf.Optional("path-absolute-tail", abnf.Concat("path-absolute-seq", segmentNz, slashSegs)),
	)
	pathRootless = abnf.Concat("path-rootless", segmentNz, slashSegs)

	// the empty match of the optional stands for path-empty
	hierPart = abnf.Optional("hier-part", abnf.Alt(
		"hier-part-alt",
		abnf.Concat("hier-part-authority", lit("//"), authority, pathAbempty),
		pathAbsolute,
		pathRootless,
	))

	queryOrFragment = abnf.Repeat0Inf("query", abnf.Alt("query-char", pchar, lit("/"), lit("?")))

	uri = abnf.Concat(
		"URI",
		scheme,
		lit(":"),
		hierPart,
		abnf.Optional("query-part", abnf.Concat("query-seq", lit("?"), queryOrFragment)),
		abnf.Optional("fragment-part", abnf.Concat("fragment-seq", lit("#"), queryOrFragment)),
	)
)

// ipv6Head builds "[ *n( h16 ":" ) h16 ]".
func ipv6Head(n uint) abnf.Operator {
	return abnf.Optional("opt-h16-seq", abnf.Concat("h16-seq", abnf.Repeat("h16-colons", 0, n, h16Colon), h16))
}
