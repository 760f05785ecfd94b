package uri

import (
	"bytes"
	"math"
	"strconv"
)

// ValueKind is the class of a query item value.
type ValueKind uint8

const (
	// NullValue is the value of an item without a key separator.
	NullValue ValueKind = iota
	// IntValue is a base-10 64-bit integer.
	IntValue
	// RealValue is a finite floating-point number.
	RealValue
	// TextValue is any other value, including the empty one.
	TextValue
)

func (k ValueKind) String() string {
	switch k {
	case NullValue:
		return "null"
	case IntValue:
		return "int"
	case RealValue:
		return "real"
	case TextValue:
		return "text"
	default:
		return "unknown"
	}
}

// classify returns the class of the item value v.
// Integers are tried before reals, so "5" is an integer and "5.0" a real.
func classify(v []byte) (ValueKind, int64, float64) {
	if len(v) == 0 {
		return TextValue, 0, 0
	}
	if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
		return IntValue, i, 0
	}
	if f, err := strconv.ParseFloat(string(v), 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return RealValue, 0, f
	}
	return TextValue, 0, 0
}

// queryItems splits the raw query q into items.
// An empty query has no items, otherwise every token is an item, even an empty one.
func (p *parser[C]) queryItems(q []byte) Status {
	if len(q) == 0 {
		return Success
	}

	sep := p.st.itemSep()
	for {
		tok := q
		i := bytes.IndexByte(q, sep)
		if i >= 0 {
			tok, q = q[:i], q[i+1:]
		}
		if s := p.queryItem(tok); s != Success || i < 0 {
			return s
		}
	}
}

func (p *parser[C]) queryItem(tok []byte) Status {
	key, val := tok, []byte(nil)
	i := bytes.IndexByte(tok, p.st.keySep())
	if i >= 0 {
		key, val = tok[:i], tok[i+1:]
	}

	if p.st.Decode {
		k := p.decode(key)
		defer k.free()
		key = k.b

		if i >= 0 {
			v := p.decode(val)
			defer v.free()
			val = v.b
		}
	}

	if i < 0 {
		if p.st.QueryNullItem == nil {
			return Success
		}
		return proceed(p.st.QueryNullItem(p.ctx, key))
	}

	switch kind, iv, fv := classify(val); kind {
	case IntValue:
		if p.st.QueryIntItem != nil {
			return proceed(p.st.QueryIntItem(p.ctx, key, iv))
		}
	case RealValue:
		if p.st.QueryRealItem != nil {
			return proceed(p.st.QueryRealItem(p.ctx, key, fv))
		}
	default:
		if p.st.QueryTextItem != nil {
			return proceed(p.st.QueryTextItem(p.ctx, key, val))
		}
	}
	return Success
}
