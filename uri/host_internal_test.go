package uri

import (
	"fmt"
	"testing"

	"github.com/ghettovoice/uriparse/internal/grammar"
)

func newTestParser(s string, strict bool) *parser[struct{}] {
	return &parser[struct{}]{
		cur: grammar.NewCursor([]byte(s)),
		st:  &Settings[struct{}]{StrictHost: strict},
	}
}

func TestParser_IPv4Address_Octets(t *testing.T) {
	t.Parallel()

	for n := range 256 {
		s := fmt.Sprintf("%d.%d.%d.%d", n, n, n, n)
		p := newTestParser(s, false)
		if got := p.ipv4Address(); got != Success || !p.cur.Done() {
			t.Errorf("ipv4Address(%q) = %v at %d, want %v at %d", s, got, p.cur.Pos(), Success, len(s))
		}
	}
}

func TestParser_IPv4Address(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		strict  bool
		want    Status
		wantPos int
	}{
		{"256.0.0.1", false, Error, 0},
		{"1.2.3.2555", false, Error, 0},
		{"1.2.3.4.5", false, Error, 0},
		{"1.2.3.4a", false, Error, 0},
		{"1.2.3.4%20", false, Error, 0},
		{"1.2.3", false, Error, 0},
		{"1.2.3.4:80", false, Success, 7},
		{"1.2.3.4/x", false, Success, 7},
		{"01.2.3.4", false, Success, 8},
		{"01.2.3.4", true, Error, 0},
		{"10.0.0.255", true, Success, 10},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s/strict=%v", c.in, c.strict), func(t *testing.T) {
			t.Parallel()

			p := newTestParser(c.in, c.strict)
			got := p.try((*parser[struct{}]).ipv4Address)
			if got != c.want || p.cur.Pos() != c.wantPos {
				t.Errorf("ipv4Address(%q) = %v at %d, want %v at %d", c.in, got, p.cur.Pos(), c.want, c.wantPos)
			}
		})
	}
}

func TestParser_IPLiteral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         string
		wantLoose  Status
		wantStrict Status
	}{
		{"[::1]", Success, Success},
		{"[2001:db8::7]", Success, Success},
		{"[1:2:3:4:5:6:7:8]", Success, Success},
		{"[::ffff:192.0.2.1]", Success, Success},
		{"[fe80::1:2]", Success, Success},
		{"[v1.fe80::a+en1]", Success, Success},
		{"[::]", Error, Success},
		{"[1:2:3]", Success, Error},
		{"[g::1]", Error, Error},
		{"[::1", Error, Error},
		{"::1]", Error, Error},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			for _, strict := range []bool{false, true} {
				want := c.wantLoose
				if strict {
					want = c.wantStrict
				}

				p := newTestParser(c.in, strict)
				got := p.try((*parser[struct{}]).ipLiteral)
				if got != want {
					t.Errorf("ipLiteral(%q), strict=%v = %v, want %v", c.in, strict, got, want)
				}
				if got == Success && !p.cur.Done() {
					t.Errorf("ipLiteral(%q), strict=%v stopped at %d, want %d", c.in, strict, p.cur.Pos(), len(c.in))
				}
				if got == Error && p.cur.Pos() != 0 {
					t.Errorf("ipLiteral(%q), strict=%v left the cursor at %d, want 0", c.in, strict, p.cur.Pos())
				}
			}
		})
	}
}
