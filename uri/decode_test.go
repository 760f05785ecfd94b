package uri_test

import (
	"bytes"
	"testing"

	"github.com/ghettovoice/uriparse/uri"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src         string
		plusAsSpace bool
		size        int
		want        string
		wantStatus  uri.Status
	}{
		{"liz+taylor/is%20f%23%26ing%20very/rich", true, 64, "liz taylor/is f#&ing very/rich", uri.Success},
		{"liz+taylor/is%20f%23%26ing%20very/rich", false, 64, "liz+taylor/is f#&ing very/rich", uri.Success},
		{"%41%4a%4A", false, 3, "AJJ", uri.Success},
		{"100%", false, 8, "100%", uri.Success},
		{"%4", false, 8, "%4", uri.Success},
		{"%zz%2", false, 8, "%zz%2", uri.Success},
		{"a\x00b", false, 8, "a", uri.Success},
		{"", false, 0, "", uri.Success},
		{"A", false, 1, "A", uri.Success},
		{"%41", false, 1, "A", uri.Success},
		{"abc", false, 2, "ab", uri.Error},
		{"%41%42", false, 1, "A", uri.Error},
	}

	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			t.Parallel()

			dst := make([]byte, c.size)
			n, st := uri.Decode(dst, []byte(c.src), c.plusAsSpace)
			if got := string(dst[:n]); got != c.want || st != c.wantStatus {
				t.Errorf("uri.Decode(dst[%d], %q, %v) = (%q, %v), want (%q, %v)",
					c.size, c.src, c.plusAsSpace, got, st, c.want, c.wantStatus)
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	// canonical encodings: every byte but unreserved ones is escaped with upper-case hex
	encoded := []string{
		"",
		"abc-._~XYZ019",
		"a%20b%2Fc",
		"%C3%A9t%C3%A9",
		"%00%01%FF",
		"%25%2B%3D%26",
	}
	for _, s := range encoded {
		dst := make([]byte, len(s))
		n, st := uri.Decode(dst, []byte(s), false)
		if st != uri.Success {
			t.Errorf("uri.Decode(%q) status = %v, want %v", s, st, uri.Success)
			continue
		}
		if got := uri.Escape(dst[:n], nil); string(got) != s {
			t.Errorf("uri.Escape(uri.Decode(%q)) = %q, want %q", s, got, s)
		}
	}

	raw := [][]byte{
		[]byte("hello world"),
		[]byte("100% + 50%"),
		[]byte{0xff, 0xfe, '/', '?', '#'},
	}
	for _, b := range raw {
		enc := uri.Escape(b, nil)
		dst := make([]byte, len(enc))
		n, st := uri.Decode(dst, enc, false)
		if st != uri.Success || !bytes.Equal(dst[:n], b) {
			t.Errorf("uri.Decode(uri.Escape(%q)) = (%q, %v), want (%q, %v)", b, dst[:n], st, b, uri.Success)
		}
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in          string
		plusAsSpace bool
		want        string
	}{
		{"don%27t+you+think", true, "don't you think"},
		{"don%27t+you+think", false, "don't+you+think"},
		{"c%3A%5CProgram%20Files", false, `c:\Program Files`},
		{"%", false, "%"},
	}

	for _, c := range cases {
		if got := uri.Unescape(c.in, c.plusAsSpace); got != c.want {
			t.Errorf("uri.Unescape(%q, %v) = %q, want %q", c.in, c.plusAsSpace, got, c.want)
		}
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in           string
		shouldEscape func(byte) bool
		want         string
	}{
		{"a b/c", nil, "a%20b%2Fc"},
		{"a b/c", func(c byte) bool { return c == ' ' }, "a%20b/c"},
		{"100%", nil, "100%25"},
		{"", nil, ""},
	}

	for _, c := range cases {
		if got := uri.Escape(c.in, c.shouldEscape); got != c.want {
			t.Errorf("uri.Escape(%q, fn) = %q, want %q", c.in, got, c.want)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	src := []byte("http://some%20random%20dude@paren(thesis).org/brac%5Bkets%5D%3Alove%7Bthe%7Cpipe%7D")
	dst := make([]byte, len(src))
	for b.Loop() {
		uri.Decode(dst, src, false)
	}
}

