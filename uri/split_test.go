package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/uriparse/uri"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		opts    *uri.SplitOptions
		want    *uri.Parts
		wantErr error
	}{
		{
			"foo://bar@example.com:8042/over/there?name=ferret#nose",
			nil,
			&uri.Parts{
				Scheme:       "foo",
				HasAuthority: true,
				HasUserinfo:  true,
				Userinfo:     "bar",
				Host:         "example.com",
				HasPort:      true,
				Port:         "8042",
				Path:         "/over/there",
				Segments:     []string{"over", "there"},
				HasQuery:     true,
				Query:        "name=ferret",
				Items:        []uri.QueryItem{{Key: "name", Value: uri.Value{Kind: uri.TextValue, Text: "ferret"}}},
				HasFragment:  true,
				Fragment:     "nose",
			},
			nil,
		},
		{
			"mailto:John.Doe@example.com",
			nil,
			&uri.Parts{
				Scheme:   "mailto",
				Path:     "John.Doe@example.com",
				Segments: []string{"John.Doe@example.com"},
			},
			nil,
		},
		{
			"http://some%20random%20dude@host/a%5Bb%5D?k=%2Ev#frag",
			&uri.SplitOptions{Decode: true},
			&uri.Parts{
				Scheme:       "http",
				HasAuthority: true,
				HasUserinfo:  true,
				Userinfo:     "some random dude",
				Host:         "host",
				Path:         "/a[b]",
				Segments:     []string{"a[b]"},
				HasQuery:     true,
				Query:        "k=.v",
				Items:        []uri.QueryItem{{Key: "k", Value: uri.Value{Kind: uri.TextValue, Text: ".v"}}},
				HasFragment:  true,
				Fragment:     "frag",
			},
			nil,
		},
		{
			"ldap://[2001:db8::7]/c=GB?objectClass?one",
			&uri.SplitOptions{QueryItemSeparator: '?'},
			&uri.Parts{
				Scheme:       "ldap",
				HasAuthority: true,
				Host:         "[2001:db8::7]",
				Path:         "/c=GB",
				Segments:     []string{"c=GB"},
				HasQuery:     true,
				Query:        "objectClass?one",
				Items: []uri.QueryItem{
					{Key: "objectClass", Value: uri.Value{Kind: uri.NullValue}},
					{Key: "one", Value: uri.Value{Kind: uri.NullValue}},
				},
			},
			nil,
		},
		{"3ftp://hello.org", nil, nil, uri.ErrMalformedInput},
		{"http://[1:2:3]/", &uri.SplitOptions{StrictHost: true}, nil, uri.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Split(c.in, c.opts)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.Split(%q, opts) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.Split(%q, opts) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestSplit_ErrorOffset(t *testing.T) {
	t.Parallel()

	_, err := uri.Split("http://host/a b", nil)
	if want := "malformed input: uri stopped at offset 13"; err == nil || err.Error() != want {
		t.Errorf("uri.Split(s, nil) error = %v, want %q", err, want)
	}
}

func TestParts_String_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"foo://bar@example.com:8042/over/there?name=ferret#nose",
		"mailto:John.Doe@example.com",
		"urn:oasis:names:specification:docbook:dtd:xml:4.1.2",
		"ldap://[2001:db8::7]/c=GB?objectClass?one",
		"telnet://192.0.2.16:80/",
		"file:///foo.xml",
		"foo:",
		"a:/",
		"a:b/c//d",
		"http://host:",
		"http://h?",
		"http://h#",
		"s://@h",
		"s://h/a%20b?x=%41#y",
		"http://user:pass@[v1.x]:8080/a/b;c?d=e&f#g",
		"news:comp.infosystems.www.servers.unix",
		"tel:+1-816-555-1212",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			parts, err := uri.Split(in, nil)
			if err != nil {
				t.Fatalf("uri.Split(%q, nil) error = %v, want nil", in, err)
			}
			if got := parts.String(); got != in {
				t.Errorf("uri.Split(%q, nil).String() = %q, want %q", in, got, in)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	got, err := uri.SplitPath("/foo//bar/baz", nil)
	if err != nil {
		t.Fatalf("uri.SplitPath(s, nil) error = %v, want nil", err)
	}
	want := &uri.Parts{Path: "/foo//bar/baz", Segments: []string{"foo", "bar", "baz"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("uri.SplitPath(s, nil) = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}
	if s := got.String(); s != "/foo//bar/baz" {
		t.Errorf("uri.SplitPath(s, nil).String() = %q, want %q", s, "/foo//bar/baz")
	}

	if _, err := uri.SplitPath("/a?b", nil); !cmp.Equal(err, error(uri.ErrMalformedInput), cmpopts.EquateErrors()) {
		t.Errorf("uri.SplitPath(\"/a?b\", nil) error = %v, want %v", err, uri.ErrMalformedInput)
	}
}

func TestSplitQuery(t *testing.T) {
	t.Parallel()

	got, err := uri.SplitQuery("a&b=5&c=5.0&d=x&e=&f%20g=%31", &uri.SplitOptions{Decode: true})
	if err != nil {
		t.Fatalf("uri.SplitQuery(s, opts) error = %v, want nil", err)
	}
	want := &uri.Parts{
		HasQuery: true,
		Query:    "a&b=5&c=5.0&d=x&e=&f g=1",
		Items: []uri.QueryItem{
			{Key: "a", Value: uri.Value{Kind: uri.NullValue}},
			{Key: "b", Value: uri.Value{Kind: uri.IntValue, Int: 5}},
			{Key: "c", Value: uri.Value{Kind: uri.RealValue, Real: 5}},
			{Key: "d", Value: uri.Value{Kind: uri.TextValue, Text: "x"}},
			{Key: "e", Value: uri.Value{Kind: uri.TextValue}},
			{Key: "f g", Value: uri.Value{Kind: uri.IntValue, Int: 1}},
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("uri.SplitQuery(s, opts) = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestValueKind_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind uri.ValueKind
		want string
	}{
		{uri.NullValue, "null"},
		{uri.IntValue, "int"},
		{uri.RealValue, "real"},
		{uri.TextValue, "text"},
		{uri.ValueKind(9), "unknown"},
	}

	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("ValueKind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}
