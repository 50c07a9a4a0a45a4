package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lspkit/uri/internal/grammar"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want grammar.Parts
	}{
		{"empty", "", grammar.Parts{}},
		{"scheme only", "inmemory:", grammar.Parts{Scheme: "inmemory"}},
		{"no colon is all path", "some/pa th", grammar.Parts{Path: "some/pa th"}},
		{"colon after slash is path", "a/b:c", grammar.Parts{Path: "a/b:c"}},
		{"leading colon has no scheme", ":abc", grammar.Parts{Path: ":abc"}},
		{
			"full form",
			"http://user@host:8080/p/a?q=1#frag",
			grammar.Parts{Scheme: "http", Authority: "user@host:8080", Path: "/p/a", Query: "q=1", Fragment: "frag"},
		},
		{
			"no authority",
			"http:/api/files/test.me?t=1234",
			grammar.Parts{Scheme: "http", Path: "/api/files/test.me", Query: "t=1234"},
		},
		{
			"authority without path",
			"foo://host?q#f",
			grammar.Parts{Scheme: "foo", Authority: "host", Query: "q", Fragment: "f"},
		},
		{
			"fragment only after scheme",
			"file:#d",
			grammar.Parts{Scheme: "file", Fragment: "d"},
		},
		{
			"escapes decoded outside scheme",
			"file://sh%c3%a4res/c%23/p.cs?q%3D1#f%20g",
			grammar.Parts{Scheme: "file", Authority: "shäres", Path: "/c#/p.cs", Query: "q=1", Fragment: "f g"},
		},
		{
			"scheme left untouched",
			"file%20:x",
			grammar.Parts{Scheme: "file%20", Path: "x"},
		},
		{
			"empty authority keeps extra slashes in path",
			"file:////shares/files/p.cs",
			grammar.Parts{Scheme: "file", Path: "//shares/files/p.cs"},
		},
		{
			"query may contain colons and slashes",
			"s://h/p?a/b:c?d#f",
			grammar.Parts{Scheme: "s", Authority: "h", Path: "/p", Query: "a/b:c?d", Fragment: "f"},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(grammar.Split(c.str), c.want); diff != "" {
				t.Errorf("grammar.Split(%q) mismatch (-got +want):\n%v", c.str, diff)
			}
		})
	}
}

func TestIsValidScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"http", true},
		{"f3ile", true},
		{"foo+bar", true},
		{"foo-bar", true},
		{"foo.bar", true},
		{"3com", false},
		{"fai:l", false},
		{"fäil", false},
		{"+foo", false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsValidScheme(c.str); got != c.want {
				t.Errorf("grammar.IsValidScheme(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}
