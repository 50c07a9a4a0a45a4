package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/lspkit/uri/internal/constraints"
	"github.com/lspkit/uri/internal/grammar"
)

// Well-known schemes that imply a network-style authority component.
const (
	SchemeFile  = "file"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// URI is an immutable record of five decoded string fields. The zero
// value is the empty URI. URI is comparable and can be used as a map key;
// equality and hashing are structural over the five fields.
type URI struct {
	scheme    string
	authority string
	path      string
	query     string
	fragment  string
}

// New builds a URI from five decoded fields. An empty scheme is coerced
// to "file", the path of an authority-implying scheme is coerced to be
// absolute, and the result is validated.
func New(scheme, authority, path, query, fragment string) (URI, error) {
	return errtrace.Wrap2(newURI(scheme, authority, path, query, fragment, false))
}

// Parse builds a URI from a raw string s (string or []byte). Parsing is
// total; the error reports invariant violations only. An absent scheme is
// coerced to "file", see [ParseStrict] for the strict variant.
func Parse[T constraints.Byteseq](s T) (URI, error) {
	p := grammar.Split(s)
	return errtrace.Wrap2(newURI(p.Scheme, p.Authority, p.Path, p.Query, p.Fragment, false))
}

// ParseStrict is like [Parse] but keeps an absent scheme empty and fails
// with [ErrMissingScheme].
func ParseStrict[T constraints.Byteseq](s T) (URI, error) {
	p := grammar.Split(s)
	return errtrace.Wrap2(newURI(p.Scheme, p.Authority, p.Path, p.Query, p.Fragment, true))
}

// From builds a URI from already-known decoded parts, with the same
// coercion and validation as [New].
func From(c Components) (URI, error) {
	return errtrace.Wrap2(newURI(c.Scheme, c.Authority, c.Path, c.Query, c.Fragment, false))
}

func newURI(scheme, authority, path, query, fragment string, strict bool) (URI, error) {
	if scheme == "" && !strict {
		scheme = SchemeFile
	}
	u := URI{
		scheme:    scheme,
		authority: authority,
		path:      referenceResolution(scheme, path),
		query:     query,
		fragment:  fragment,
	}
	if err := validate(u, strict); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	return u, nil
}

// schemeImpliesAuthority reports whether the scheme unconditionally
// implies a network-style authority component.
func schemeImpliesAuthority(scheme string) bool {
	switch scheme {
	case SchemeHTTP, SchemeHTTPS, SchemeFile:
		return true
	}
	return false
}

// referenceResolution coerces the path of an authority-implying scheme:
// an empty path becomes "/", a relative path gets a leading slash.
func referenceResolution(scheme, path string) string {
	if !schemeImpliesAuthority(scheme) {
		return path
	}
	switch {
	case path == "":
		return "/"
	case !strings.HasPrefix(path, "/"):
		return "/" + path
	}
	return path
}

// validate checks the scheme charset and the authority/path structural
// invariants of a candidate record.
func validate(u URI, strict bool) error {
	if u.scheme == "" && strict {
		return newValidationErr(ErrMissingScheme, u)
	}
	if u.scheme != "" && !grammar.IsValidScheme(u.scheme) {
		return newValidationErr(ErrIllegalScheme, u)
	}
	if u.path != "" {
		if u.authority != "" && !strings.HasPrefix(u.path, "/") {
			return newValidationErr(ErrInvalidAuthorityPath, u)
		}
		if u.authority == "" && strings.HasPrefix(u.path, "//") {
			return newValidationErr(ErrInvalidPathWithoutAuthority, u)
		}
	}
	return nil
}

// Scheme returns the URI scheme, e.g. "file" for "file:///tmp/a.txt".
func (u URI) Scheme() string { return u.scheme }

// Authority returns the decoded authority, e.g. "www.example.com:8080".
func (u URI) Authority() string { return u.authority }

// Path returns the decoded path, e.g. "/tmp/a.txt".
func (u URI) Path() string { return u.path }

// Query returns the decoded query without the leading '?'.
func (u URI) Query() string { return u.query }

// Fragment returns the decoded fragment without the leading '#'.
func (u URI) Fragment() string { return u.fragment }

// Components returns a snapshot of the five fields.
func (u URI) Components() Components {
	return Components{
		Scheme:    u.scheme,
		Authority: u.authority,
		Path:      u.path,
		Query:     u.query,
		Fragment:  u.fragment,
	}
}

// IsZero reports whether u is the zero URI.
func (u URI) IsZero() bool { return u == URI{} }

// With derives a new URI by overriding the fields set in change and
// revalidating. When every resolved field equals the receiver's, the
// receiver is returned unchanged without revalidation.
func (u URI) With(change Change) (URI, error) {
	scheme, authority, path, query, fragment := u.scheme, u.authority, u.path, u.query, u.fragment
	if change.Scheme != nil {
		scheme = *change.Scheme
	}
	if change.Authority != nil {
		authority = *change.Authority
	}
	if change.Path != nil {
		path = *change.Path
	}
	if change.Query != nil {
		query = *change.Query
	}
	if change.Fragment != nil {
		fragment = *change.Fragment
	}

	if scheme == u.scheme && authority == u.authority && path == u.path &&
		query == u.query && fragment == u.fragment {
		return u, nil
	}
	return errtrace.Wrap2(New(scheme, authority, path, query, fragment))
}

// Equal compares this URI with another for structural equality.
func (u URI) Equal(val any) bool {
	switch v := val.(type) {
	case URI:
		return u == v
	case *URI:
		return v != nil && u == *v
	default:
		return false
	}
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URI(u))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
