package uri

import (
	"fmt"

	"github.com/lspkit/uri/internal/errorutil"
)

// Error is a sentinel validation error kind.
type Error = errorutil.Error

const (
	// ErrMissingScheme is returned by strict construction when the scheme
	// is required but absent.
	ErrMissingScheme Error = "scheme is missing"
	// ErrIllegalScheme is returned when the scheme contains characters
	// outside letter (letter|digit|'+'|'-'|'.')*.
	ErrIllegalScheme Error = "scheme contains illegal characters"
	// ErrInvalidAuthorityPath is returned when an authority is present but
	// the path is neither empty nor absolute.
	ErrInvalidAuthorityPath Error = "path must be empty or begin with a slash when an authority is present"
	// ErrInvalidPathWithoutAuthority is returned when no authority is
	// present but the path begins with two slashes.
	ErrInvalidPathWithoutAuthority Error = "path cannot begin with two slashes when no authority is present"
)

// ValidationError reports a candidate record that violates the URI
// invariants. It carries the full candidate field values for diagnostics
// and unwraps to one of the sentinel [Error] kinds.
type ValidationError struct {
	Kind      Error
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s {scheme: %q, authority: %q, path: %q, query: %q, fragment: %q}",
		string(e.Kind), e.Scheme, e.Authority, e.Path, e.Query, e.Fragment)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func newValidationErr(kind Error, u URI) error {
	return &ValidationError{ //errtrace:skip
		Kind:      kind,
		Scheme:    u.scheme,
		Authority: u.authority,
		Path:      u.path,
		Query:     u.query,
		Fragment:  u.fragment,
	}
}
