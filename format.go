package uri

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/lspkit/uri/internal/grammar"
	"github.com/lspkit/uri/internal/ioutil"
	"github.com/lspkit/uri/internal/util"
)

// RenderOptions customizes URI rendering.
type RenderOptions struct {
	// SkipEncoding keeps the decoded field text mostly verbatim, escaping
	// only the delimiters that would be ambiguous with the URI grammar.
	// The output is meant for human display and need not re-parse to an
	// equal URI.
	SkipEncoding bool
}

// String renders the URI to its canonical encoded form. The round-trip
// Parse(u.String()) yields a URI equal to u.
func (u URI) String() string {
	return u.Render(nil)
}

// Render renders the URI to a string with the given options.
func (u URI) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	u.RenderTo(sb, opts) //nolint:errcheck // strings.Builder never fails
	return sb.String()
}

// RenderTo renders the URI to w and reports the number of bytes written.
func (u URI) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if opts == nil {
		opts = &RenderOptions{}
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.scheme != "" {
		scheme := u.scheme
		if !opts.SkipEncoding {
			scheme = util.LCase(scheme)
		}
		cw.WriteString(scheme) //nolint:errcheck
		cw.WriteByte(':')      //nolint:errcheck
	}
	if u.authority != "" || u.scheme == SchemeFile {
		cw.WriteString("//") //nolint:errcheck
	}
	if u.authority != "" {
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(renderAuthority(w, u.authority, opts))
		})
	}
	if u.path != "" {
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(renderPath(w, u.path, opts))
		})
	}
	if u.query != "" {
		cw.WriteByte('?') //nolint:errcheck
		if opts.SkipEncoding {
			// The query may legitimately carry '?'; only '#' would spill
			// into the fragment.
			cw.WriteString(strings.ReplaceAll(u.query, "#", "%23")) //nolint:errcheck
		} else {
			cw.WriteString(grammar.Escape(u.query, nil)) //nolint:errcheck
		}
	}
	if u.fragment != "" {
		cw.WriteByte('#') //nolint:errcheck
		if opts.SkipEncoding {
			cw.WriteString(u.fragment) //nolint:errcheck
		} else {
			cw.WriteString(grammar.Escape(u.fragment, nil)) //nolint:errcheck
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// renderAuthority writes the authority as userinfo '@' host ':' port.
// Userinfo splits at its last ':' into user and password, the host is
// lower-cased and an all-digit suffix after the host's last ':' passes as
// the port.
func renderAuthority(w io.Writer, authority string, opts *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	rest := authority
	if i := strings.Index(rest, "@"); i != -1 {
		userinfo := rest[:i]
		rest = rest[i+1:]
		if j := strings.LastIndex(userinfo, ":"); j != -1 {
			cw.WriteString(encAuthPart(userinfo[:j], grammar.IsCharUnreserved, opts)) //nolint:errcheck
			cw.WriteByte(':')                                                        //nolint:errcheck
			cw.WriteString(encAuthPart(userinfo[j+1:], grammar.IsAuthorityCharUnreserved, opts)) //nolint:errcheck
		} else {
			cw.WriteString(encAuthPart(userinfo, grammar.IsCharUnreserved, opts)) //nolint:errcheck
		}
		cw.WriteByte('@') //nolint:errcheck
	}

	rest = util.LCase(rest)
	if j := strings.LastIndex(rest, ":"); j != -1 {
		cw.WriteString(encAuthPart(rest[:j], grammar.IsAuthorityCharUnreserved, opts)) //nolint:errcheck
		cw.WriteString(rest[j:])                                                      //nolint:errcheck
	} else {
		cw.WriteString(encAuthPart(rest, grammar.IsAuthorityCharUnreserved, opts)) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

func encAuthPart(s string, isUnreserved func(byte) bool, opts *RenderOptions) string {
	if opts.SkipEncoding {
		return grammar.EscapeMinimal(s)
	}
	return grammar.Escape(s, isUnreserved)
}

// renderPath writes the path, lower-casing an upper-case Windows drive
// letter so that equal drive paths render identically.
func renderPath(w io.Writer, path string, opts *RenderOptions) (int, error) {
	path = lowerDrivePath(path)
	if opts.SkipEncoding {
		path = grammar.EscapeMinimal(path)
	} else {
		path = grammar.Escape(path, grammar.IsPathCharUnreserved)
	}
	return errtrace.Wrap2(io.WriteString(w, path))
}
