package uri

import (
	"strings"

	"braces.dev/errtrace"
)

// NormalizePath collapses "." segments, resolves ".." segments against
// their parents and squeezes duplicate slashes. Absoluteness and a single
// trailing slash are preserved; on an absolute path excess ".." segments
// are dropped, on a relative one they are kept. An emptied relative path
// normalizes to ".".
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}

	abs := strings.HasPrefix(path, "/")
	trailing := strings.HasSuffix(path, "/")

	var out []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			switch {
			case len(out) > 0 && out[len(out)-1] != "..":
				out = out[:len(out)-1]
			case !abs:
				out = append(out, "..")
			}
		default:
			out = append(out, seg)
		}
	}

	res := strings.Join(out, "/")
	if abs {
		res = "/" + res
	} else if res == "" {
		res = "."
	}
	if trailing && !strings.HasSuffix(res, "/") {
		res += "/"
	}
	return res
}

// JoinPath appends path fragments to the URI path and normalizes the
// result. Unlike [ResolvePath], an absolute fragment does not restart the
// path and ".." segments above the root are simply dropped.
func JoinPath(u URI, paths ...string) (URI, error) {
	res := u.path
	for _, p := range paths {
		if strings.HasSuffix(res, "/") {
			res += p
		} else {
			res += "/" + p
		}
	}
	res = NormalizePath(res)
	return errtrace.Wrap2(u.With(Change{Path: Set(res)}))
}

// ResolvePath resolves path fragments against the URI path the way a
// shell resolves cd arguments: an absolute fragment replaces everything
// accumulated so far, a relative one appends. The result is normalized
// and absolute whenever the URI has an authority.
func ResolvePath(u URI, paths ...string) (URI, error) {
	var stack []string
	merge := func(p string) {
		for _, seg := range strings.Split(p, "/") {
			switch seg {
			case "", ".":
			case "..":
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			default:
				stack = append(stack, seg)
			}
		}
	}

	merge(u.path)
	for _, p := range paths {
		if strings.HasPrefix(p, "/") {
			stack = stack[:0]
		}
		merge(p)
	}

	res := "/" + strings.Join(stack, "/")
	if !strings.HasPrefix(u.path, "/") && u.authority == "" && strings.HasPrefix(res, "/") {
		res = res[1:]
	}
	return errtrace.Wrap2(u.With(Change{Path: Set(res)}))
}

// Dirname returns the URI with its path shortened to the parent
// directory. One trailing slash is stripped before the last segment is
// cut; an empty or root path is returned unchanged.
func Dirname(u URI) (URI, error) {
	p := u.path
	if p == "" || p == "/" {
		return u, nil
	}
	p = strings.TrimSuffix(p, "/")

	switch i := strings.LastIndex(p, "/"); {
	case i > 0:
		p = p[:i]
	case i == 0:
		p = "/"
	default:
		p = ""
	}
	return errtrace.Wrap2(u.With(Change{Path: Set(p)}))
}

// Basename returns the last path segment, ignoring one trailing slash.
// The root path and the empty path yield "".
func Basename(u URI) string {
	p := u.path
	if p == "" {
		return ""
	}
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	if i := strings.LastIndex(p, "/"); i != -1 {
		return p[i+1:]
	}
	return p
}

// Extname returns the extension of the basename including the leading
// dot, or "" when the basename has no dot or only a leading one.
func Extname(u URI) string {
	base := Basename(u)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[i:]
	}
	return ""
}
