package uri

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/lspkit/uri/internal/grammar"
)

// Platform selects the filesystem path conventions used by [File] and
// [URI.FSPath]. It is always an explicit parameter so the conversion
// stays deterministic regardless of the host OS.
type Platform int

const (
	// POSIX uses forward slashes and no drive letters.
	POSIX Platform = iota
	// Windows uses backslashes, drive letters and UNC shares.
	Windows
)

func (p Platform) String() string {
	switch p {
	case POSIX:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "platform(" + strconv.Itoa(int(p)) + ")"
	}
}

// File builds a file-scheme URI from a filesystem path. On [Windows] the
// backslash separators are normalized to slashes first. A "//host/share"
// prefix moves the host into the authority, and a leading drive letter
// gets the canonical "/c:" spelling with the letter lower-cased.
func File(path string, platform Platform) (URI, error) {
	if platform == Windows {
		path = strings.ReplaceAll(path, "\\", "/")
	}

	var authority string
	if strings.HasPrefix(path, "//") {
		// UNC shares arrive as //host/share even in POSIX rendering of a
		// Windows path, so the split is not platform-gated.
		if i := strings.Index(path[2:], "/"); i == -1 {
			authority = path[2:]
			path = "/"
		} else {
			authority = path[2 : i+2]
			path = path[i+2:]
			if path == "" {
				path = "/"
			}
		}
	}

	if len(path) >= 2 && path[1] == ':' && grammar.IsAlphaChar(path[0]) {
		path = "/" + lowerDrivePath(path)
	}

	return errtrace.Wrap2(New(SchemeFile, authority, path, "", ""))
}

// FSPath converts the URI back to a filesystem path under the given
// platform conventions. The scheme is ignored except that only file URIs
// re-expand an authority to a UNC prefix. Escapes still held literally in
// the path (a [File] input is stored verbatim) are graceful-decoded. The
// result is not normalized; see [NormalizePath].
func (u URI) FSPath(platform Platform) string {
	var value string
	switch {
	case u.authority != "" && len(u.path) > 1 && u.scheme == SchemeFile:
		value = "//" + u.authority + u.path
	case platform == Windows && isDrivePath(u.path):
		value = lowerDrivePath(u.path)[1:]
	default:
		value = u.path
	}
	value = grammar.Unescape(value)
	if platform == Windows {
		value = strings.ReplaceAll(value, "/", "\\")
	}
	return value
}

// isDrivePath reports whether path has the canonical "/c:" drive prefix.
func isDrivePath(path string) bool {
	return len(path) >= 3 && path[0] == '/' && grammar.IsAlphaChar(path[1]) && path[2] == ':'
}

// lowerDrivePath folds an upper-case drive letter in either the "/C:" or
// the bare "C:" spelling; any other path is returned unchanged.
func lowerDrivePath(path string) string {
	switch {
	case isDrivePath(path) && path[1] <= 'Z' && path[1] >= 'A':
		return "/" + string(path[1]+32) + path[2:]
	case len(path) >= 2 && path[1] == ':' && path[0] >= 'A' && path[0] <= 'Z':
		return string(path[0]+32) + path[1:]
	}
	return path
}
