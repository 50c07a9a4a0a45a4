package grammar

import (
	"bytes"

	"github.com/lspkit/uri/internal/constraints"
)

// escapeTable holds the fixed escape sequences for the closed set of
// reserved punctuation (RFC 3986 gen-delims and sub-delims, plus space
// and the percent sign itself).
var escapeTable = map[byte]string{
	':':  "%3A",
	'/':  "%2F",
	'?':  "%3F",
	'#':  "%23",
	'[':  "%5B",
	']':  "%5D",
	'@':  "%40",
	'!':  "%21",
	'$':  "%24",
	'&':  "%26",
	'\'': "%27",
	'(':  "%28",
	')':  "%29",
	'*':  "%2A",
	'+':  "%2B",
	',':  "%2C",
	';':  "%3B",
	'=':  "%3D",
	' ':  "%20",
	'%':  "%25",
}

// IsCharUnreserved checks the unreserved rule of RFC 3986 Section 2.3.
func IsCharUnreserved(c byte) bool {
	return IsAlphanumChar(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// IsPathCharUnreserved reports whether c may stay verbatim inside a path
// segment. The slash acts as the preserved separator.
func IsPathCharUnreserved(c byte) bool {
	return c == '/' || IsCharUnreserved(c)
}

// IsAuthorityCharUnreserved reports whether c may stay verbatim inside an
// authority. Colon and square brackets carry port and IPv6 syntax.
func IsAuthorityCharUnreserved(c byte) bool {
	return c == ':' || c == '[' || c == ']' || IsCharUnreserved(c)
}

// Escape percent-encodes every byte of s that the isUnreserved class does
// not allow. Reserved punctuation uses the fixed table above, every other
// byte (controls and all non-ASCII, which arrive as UTF-8 bytes) gets the
// generic uppercase 2-hex-digit escape. Unlike a round-trip preserving
// escaper, an existing "%XX" in s is re-encoded as "%25XX".
func Escape[T constraints.Byteseq](s T, isUnreserved func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if isUnreserved == nil {
		isUnreserved = IsCharUnreserved
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		default:
			if esc, ok := escapeTable[c]; ok {
				b.WriteString(esc)
			} else {
				b.WriteByte('%')
				b.WriteByte(upperhex[c>>4])
				b.WriteByte(upperhex[c&15])
			}
		}
	}
	return T(b.Bytes())
}

// EscapeMinimal escapes only the two delimiter characters whose presence
// would be ambiguous with the URI grammar, '#' and '?'. It is meant for
// human display, not for round-tripping.
func EscapeMinimal[T constraints.Byteseq](s T) T {
	if !containsAny(s, "#?") {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '#':
			b.WriteString("%23")
		case '?':
			b.WriteString("%3F")
		default:
			b.WriteByte(c)
		}
	}
	return T(b.Bytes())
}

const upperhex = "0123456789ABCDEF"

func containsAny[T constraints.Byteseq](s T, chars string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return true
			}
		}
	}
	return false
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
