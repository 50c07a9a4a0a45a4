// Package grammar implements the URI grammar primitives: the generic
// five-field split, the selective percent-encoder and the graceful
// percent-decoder shared by the uri package.
package grammar

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool { return '0' <= c && c <= '9' }

// IsAlphanumChar checks the alphanum rule.
func IsAlphanumChar(c byte) bool { return IsAlphaChar(c) || IsDigitChar(c) }

// IsValidScheme reports whether s matches the scheme rule
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsValidScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	if !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case IsAlphanumChar(c), c == '+', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}
