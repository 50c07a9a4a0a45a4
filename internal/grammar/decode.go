package grammar

import (
	"strings"
	"unicode/utf8"

	"github.com/lspkit/uri/internal/constraints"
	"github.com/lspkit/uri/internal/util"
)

// Unescape gracefully percent-decodes s. Contiguous runs of "%XX" escapes
// are decoded as UTF-8 byte sequences; when a run does not form valid
// UTF-8 the first escape triplet is emitted literally and decoding retries
// on the remainder, so Unescape never fails for any input. A string with
// no "%XX" pattern is returned unchanged after a single scan.
func Unescape[T constraints.Byteseq](s T) T {
	str := string(s)

	i := nextEscapeRun(str, 0)
	if i == -1 {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	last := 0
	for i != -1 {
		j := i
		for isEscapeTriplet(str[j:]) {
			j += 3
		}
		sb.WriteString(str[last:i])
		decodeRun(sb, str[i:j])
		last = j
		i = nextEscapeRun(str, j)
	}
	sb.WriteString(str[last:])
	return T(sb.String())
}

// isEscapeTriplet matches the "%XX" pattern used by run detection. The
// class is alphanumeric, not strictly hex: an escape like "%zz" still
// belongs to the run and simply survives decoding verbatim.
func isEscapeTriplet(s string) bool {
	return len(s) >= 3 && s[0] == '%' && IsAlphanumChar(s[1]) && IsAlphanumChar(s[2])
}

func nextEscapeRun(s string, from int) int {
	for i := from; i+2 < len(s); i++ {
		if isEscapeTriplet(s[i:]) {
			return i
		}
	}
	return -1
}

// decodeRun decodes one contiguous escape run, trimming invalid UTF-8
// prefixes triplet by triplet. Iterative on purpose: adversarial input
// with many short invalid runs must not grow the stack.
func decodeRun(sb *strings.Builder, run string) {
	for len(run) > 0 {
		buf := decodeTriplets(run)
		if utf8.Valid(buf) {
			sb.Write(buf)
			return
		}
		sb.WriteString(run[:3])
		run = run[3:]
	}
}

// decodeTriplets converts each valid-hex "%XX" of run to its byte; escapes
// with non-hex digits stay literal.
func decodeTriplets(run string) []byte {
	buf := make([]byte, 0, len(run)/3)
	for i := 0; i+2 < len(run); i += 3 {
		if ishex(run[i+1]) && ishex(run[i+2]) {
			buf = append(buf, unhex(run[i+1])<<4|unhex(run[i+2]))
		} else {
			buf = append(buf, run[i], run[i+1], run[i+2])
		}
	}
	return buf
}
