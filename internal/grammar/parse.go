package grammar

import (
	"strings"

	"github.com/lspkit/uri/internal/constraints"
)

// Parts holds the candidate substrings produced by [Split]. Authority,
// path, query and fragment are gracefully percent-decoded; the scheme is
// left untouched.
type Parts struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// Split breaks a raw string into its five URI fields, equivalent to the
// generic pattern (scheme:)?(//authority)?path(?query)?(#fragment)?.
// Split is total: it never fails, the empty string yields empty Parts and
// input without a colon is treated entirely as path.
func Split[T constraints.Byteseq](s T) Parts {
	str := string(s)

	var p Parts
	var i int

	// Scheme runs up to the first ':' and cannot contain '/', '?' or '#'.
	j := strings.IndexAny(str, ":/?#")
	if j > 0 && str[j] == ':' {
		p.Scheme = str[:j]
		i = j + 1
	}

	if strings.HasPrefix(str[i:], "//") {
		i += 2
		k := i
		for k < len(str) && str[k] != '/' && str[k] != '?' && str[k] != '#' {
			k++
		}
		p.Authority = Unescape(str[i:k])
		i = k
	}

	k := i
	for k < len(str) && str[k] != '?' && str[k] != '#' {
		k++
	}
	p.Path = Unescape(str[i:k])
	i = k

	if i < len(str) && str[i] == '?' {
		k = i + 1
		for k < len(str) && str[k] != '#' {
			k++
		}
		p.Query = Unescape(str[i+1 : k])
		i = k
	}

	if i < len(str) && str[i] == '#' {
		p.Fragment = Unescape(str[i+1:])
	}
	return p
}
