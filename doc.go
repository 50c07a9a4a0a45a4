// Package uri implements a canonical, immutable URI value type with
// decoded component storage, selective percent-encoding on output,
// path-segment helpers and bidirectional filesystem path conversion.
//
// A [URI] stores its five components (scheme, authority, path, query,
// fragment) as decoded text. Construction via [New], [Parse], [From] or
// [File] validates the structural invariants once; every value in
// circulation is therefore well-formed and rendering is the only place
// where percent-encoding happens.
//
// Filesystem conversion never inspects the host OS: [File] and
// [URI.FSPath] take an explicit [Platform] so a server can reason about
// client paths regardless of where it runs.
package uri
