package uri

// Components is a plain structural aggregate of the five URI fields, used
// as a constructor input distinct from the validated [URI] value. All
// fields hold decoded text.
type Components struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// Change is a set of optional per-field overrides for [URI.With]. A nil
// field inherits the receiver's current value; use [Set] to override,
// including overriding to the empty string.
type Change struct {
	Scheme    *string
	Authority *string
	Path      *string
	Query     *string
	Fragment  *string
}

// Set returns a pointer to s for use in [Change] literals.
func Set(s string) *string { return &s }
