package errorutil

// Error is a string type that implements the error interface.
type Error string

func (e Error) Error() string { return string(e) }
