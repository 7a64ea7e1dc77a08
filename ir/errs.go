package ir

import "errors"

var (
	// ErrNotSupported reports a reverse (typed value to string) conversion
	// on a shape with no string form, such as a tuple or a sequence of
	// merged duplicate keys.
	ErrNotSupported = errors.New("not supported")
)
