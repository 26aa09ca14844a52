package sequence

import "errors"

// Errors reported by the package. Callers should match them with errors.Is.
var (
	// ErrInvalidRange is returned by NewRange when the requested half-open
	// range is malformed or falls outside the source slice.
	ErrInvalidRange = errors.New("invalid range")

	// ErrIndexOutOfRange is returned by element access with an index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStartOutOfRange is returned by Slice when the start offset is
	// negative or beyond Len().
	ErrStartOutOfRange = errors.New("start out of range")

	// ErrNilSource is returned by NewTerminated when the source slice
	// is nil.
	ErrNilSource = errors.New("nil source")
)
