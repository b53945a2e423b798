package properties

import "errors"

var (
	// ErrMalformedUnicode is returned when a \uXXXX escape has fewer
	// than four hex digits or a digit that is not hex
	ErrMalformedUnicode = errors.New("malformed \\uxxxx encoding")

	// ErrNoSnapshotData is returned when restoring from empty snapshot data
	ErrNoSnapshotData = errors.New("snapshot data required")
)
