package naming

import "errors"

var (
	// ErrOutOfCoverage is returned for timestamps before the first era.
	ErrOutOfCoverage = errors.New("timestamp precedes archive coverage")

	// ErrMalformedName is returned when a filename does not embed a timestamp.
	ErrMalformedName = errors.New("malformed archive filename")

	// ErrMissingRoot is returned when a derived name is requested without a directory.
	ErrMissingRoot = errors.New("derived name requires a root directory")
)
