package dataset

import "errors"

// Sentinel errors for dataset loading.
var (
	// ErrMissingFile indicates a required TUDataset file was not found.
	ErrMissingFile = errors.New("dataset: required file missing")

	// ErrMalformed indicates a line that does not parse or is inconsistent
	// with the other files.
	ErrMalformed = errors.New("dataset: malformed input")

	// ErrIndexOutOfRange indicates an embedding record for a graph the
	// dataset does not have.
	ErrIndexOutOfRange = errors.New("dataset: graph index out of range")

	// ErrDuplicateIndex indicates two embedding records for one graph.
	ErrDuplicateIndex = errors.New("dataset: duplicate graph index")

	// ErrBadFraction indicates a test fraction outside [0, 1].
	ErrBadFraction = errors.New("dataset: test fraction must be in [0, 1]")
)
