package ged

import (
	"errors"
	"time"

	"github.com/katalvlaran/gedembed/matrix"
)

// Result is the outcome of DistanceMatrix.
type Result struct {
	// Distances is |test|×|train|; cell (i,j) is the approximate GED of
	// test[i] and train[j], NaN for isolated failures.
	Distances *matrix.Dense

	// Errors lists isolated cell failures sorted by (Test, Train).
	Errors []*CellError

	// Elapsed is the wall-clock time of the run.
	Elapsed time.Duration

	// CacheHits counts cells answered by the pair cache.
	CacheHits int
}

// Failed returns the number of isolated cell failures.
func (r *Result) Failed() int { return len(r.Errors) }

// Err joins every isolated cell failure, or returns nil.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}

	return errors.Join(errs...)
}
