package ged

import (
	"errors"
	"fmt"
)

// Sentinel errors for orchestration.
var (
	// ErrEmbeddingOrder indicates an entry whose embedding length differs
	// from its graph order.
	ErrEmbeddingOrder = errors.New("ged: embedding length does not match graph order")

	// ErrNilGraph indicates an entry without a graph.
	ErrNilGraph = errors.New("ged: entry has no graph")

	// ErrUnknownPolicy indicates a FailurePolicy outside the declared constants.
	ErrUnknownPolicy = errors.New("ged: unknown failure policy")
)

// Stage names the pipeline step a cell failed in.
type Stage int

const (
	// StageValidate covers entry checks before any computation.
	StageValidate Stage = iota

	// StageDistance covers embedding.Distances.
	StageDistance

	// StageAssignment covers assignment.Solve.
	StageAssignment

	// StageCost covers editcost.ComputeWith.
	StageCost
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageValidate:
		return "validate"
	case StageDistance:
		return "distance"
	case StageAssignment:
		return "assignment"
	case StageCost:
		return "cost"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// CellError reports a failed (test, train) pair.
//
// In DistanceMatrix, Test and Train are the row and column of the cell.
// In Pair, they are the IDs of the two entries.
type CellError struct {
	Test  int
	Train int
	Stage Stage
	Err   error
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("ged: cell (%d,%d) %s: %v", e.Test, e.Train, e.Stage, e.Err)
}

// Unwrap exposes the stage error to errors.Is / errors.As.
func (e *CellError) Unwrap() error { return e.Err }
