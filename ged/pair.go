package ged

import (
	"context"

	"github.com/katalvlaran/gedembed/assignment"
	"github.com/katalvlaran/gedembed/editcost"
	"github.com/katalvlaran/gedembed/embedding"
	"github.com/katalvlaran/gedembed/matrix"
)

// PairResult is the full outcome of one (test, train) pair.
type PairResult struct {
	// TestIsSource reports the role chosen by the RoleSelector.
	TestIsSource bool

	// Distances is the |source|×|target| embedding distance matrix.
	Distances *matrix.Dense

	// Correspondence maps source nodes into target nodes.
	Correspondence assignment.Correspondence

	// Cost is the edit cost breakdown.
	Cost editcost.Result

	// Distance is Cost.Total(), the approximate GED.
	Distance float64
}

// Pair runs the pipeline for a single pair with test as the "test" side.
// Failures are returned as *CellError carrying the entries' IDs; a cancelled
// context is returned as ctx.Err().
func Pair(ctx context.Context, test, train Entry, opts ...Option) (PairResult, error) {
	o := gatherOptions(opts)
	co := editcost.Resolve(o.Cost...)

	res, stage, err := runPair(ctx, test, train, &o, co)
	if err != nil {
		if isContextErr(err) {
			return PairResult{}, err
		}

		return PairResult{}, &CellError{Test: test.ID, Train: train.ID, Stage: stage, Err: err}
	}

	return res, nil
}

// runPair executes the four stages and reports which one failed.
//
// Stage 1 (Validate): entry alignment.
// Stage 2 (Distance): source×target embedding distances.
// Stage 3 (Assignment): minimum-cost injective correspondence.
// Stage 4 (Cost): node and edge edit costs.
func runPair(ctx context.Context, test, train Entry, o *Options, co editcost.Options) (PairResult, Stage, error) {
	if err := ctx.Err(); err != nil {
		return PairResult{}, StageValidate, err
	}
	if err := test.Validate(); err != nil {
		return PairResult{}, StageValidate, err
	}
	if err := train.Validate(); err != nil {
		return PairResult{}, StageValidate, err
	}

	testIsSource := o.Roles.TestIsSource(test, train)
	src, tgt := train, test
	if testIsSource {
		src, tgt = test, train
	}

	dist, err := embedding.Distances(src.Embedding, tgt.Embedding, o.Embedding...)
	if err != nil {
		return PairResult{}, StageDistance, err
	}
	if err = ctx.Err(); err != nil {
		return PairResult{}, StageDistance, err
	}

	corr, err := assignment.Solve(dist, o.Assignment...)
	if err != nil {
		return PairResult{}, StageAssignment, err
	}
	if err = ctx.Err(); err != nil {
		return PairResult{}, StageAssignment, err
	}

	cost, err := editcost.ComputeWith(corr, src.Graph, tgt.Graph, dist, co)
	if err != nil {
		return PairResult{}, StageCost, err
	}

	return PairResult{
		TestIsSource:   testIsSource,
		Distances:      dist,
		Correspondence: corr,
		Cost:           cost,
		Distance:       cost.Total(),
	}, StageCost, nil
}
