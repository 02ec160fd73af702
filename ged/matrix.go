package ged

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gedembed/editcost"
	"github.com/katalvlaran/gedembed/matrix"
)

// DistanceMatrix computes the |test|×|train| approximate GED matrix.
//
// Stage 1 (Prepare): resolve options, allocate the output, fingerprint entries
// when the pair cache is active.
// Stage 2 (Execute): schedule one task per cell on an errgroup bounded by
// Workers; each task writes only its own cell.
// Stage 3 (Finalize): apply the failure policy and sort isolated errors.
//
// Complexity: Σ over cells of O(m·n·d + m²·n + E), divided across workers.
func DistanceMatrix(ctx context.Context, test, train []Entry, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	co := editcost.Resolve(o.Cost...)
	if err := co.Validate(); err != nil {
		return nil, fmt.Errorf("DistanceMatrix: %w", err)
	}
	log := o.Logger

	out, err := matrix.NewDense(len(test), len(train))
	if err != nil {
		return nil, fmt.Errorf("DistanceMatrix: %w", err)
	}

	cache, err := newPairCache(o.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("DistanceMatrix: %w", err)
	}
	if cache != nil && !o.Roles.Symmetric() {
		log.Warn("Pair cache disabled: role selector is not symmetric.")
		cache = nil
	}
	var fpTest, fpTrain []uint64
	if cache != nil {
		fpTest, fpTrain = fingerprints(test), fingerprints(train)
	}

	total := len(test) * len(train)
	cols := len(train)
	raw := out.RawData()
	start := time.Now()
	log.Info("Distance matrix run started.",
		"test", len(test), "train", len(train), "cells", total,
		"workers", o.Workers, "policy", o.Policy.String())

	var (
		mu       sync.Mutex
		cellErrs []*CellError
		done     atomic.Int64
		hits     atomic.Int64
	)
	finish := func() {
		n := done.Add(1)
		if o.Progress != nil {
			o.Progress(int(n), total)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

schedule:
	for i := range test {
		for j := range train {
			if gctx.Err() != nil {
				break schedule
			}
			g.Go(func() error {
				var key pairKey
				if cache != nil {
					key = newPairKey(fpTest[i], fpTrain[j])
					if r, ok := cache.get(key); ok {
						raw[i*cols+j] = r.Total()
						hits.Add(1)
						finish()
						return nil
					}
				}

				res, stage, err := runPair(gctx, test[i], train[j], &o, co)
				if err != nil {
					if isContextErr(err) {
						return err
					}
					ce := &CellError{Test: i, Train: j, Stage: stage, Err: err}
					if o.Policy == FailFast {
						log.Error("Cell failed, cancelling run.",
							"test", test[i].ID, "train", train[j].ID, "stage", stage.String(), "error", err)
						return ce
					}
					log.Warn("Cell failed, isolated.",
						"test", test[i].ID, "train", train[j].ID, "stage", stage.String(), "error", err)
					raw[i*cols+j] = math.NaN()
					mu.Lock()
					cellErrs = append(cellErrs, ce)
					mu.Unlock()
					finish()
					return nil
				}

				raw[i*cols+j] = res.Distance
				cache.add(key, res.Cost)
				finish()
				return nil
			})
		}
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	elapsed := time.Since(start)
	if err != nil {
		log.Error("Distance matrix run aborted.", "elapsed", elapsed, "done", done.Load(), "error", err)
		return nil, err
	}

	sort.Slice(cellErrs, func(a, b int) bool {
		if cellErrs[a].Test != cellErrs[b].Test {
			return cellErrs[a].Test < cellErrs[b].Test
		}
		return cellErrs[a].Train < cellErrs[b].Train
	})

	log.Info("Distance matrix run finished.",
		"elapsed", elapsed, "cells", total, "failed", len(cellErrs), "cache_hits", hits.Load())

	return &Result{
		Distances: out,
		Errors:    cellErrs,
		Elapsed:   elapsed,
		CacheHits: int(hits.Load()),
	}, nil
}

// fingerprints returns Entry.Fingerprint for every entry.
func fingerprints(entries []Entry) []uint64 {
	out := make([]uint64, len(entries))
	for i, e := range entries {
		out[i] = e.Fingerprint()
	}

	return out
}

// isContextErr reports cancellation or deadline errors, which never count as
// cell failures.
func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
