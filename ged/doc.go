// Package ged aggregates embedding-guided approximate graph edit distances
// over two graph collections.
//
// 🧭 Pipeline (per cell)
//
//	roles   – RoleSelector decides which graph is the source (default: smaller)
//	dist    – embedding.Distances(source, target)       |source|×|target|
//	match   – assignment.Solve(dist)                    Correspondence
//	cost    – editcost.ComputeWith(corr, ...)           NodeCost + EdgeCost
//
// DistanceMatrix runs the pipeline for every (test, train) pair on a bounded
// errgroup pool and writes each cell exactly once into a pre-allocated
// |test|×|train| matrix. Results do not depend on the worker count.
//
// ⚠️ Failures
//
//	FailFast (default) – the first failing cell cancels the run; its *CellError
//	                     is returned.
//	Isolate            – failing cells become NaN, errors are collected in
//	                     Result.Errors sorted by (Test, Train).
//
// A cancelled context always aborts the run regardless of the policy.
//
// Logging goes through an injected *slog.Logger (WithLogger); nothing is
// logged by default.
package ged
