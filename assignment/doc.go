// Package assignment solves the rectangular assignment problem that turns a
// node-distance matrix into a node correspondence.
//
// Problem:
//
//	Given an m×n cost matrix C with m ≤ n, choose an injective map
//	π: {0..m-1} → {0..n-1} minimizing Σᵢ C[i][π(i)]. Every row is matched;
//	n−m columns stay unmatched (inserted nodes in edit-distance terms).
//
// Algorithms (Options.Algorithm):
//   - Hungarian (default): shortest augmenting paths with dual potentials
//     (Jonker–Volgenant class). Exact. O(m²·n) time, O(n) extra memory.
//   - Greedy: each row in ascending order takes its cheapest free column.
//     Not optimal; O(m·n). Useful as a fast baseline.
//   - Exhaustive: depth-first branch-and-bound over all injective maps.
//     Exact reference for small inputs only (m,n ≤ MaxExhaustiveSize).
//
// Determinism:
//
//	Rows are processed in ascending order and every comparison is strict,
//	so among equal-cost alternatives the lowest column index wins. Identical
//	inputs always yield identical correspondences. Multiplying all costs by
//	a power of two (or any positive factor on integer-valued costs) leaves
//	the chosen correspondence unchanged.
//
// Errors:
//   - ErrInvalidShape   — more rows than columns; the caller must put the
//     smaller graph on the row side.
//   - ErrNonFiniteCost  — NaN or ±Inf in the cost matrix.
//   - ErrTooLarge       — Exhaustive requested above MaxExhaustiveSize.
//   - ErrNotInjective / ErrOutOfRange — Correspondence.Validate failures.
package assignment
