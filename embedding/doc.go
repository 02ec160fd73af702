// Package embedding holds per-node embedding vectors and computes the
// cross-graph node-distance matrix that drives node assignment.
//
// 🚀 What is computed?
//
//	Given a source embedding with m vectors and a target embedding with n
//	vectors of the same dimension d, Distances returns the m×n matrix
//
//	  D[i][j] = dist(src_i, tgt_j)
//
//	under the selected Metric (Euclidean by default).
//
// ✨ Strategies:
//   - Pairwise (default): one SIMD kernel call (github.com/viterin/vek) per
//     cell. Bit-exact: dist(a,b) == dist(b,a) and dist(a,a) == 0.
//   - Gram: the batched identity ||a−b||² = ||a||² + ||b||² − 2·a·b with the
//     A·Bᵀ product delegated to gonum. Fastest for large graphs and wide
//     embeddings; results agree with Pairwise up to floating-point rounding
//     (clamped at 0). Euclidean and SquaredEuclidean only.
//
// ⚙️ Usage:
//
//	src, _ := embedding.New(srcVectors)
//	tgt, _ := embedding.New(tgtVectors)
//	d, err := embedding.Distances(src, tgt, embedding.WithMetric(embedding.Cosine))
//
// Performance:
//
//   - Time:   O(m·n·d)
//   - Memory: O(m·n) for the result (+ O((m+n)·d) for Gram).
//
// Errors:
//   - ErrDimensionMismatch — the two embeddings have different vector lengths.
//   - ErrRaggedVectors     — vectors inside one embedding differ in length.
//   - ErrNonFinite         — an embedding contains NaN or ±Inf.
//   - ErrUnsupportedStrategy — Gram requested for a non-L2 metric.
package embedding
