// SPDX-License-Identifier: MIT

// Package matrix provides the row-major Dense matrix shared by the distance
// engine: intra-pair node-distance matrices (|source| × |target|) and the
// final |test| × |train| distance matrix.
//
// Differences from a general linear-algebra type:
//   - Zero-row and zero-column shapes are legal (an empty graph yields a 0×n
//     distance matrix); only negative dimensions are rejected.
//   - At/Set never panic on user input; they return ErrOutOfRange.
//   - Heavy numeric kernels are delegated to gonum through ToGonum/FromGonum
//     instead of being reimplemented here.
//
// Concurrency:
//
//	A Dense is not synchronized. Concurrent Set calls on distinct cells are
//	safe (each writes its own float64 slot); any other overlap needs external
//	coordination.
package matrix
