// SPDX-License-Identifier: MIT
// Package: gedembed/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(n1, n2).
//
// Emission order: for i ascending, j > i ascending (K_n); left i ascending,
// right j ascending (K_{n1,n2}, left side appended first).

package builder

import "fmt"

// Complete appends the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := d.addNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addEdge(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite appends K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: partition sizes %d and %d must be ≥ 1: %w",
				MethodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		left := d.addNodes(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.addEdge(left+i, right+j)
			}
		}

		return nil
	}
}
