// SPDX-License-Identifier: MIT
// Package: gedembed/builder
//
// impl_random_sparse.go — RandomSparse(n, p), an Erdős–Rényi G(n,p) sample.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - rng required for 0 < p < 1; p ∈ {0,1} is deterministic without it.
//   - Trials run over unordered pairs i<j, i ascending then j ascending, so
//     a fixed seed yields a fixed edge set.

package builder

import "fmt"

// RandomSparse appends a G(n,p) sample.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base := d.addNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == 0:
				case p == 1:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					d.addEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}
