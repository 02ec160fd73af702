package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gedembed/matrix"
)

// Solve computes a minimum-cost correspondence for the m×n matrix cost.
//
// Stage 1 (Validate): m ≤ n, finite entries.
// Stage 2 (Prepare): prefetch into a flat buffer (no interface calls in hot loops).
// Stage 3 (Execute): dispatch to the selected algorithm.
//
// m == 0 returns an empty correspondence with all n targets unmatched.
func Solve(cost matrix.Matrix, opts ...Option) (Correspondence, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	m, n := cost.Rows(), cost.Cols()
	if m > n {
		return Correspondence{}, fmt.Errorf("assignment.Solve: %d×%d: %w", m, n, ErrInvalidShape)
	}
	w, err := flatten(cost)
	if err != nil {
		return Correspondence{}, err
	}
	if m == 0 {
		return Correspondence{Mapping: []int{}, Targets: n}, nil
	}

	var mapping []int
	switch o.Algorithm {
	case Hungarian:
		mapping = hungarian(w, m, n)
	case Greedy:
		mapping = greedy(w, m, n)
	case Exhaustive:
		if n > MaxExhaustiveSize {
			return Correspondence{}, fmt.Errorf("assignment.Solve: %d×%d exceeds %d: %w", m, n, MaxExhaustiveSize, ErrTooLarge)
		}
		mapping = exhaustive(w, m, n)
	default:
		return Correspondence{}, fmt.Errorf("assignment.Solve: %v: %w", o.Algorithm, ErrUnknownAlgorithm)
	}

	return Correspondence{Mapping: mapping, Targets: n, Cost: sumCost(w, n, mapping)}, nil
}

// TotalCost evaluates Σᵢ cost[i][mapping[i]] after validating mapping.
func TotalCost(cost matrix.Matrix, mapping []int) (float64, error) {
	c := Correspondence{Mapping: mapping, Targets: cost.Cols()}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if len(mapping) != cost.Rows() {
		return 0, fmt.Errorf("assignment.TotalCost: %d rows, mapping of %d: %w", cost.Rows(), len(mapping), ErrInvalidShape)
	}
	var total float64
	for i, j := range mapping {
		v, err := cost.At(i, j)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// flatten copies cost into a row-major buffer and rejects non-finite values.
// *matrix.Dense is read through RawData; other implementations via At.
func flatten(cost matrix.Matrix) ([]float64, error) {
	m, n := cost.Rows(), cost.Cols()
	w := make([]float64, m*n)
	if d, ok := cost.(*matrix.Dense); ok {
		copy(w, d.RawData())
	} else {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				v, err := cost.At(i, j)
				if err != nil {
					return nil, err
				}
				w[i*n+j] = v
			}
		}
	}
	for idx, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("assignment.Solve: cell (%d,%d)=%v: %w", idx/n, idx%n, v, ErrNonFiniteCost)
		}
	}

	return w, nil
}

// sumCost adds the matched cells in row order, so equal mappings give
// bit-identical costs.
func sumCost(w []float64, n int, mapping []int) float64 {
	var total float64
	for i, j := range mapping {
		total += w[i*n+j]
	}

	return total
}

// hungarian solves the rectangular problem with dual potentials.
//
// Rows are inserted one at a time; for row i a Dijkstra-like search over
// reduced costs C[r][j] − u[r] − v[j] finds the cheapest augmenting path to
// a free column, then potentials are updated so reduced costs stay ≥ 0.
// Arrays are 1-based with index 0 as the virtual root column.
//
// Complexity: O(m²·n) time, O(m + n) memory.
func hungarian(w []float64, m, n int) []int {
	inf := math.Inf(1)
	u := make([]float64, m+1)    // row potentials
	v := make([]float64, n+1)    // column potentials
	p := make([]int, n+1)        // p[j] = row matched to column j (1-based, 0 = free)
	way := make([]int, n+1)      // predecessor column on the alternating path
	minv := make([]float64, n+1) // best reduced cost reaching column j
	used := make([]bool, n+1)    // column j is in the search tree

	for i := 1; i <= m; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta, j1 := inf, 0
			row := w[(i0-1)*n : i0*n]
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := row[j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the alternating path back to the root.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	mapping := make([]int, m)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			mapping[p[j]-1] = j - 1
		}
	}

	return mapping
}

// greedy assigns each row in ascending order to its cheapest free column,
// lowest index on ties.
// Complexity: O(m·n).
func greedy(w []float64, m, n int) []int {
	taken := make([]bool, n)
	mapping := make([]int, m)
	for i := 0; i < m; i++ {
		best, bestD := -1, math.Inf(1)
		row := w[i*n : (i+1)*n]
		for j, d := range row {
			if !taken[j] && (best < 0 || d < bestD) {
				best, bestD = j, d
			}
		}
		taken[best] = true
		mapping[i] = best
	}

	return mapping
}

// bbState is the depth-first search state for exhaustive.
type bbState struct {
	w       []float64
	m, n    int
	minRow  []float64 // minRow[i] = min_j w[i][j], admissible per-row bound
	suffix  []float64 // suffix[i] = Σ_{r≥i} minRow[r]
	taken   []bool
	cur     []int
	best    []int
	bestSum float64
}

// exhaustive enumerates injective maps depth-first, columns ascending, and
// prunes when costSoFar + Σ remaining row minima ≥ incumbent. Only strictly
// better leaves replace the incumbent, so the first optimum in
// lexicographic column order is returned.
//
// Complexity: O(n!/(n−m)!) worst case.
func exhaustive(w []float64, m, n int) []int {
	s := &bbState{
		w: w, m: m, n: n,
		minRow:  make([]float64, m),
		suffix:  make([]float64, m+1),
		taken:   make([]bool, n),
		cur:     make([]int, m),
		bestSum: math.Inf(1),
	}
	for i := 0; i < m; i++ {
		s.minRow[i] = math.Inf(1)
		for j := 0; j < n; j++ {
			if d := w[i*n+j]; d < s.minRow[i] {
				s.minRow[i] = d
			}
		}
	}
	for i := m - 1; i >= 0; i-- {
		s.suffix[i] = s.suffix[i+1] + s.minRow[i]
	}
	s.search(0, 0)

	return s.best
}

// search extends the partial map at row i with accumulated cost acc.
func (s *bbState) search(i int, acc float64) {
	if i == s.m {
		if acc < s.bestSum {
			s.bestSum = acc
			s.best = append(s.best[:0], s.cur...)
		}
		return
	}
	if acc+s.suffix[i] >= s.bestSum {
		return
	}
	row := s.w[i*s.n : (i+1)*s.n]
	for j := 0; j < s.n; j++ {
		if s.taken[j] {
			continue
		}
		s.taken[j] = true
		s.cur[i] = j
		s.search(i+1, acc+row[j])
		s.taken[j] = false
	}
}
