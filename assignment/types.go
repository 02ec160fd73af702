package assignment

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for assignment solving and correspondence validation.
var (
	// ErrInvalidShape indicates a cost matrix with more rows than columns.
	ErrInvalidShape = errors.New("assignment: more rows than columns")

	// ErrNonFiniteCost indicates NaN or ±Inf in the cost matrix.
	ErrNonFiniteCost = errors.New("assignment: NaN or Inf cost")

	// ErrTooLarge indicates an Exhaustive request above MaxExhaustiveSize.
	ErrTooLarge = errors.New("assignment: instance too large for exhaustive search")

	// ErrNotInjective indicates two rows mapped to the same column.
	ErrNotInjective = errors.New("assignment: mapping is not injective")

	// ErrOutOfRange indicates a mapped column outside [0, Targets).
	ErrOutOfRange = errors.New("assignment: mapped column out of range")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the declared constants.
	ErrUnknownAlgorithm = errors.New("assignment: unknown algorithm")
)

// Correspondence maps every source row i to target column Mapping[i].
//
// Invariants (checked by Validate, guaranteed by Solve):
//   - len(Mapping) ≤ Targets;
//   - 0 ≤ Mapping[i] < Targets;
//   - Mapping is injective.
type Correspondence struct {
	// Mapping[i] is the target node matched to source node i.
	Mapping []int

	// Targets is the number of target nodes n.
	Targets int

	// Cost is Σᵢ C[i][Mapping[i]] under the solved matrix.
	Cost float64
}

// Len returns the number of matched source nodes m.
func (c Correspondence) Len() int { return len(c.Mapping) }

// Target returns the image of source node i, or -1 when i is out of range.
func (c Correspondence) Target(i int) int {
	if i < 0 || i >= len(c.Mapping) {
		return -1
	}

	return c.Mapping[i]
}

// Inverse returns inv with inv[j] = i when Mapping[i] == j, and -1 for
// unmatched targets.
// Complexity: O(n).
func (c Correspondence) Inverse() []int {
	inv := make([]int, c.Targets)
	for j := range inv {
		inv[j] = -1
	}
	for i, j := range c.Mapping {
		if j >= 0 && j < c.Targets {
			inv[j] = i
		}
	}

	return inv
}

// Unmatched returns the target nodes outside the image, ascending.
// Its length is Targets − Len() for a valid correspondence.
// Complexity: O(n).
func (c Correspondence) Unmatched() []int {
	out := make([]int, 0, c.Targets-len(c.Mapping))
	for j, i := range c.Inverse() {
		if i < 0 {
			out = append(out, j)
		}
	}

	return out
}

// Validate checks range and injectivity.
// Complexity: O(m + n).
func (c Correspondence) Validate() error {
	if len(c.Mapping) > c.Targets {
		return fmt.Errorf("Correspondence: %d sources > %d targets: %w", len(c.Mapping), c.Targets, ErrInvalidShape)
	}
	seen := make([]bool, c.Targets)
	for i, j := range c.Mapping {
		if j < 0 || j >= c.Targets {
			return fmt.Errorf("Correspondence: source %d → %d: %w", i, j, ErrOutOfRange)
		}
		if seen[j] {
			return fmt.Errorf("Correspondence: target %d used twice: %w", j, ErrNotInjective)
		}
		seen[j] = true
	}

	return nil
}

// Pairs returns (source, target) pairs sorted by source, handy for logs and goldens.
func (c Correspondence) Pairs() [][2]int {
	out := make([][2]int, len(c.Mapping))
	for i, j := range c.Mapping {
		out[i] = [2]int{i, j}
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}
