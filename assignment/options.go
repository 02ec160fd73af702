package assignment

import "fmt"

// MaxExhaustiveSize bounds both dimensions for the Exhaustive algorithm.
// 10 columns already means up to 10! ≈ 3.6M leaves before pruning.
const MaxExhaustiveSize = 10

// Algorithm selects the solver.
type Algorithm int

const (
	// Hungarian is the exact shortest-augmenting-path solver (default).
	Hungarian Algorithm = iota

	// Greedy assigns rows in order to their cheapest free column.
	Greedy

	// Exhaustive enumerates injective maps with branch-and-bound pruning.
	Exhaustive
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Hungarian:
		return "hungarian"
	case Greedy:
		return "greedy"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a config/CLI name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "hungarian", "jv":
		return Hungarian, nil
	case "greedy":
		return Greedy, nil
	case "exhaustive", "bruteforce":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
}

// Options configures Solve.
type Options struct {
	// Algorithm selects the solver (default Hungarian).
	Algorithm Algorithm
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns the Hungarian configuration.
func DefaultOptions() Options {
	return Options{Algorithm: Hungarian}
}

// WithAlgorithm selects the solver. Panics on an undeclared value.
func WithAlgorithm(a Algorithm) Option {
	if a < Hungarian || a > Exhaustive {
		panic(fmt.Sprintf("assignment: WithAlgorithm: %v", a))
	}

	return func(o *Options) { o.Algorithm = a }
}
