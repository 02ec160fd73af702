package embedding

import "fmt"

// Metric selects the vector distance.
type Metric int

const (
	// Euclidean is the L2 distance ||a−b||₂ (default).
	Euclidean Metric = iota

	// SquaredEuclidean is ||a−b||₂²; same argmin as Euclidean, no sqrt.
	SquaredEuclidean

	// Manhattan is the L1 distance Σ|aₖ−bₖ|.
	Manhattan

	// Cosine is 1 − cos(a,b), clamped to [0,2]; two zero vectors are at 0,
	// a zero vector against a non-zero one is at 1.
	Cosine
)

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case SquaredEuclidean:
		return "squared_euclidean"
	case Manhattan:
		return "manhattan"
	case Cosine:
		return "cosine"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps a config/CLI name to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "euclidean", "l2":
		return Euclidean, nil
	case "squared_euclidean", "sqeuclidean":
		return SquaredEuclidean, nil
	case "manhattan", "l1":
		return Manhattan, nil
	case "cosine":
		return Cosine, nil
	default:
		return 0, fmt.Errorf("ParseMetric(%q): %w", s, ErrUnknownMetric)
	}
}

// Strategy selects how the distance matrix is evaluated.
type Strategy int

const (
	// Pairwise evaluates one kernel per cell (default; bit-exact symmetric).
	Pairwise Strategy = iota

	// Gram evaluates all cells through one A·Bᵀ matrix product.
	Gram
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Pairwise:
		return "pairwise"
	case Gram:
		return "gram"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a config/CLI name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "pairwise":
		return Pairwise, nil
	case "gram":
		return Gram, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", s, ErrUnknownStrategy)
	}
}

// Options configures Distances.
//
// Fields:
//   - Metric   — vector distance (default Euclidean).
//   - Strategy — Pairwise (default) or Gram.
type Options struct {
	Metric   Metric
	Strategy Strategy
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns Euclidean/Pairwise.
func DefaultOptions() Options {
	return Options{Metric: Euclidean, Strategy: Pairwise}
}

// WithMetric selects the distance metric. Panics on an undeclared value.
func WithMetric(m Metric) Option {
	if m < Euclidean || m > Cosine {
		panic(fmt.Sprintf("embedding: WithMetric: %v", m))
	}

	return func(o *Options) { o.Metric = m }
}

// WithStrategy selects the evaluation strategy. Panics on an undeclared value.
func WithStrategy(s Strategy) Option {
	if s < Pairwise || s > Gram {
		panic(fmt.Sprintf("embedding: WithStrategy: %v", s))
	}

	return func(o *Options) { o.Strategy = s }
}

// gatherOptions applies setters over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
