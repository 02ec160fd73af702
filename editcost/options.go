package editcost

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for cost accounting.
var (
	// ErrOrderMismatch indicates a correspondence whose shape disagrees with
	// the graphs' node counts.
	ErrOrderMismatch = errors.New("editcost: correspondence does not fit graph orders")

	// ErrNilGraph indicates a nil source or target graph.
	ErrNilGraph = errors.New("editcost: graph is nil")

	// ErrMissingDistances indicates EmbeddingWeighted without a distance matrix
	// of the right shape.
	ErrMissingDistances = errors.New("editcost: embedding-weighted policy needs the distance matrix")

	// ErrNegativeCost indicates a negative or non-finite unit cost.
	ErrNegativeCost = errors.New("editcost: unit costs must be finite and non-negative")

	// ErrUnknownPolicy indicates a NodePolicy outside the declared constants.
	ErrUnknownPolicy = errors.New("editcost: unknown node policy")
)

// NodePolicy selects how matched node pairs are charged.
type NodePolicy int

const (
	// UnitCost charges SubstitutionCost per attribute mismatch (default).
	UnitCost NodePolicy = iota

	// EmbeddingWeighted charges SubstitutionCost × embedding distance per pair.
	EmbeddingWeighted
)

// String implements fmt.Stringer.
func (p NodePolicy) String() string {
	switch p {
	case UnitCost:
		return "unit"
	case EmbeddingWeighted:
		return "embedding"
	default:
		return fmt.Sprintf("NodePolicy(%d)", int(p))
	}
}

// ParseNodePolicy maps a config/CLI name to a NodePolicy.
func ParseNodePolicy(s string) (NodePolicy, error) {
	switch s {
	case "", "unit":
		return UnitCost, nil
	case "embedding", "weighted":
		return EmbeddingWeighted, nil
	default:
		return 0, fmt.Errorf("ParseNodePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

// Default unit costs of the standard GED convention.
const (
	DefaultSubstitutionCost  = 1.0
	DefaultInsertionCost     = 1.0
	DefaultEdgeInsertionCost = 1.0
	DefaultEdgeDeletionCost  = 1.0
)

// Options configures cost accounting.
//
// Fields:
//   - NodePolicy              — UnitCost or EmbeddingWeighted.
//   - SubstitutionCost        — per mismatching pair (UnitCost) or distance weight.
//   - InsertionCost           — per unmatched target node.
//   - EdgeInsertionCost       — per target edge missing from the source.
//   - EdgeDeletionCost        — per source edge missing from the target.
//   - ChargeInsertedNodeEdges — also charge target edges touching inserted nodes.
type Options struct {
	NodePolicy              NodePolicy
	SubstitutionCost        float64
	InsertionCost           float64
	EdgeInsertionCost       float64
	EdgeDeletionCost        float64
	ChargeInsertedNodeEdges bool
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns unit costs, UnitCost policy, no inserted-edge charge.
func DefaultOptions() Options {
	return Options{
		NodePolicy:        UnitCost,
		SubstitutionCost:  DefaultSubstitutionCost,
		InsertionCost:     DefaultInsertionCost,
		EdgeInsertionCost: DefaultEdgeInsertionCost,
		EdgeDeletionCost:  DefaultEdgeDeletionCost,
	}
}

// Validate reports ErrNegativeCost / ErrUnknownPolicy for hand-built Options.
func (o Options) Validate() error {
	if o.NodePolicy < UnitCost || o.NodePolicy > EmbeddingWeighted {
		return fmt.Errorf("editcost: %v: %w", o.NodePolicy, ErrUnknownPolicy)
	}
	for name, c := range map[string]float64{
		"substitution":   o.SubstitutionCost,
		"insertion":      o.InsertionCost,
		"edge insertion": o.EdgeInsertionCost,
		"edge deletion":  o.EdgeDeletionCost,
	} {
		if badCost(c) {
			return fmt.Errorf("editcost: %s cost %v: %w", name, c, ErrNegativeCost)
		}
	}

	return nil
}

// badCost reports a negative, NaN or infinite unit cost.
func badCost(c float64) bool {
	return c < 0 || math.IsNaN(c) || math.IsInf(c, 0)
}

// mustCost panics with a stable message on invalid option values.
func mustCost(fn string, c float64) {
	if badCost(c) {
		panic(fmt.Sprintf("editcost: %s: cost %v must be finite and non-negative", fn, c))
	}
}

// WithNodePolicy selects the node policy. Panics on an undeclared value.
func WithNodePolicy(p NodePolicy) Option {
	if p < UnitCost || p > EmbeddingWeighted {
		panic(fmt.Sprintf("editcost: WithNodePolicy: %v", p))
	}

	return func(o *Options) { o.NodePolicy = p }
}

// WithSubstitutionCost sets the per-pair substitution cost (or weight).
func WithSubstitutionCost(c float64) Option {
	mustCost("WithSubstitutionCost", c)

	return func(o *Options) { o.SubstitutionCost = c }
}

// WithInsertionCost sets the per-node insertion cost.
func WithInsertionCost(c float64) Option {
	mustCost("WithInsertionCost", c)

	return func(o *Options) { o.InsertionCost = c }
}

// WithEdgeCosts sets edge insertion and deletion costs.
func WithEdgeCosts(insertion, deletion float64) Option {
	mustCost("WithEdgeCosts", insertion)
	mustCost("WithEdgeCosts", deletion)

	return func(o *Options) {
		o.EdgeInsertionCost = insertion
		o.EdgeDeletionCost = deletion
	}
}

// WithInsertedNodeEdges toggles charging target edges that touch inserted nodes.
func WithInsertedNodeEdges(charge bool) Option {
	return func(o *Options) { o.ChargeInsertedNodeEdges = charge }
}

// Resolve applies setters over DefaultOptions. Exported so the orchestrator
// can resolve once per run instead of once per cell.
func Resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
