package editcost

import (
	"fmt"

	"github.com/katalvlaran/gedembed/assignment"
	"github.com/katalvlaran/gedembed/core"
	"github.com/katalvlaran/gedembed/matrix"
)

// Result is the edit cost induced by one correspondence.
type Result struct {
	// NodeCost covers substitutions and node insertions.
	NodeCost float64

	// EdgeCost covers edge deletions and insertions.
	EdgeCost float64

	// Substitutions counts matched pairs that were charged.
	Substitutions int

	// NodeInsertions counts unmatched target nodes.
	NodeInsertions int

	// EdgeDeletions counts source edges without a target image.
	EdgeDeletions int

	// EdgeInsertions counts target edges without a source pre-image.
	EdgeInsertions int
}

// Total returns NodeCost + EdgeCost, the approximate GED of the pair.
func (r Result) Total() float64 { return r.NodeCost + r.EdgeCost }

// Compute returns node and edge costs for corr between src and tgt.
// dist may be nil unless the EmbeddingWeighted policy is selected.
func Compute(corr assignment.Correspondence, src, tgt *core.Graph, dist matrix.Matrix, opts ...Option) (Result, error) {
	return ComputeWith(corr, src, tgt, dist, Resolve(opts...))
}

// ComputeWith is Compute with already-resolved Options.
//
// Stage 1 (Validate): graphs, options, correspondence shape and injectivity.
// Stage 2 (Execute): node cost, then edge cost.
func ComputeWith(corr assignment.Correspondence, src, tgt *core.Graph, dist matrix.Matrix, o Options) (Result, error) {
	if err := check(corr, src, tgt, o); err != nil {
		return Result{}, err
	}

	var res Result
	if err := nodeCost(&res, corr, src, tgt, dist, o); err != nil {
		return Result{}, err
	}
	edgeCost(&res, corr, src, tgt, o)

	return res, nil
}

// NodeCost returns only the node component (substitutions + insertions).
func NodeCost(corr assignment.Correspondence, src, tgt *core.Graph, dist matrix.Matrix, opts ...Option) (float64, error) {
	o := Resolve(opts...)
	if err := check(corr, src, tgt, o); err != nil {
		return 0, err
	}
	var res Result
	if err := nodeCost(&res, corr, src, tgt, dist, o); err != nil {
		return 0, err
	}

	return res.NodeCost, nil
}

// EdgeCost returns only the edge component (deletions + insertions).
func EdgeCost(corr assignment.Correspondence, src, tgt *core.Graph, opts ...Option) (float64, error) {
	o := Resolve(opts...)
	if err := check(corr, src, tgt, o); err != nil {
		return 0, err
	}
	var res Result
	edgeCost(&res, corr, src, tgt, o)

	return res.EdgeCost, nil
}

// check validates inputs shared by every entry point.
func check(corr assignment.Correspondence, src, tgt *core.Graph, o Options) error {
	if src == nil || tgt == nil {
		return ErrNilGraph
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if corr.Len() != src.Order() || corr.Targets != tgt.Order() {
		return fmt.Errorf("editcost: correspondence %d→%d for graphs %d/%d: %w",
			corr.Len(), corr.Targets, src.Order(), tgt.Order(), ErrOrderMismatch)
	}
	if err := corr.Validate(); err != nil {
		return fmt.Errorf("editcost: %w", err)
	}

	return nil
}

// nodeCost charges matched pairs per policy and every unmatched target node.
// Complexity: O(m·a + n) where a is the attribute width.
func nodeCost(res *Result, corr assignment.Correspondence, src, tgt *core.Graph, dist matrix.Matrix, o Options) error {
	switch o.NodePolicy {
	case UnitCost:
		for i, j := range corr.Mapping {
			if eq, comparable := core.AttributesEqual(src, i, tgt, j); comparable && !eq {
				res.Substitutions++
			}
		}
		res.NodeCost = float64(res.Substitutions) * o.SubstitutionCost

	case EmbeddingWeighted:
		if dist == nil || dist.Rows() != corr.Len() || dist.Cols() != corr.Targets {
			return ErrMissingDistances
		}
		var sum float64
		for i, j := range corr.Mapping {
			d, err := dist.At(i, j)
			if err != nil {
				return fmt.Errorf("editcost: %w", err)
			}
			if d > 0 {
				res.Substitutions++
			}
			sum += d
		}
		res.NodeCost = sum * o.SubstitutionCost

	default:
		return fmt.Errorf("editcost: %v: %w", o.NodePolicy, ErrUnknownPolicy)
	}

	res.NodeInsertions = corr.Targets - corr.Len()
	res.NodeCost += float64(res.NodeInsertions) * o.InsertionCost

	return nil
}

// edgeCost counts edge deletions over source edges and edge insertions over
// target edges whose endpoints are both matched (or all target edges with
// ChargeInsertedNodeEdges).
// Complexity: O(E_src + E_tgt + n).
func edgeCost(res *Result, corr assignment.Correspondence, src, tgt *core.Graph, o Options) {
	src.EachEdge(func(e core.Edge) {
		if !tgt.HasEdge(corr.Mapping[e.U], corr.Mapping[e.V]) {
			res.EdgeDeletions++
		}
	})

	inv := corr.Inverse()
	tgt.EachEdge(func(e core.Edge) {
		a, b := inv[e.U], inv[e.V]
		if a < 0 || b < 0 {
			if o.ChargeInsertedNodeEdges {
				res.EdgeInsertions++
			}
			return
		}
		if !src.HasEdge(a, b) {
			res.EdgeInsertions++
		}
	})

	res.EdgeCost = float64(res.EdgeDeletions)*o.EdgeDeletionCost + float64(res.EdgeInsertions)*o.EdgeInsertionCost
}
