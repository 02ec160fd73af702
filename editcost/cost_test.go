package editcost_test

import (
	"testing"

	"github.com/katalvlaran/gedembed/assignment"
	"github.com/katalvlaran/gedembed/core"
	"github.com/katalvlaran/gedembed/editcost"
	"github.com/katalvlaran/gedembed/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corr(targets int, mapping ...int) assignment.Correspondence {
	return assignment.Correspondence{Mapping: mapping, Targets: targets}
}

func TestCompute_TwoNodesIntoPath(t *testing.T) {
	src := core.MustGraph(2, [][2]int{{0, 1}})
	tgt := core.MustGraph(3, [][2]int{{0, 1}, {1, 2}})

	res, err := editcost.Compute(corr(3, 0, 1), src, tgt, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.NodeCost)
	assert.Equal(t, 0.0, res.EdgeCost)
	assert.Equal(t, 1.0, res.Total())
	assert.Equal(t, 1, res.NodeInsertions)
	assert.Zero(t, res.Substitutions)
	assert.Zero(t, res.EdgeDeletions)
	assert.Zero(t, res.EdgeInsertions)
}

func TestCompute_InsertedNodeEdges(t *testing.T) {
	src := core.MustGraph(2, [][2]int{{0, 1}})
	tgt := core.MustGraph(3, [][2]int{{0, 1}, {1, 2}})

	res, err := editcost.Compute(corr(3, 0, 1), src, tgt, nil, editcost.WithInsertedNodeEdges(true))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.EdgeCost)
	assert.Equal(t, 1, res.EdgeInsertions)
}

func TestCompute_EmptySource(t *testing.T) {
	src := core.MustGraph(0, nil)
	tgt := core.MustGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	res, err := editcost.Compute(corr(4), src, tgt, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.NodeCost)
	assert.Equal(t, 0.0, res.EdgeCost)

	res, err = editcost.Compute(corr(4), src, tgt, nil, editcost.WithInsertedNodeEdges(true))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.EdgeCost)
}

func TestCompute_BothEmpty(t *testing.T) {
	g := core.MustGraph(0, nil)
	res, err := editcost.Compute(corr(0), g, g, nil)
	require.NoError(t, err)
	assert.Equal(t, editcost.Result{}, res)
}

func TestCompute_IdenticalGraphsIdentityMapping(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}}
	labels := []int{1, 2, 3, 1}
	a := core.MustGraph(4, edges, core.WithLabels(labels))
	b := core.MustGraph(4, edges, core.WithLabels(labels))

	res, err := editcost.Compute(corr(4, 0, 1, 2, 3), a, b, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Total())
}

func TestCompute_EdgeDeletionAndInsertion(t *testing.T) {
	// Source triangle, target path on the same nodes: (0,2) is deleted.
	src := core.MustGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	tgt := core.MustGraph(3, [][2]int{{0, 1}, {1, 2}})

	res, err := editcost.Compute(corr(3, 0, 1, 2), src, tgt, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.EdgeDeletions)
	assert.Zero(t, res.EdgeInsertions)

	// Reversed roles: the same edge is now inserted.
	res, err = editcost.Compute(corr(3, 0, 1, 2), tgt, src, nil)
	require.NoError(t, err)
	assert.Zero(t, res.EdgeDeletions)
	assert.Equal(t, 1, res.EdgeInsertions)

	// Rotated mapping onto a path: (0,1)→(1,2) kept, (1,2)→(2,0) deleted,
	// (0,2)→(1,0) kept.
	res, err = editcost.Compute(corr(3, 1, 2, 0), src, tgt, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.EdgeDeletions)
	assert.Equal(t, 1.0, res.EdgeCost)
}

func TestCompute_LabelMismatch(t *testing.T) {
	a := core.MustGraph(2, nil, core.WithLabels([]int{1, 2}))
	b := core.MustGraph(3, nil, core.WithLabels([]int{2, 2, 7}))

	res, err := editcost.Compute(corr(3, 0, 1), a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Substitutions)
	assert.Equal(t, 2.0, res.NodeCost) // one substitution + one insertion

	res, err = editcost.Compute(corr(3, 0, 1), a, b, nil,
		editcost.WithSubstitutionCost(3), editcost.WithInsertionCost(0.5))
	require.NoError(t, err)
	assert.Equal(t, 3.5, res.NodeCost)
}

func TestCompute_FeatureMismatch(t *testing.T) {
	a := core.MustGraph(2, nil, core.WithFeatures([][]float64{{1, 0}, {0, 1}}))
	b := core.MustGraph(2, nil, core.WithFeatures([][]float64{{1, 0}, {1, 1}}))

	res, err := editcost.Compute(corr(2, 0, 1), a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Substitutions)

	// Labels on only one side and features on only the other: not comparable.
	c := core.MustGraph(2, nil, core.WithLabels([]int{4, 5}))
	res, err = editcost.Compute(corr(2, 0, 1), a, c, nil)
	require.NoError(t, err)
	assert.Zero(t, res.NodeCost)
}

func TestCompute_EmbeddingWeighted(t *testing.T) {
	src := core.MustGraph(2, nil)
	tgt := core.MustGraph(3, nil)
	dist, err := matrix.NewDenseRows([][]float64{{0.5, 9, 9}, {9, 0, 9}})
	require.NoError(t, err)

	res, err := editcost.Compute(corr(3, 0, 1), src, tgt, dist,
		editcost.WithNodePolicy(editcost.EmbeddingWeighted), editcost.WithSubstitutionCost(2))
	require.NoError(t, err)
	assert.InDelta(t, 2*0.5+1, res.NodeCost, 1e-12)
	assert.Equal(t, 1, res.Substitutions)

	_, err = editcost.Compute(corr(3, 0, 1), src, tgt, nil,
		editcost.WithNodePolicy(editcost.EmbeddingWeighted))
	assert.ErrorIs(t, err, editcost.ErrMissingDistances)
}

func TestCompute_Validation(t *testing.T) {
	src := core.MustGraph(2, nil)
	tgt := core.MustGraph(3, nil)

	cases := []struct {
		name string
		c    assignment.Correspondence
		src  *core.Graph
		want error
	}{
		{"short mapping", corr(3, 0), src, editcost.ErrOrderMismatch},
		{"wrong targets", corr(4, 0, 1), src, editcost.ErrOrderMismatch},
		{"not injective", corr(3, 1, 1), src, assignment.ErrNotInjective},
		{"out of range", corr(3, 0, 5), src, assignment.ErrOutOfRange},
		{"nil graph", corr(3, 0, 1), nil, editcost.ErrNilGraph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := editcost.Compute(tc.c, tc.src, tgt, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestComponents(t *testing.T) {
	src := core.MustGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	tgt := core.MustGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	c := corr(4, 0, 1, 2)

	full, err := editcost.Compute(c, src, tgt, nil)
	require.NoError(t, err)
	nc, err := editcost.NodeCost(c, src, tgt, nil)
	require.NoError(t, err)
	ec, err := editcost.EdgeCost(c, src, tgt)
	require.NoError(t, err)
	assert.Equal(t, full.NodeCost, nc)
	assert.Equal(t, full.EdgeCost, ec)
	assert.Equal(t, 2.0, full.Total())
}

func TestOptions(t *testing.T) {
	o := editcost.DefaultOptions()
	require.NoError(t, o.Validate())
	assert.Equal(t, editcost.UnitCost, o.NodePolicy)
	assert.False(t, o.ChargeInsertedNodeEdges)

	o.EdgeDeletionCost = -1
	assert.ErrorIs(t, o.Validate(), editcost.ErrNegativeCost)

	_, err := editcost.Compute(corr(0), core.MustGraph(0, nil), core.MustGraph(0, nil), nil,
		func(o *editcost.Options) { o.InsertionCost = -2 })
	assert.ErrorIs(t, err, editcost.ErrNegativeCost)

	assert.Panics(t, func() { editcost.WithSubstitutionCost(-1) })
	assert.Panics(t, func() { editcost.WithEdgeCosts(1, -1) })
	assert.Panics(t, func() { editcost.WithNodePolicy(editcost.NodePolicy(9)) })

	r := editcost.Resolve(editcost.WithEdgeCosts(2, 3), nil)
	assert.Equal(t, 2.0, r.EdgeInsertionCost)
	assert.Equal(t, 3.0, r.EdgeDeletionCost)
}

func TestParseNodePolicy(t *testing.T) {
	p, err := editcost.ParseNodePolicy("embedding")
	require.NoError(t, err)
	assert.Equal(t, editcost.EmbeddingWeighted, p)
	assert.Equal(t, "unit", editcost.UnitCost.String())

	_, err = editcost.ParseNodePolicy("bogus")
	assert.ErrorIs(t, err, editcost.ErrUnknownPolicy)
}
