package builder_test

import (
	"testing"

	"github.com/katalvlaran/gedembed/builder"
	"github.com/katalvlaran/gedembed/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional checks node/edge counts and a sample of edges for
// every topology constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					assert.True(t, g.HasEdge(i, i+1))
				}
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(4, 0))
				for u := 0; u < 5; u++ {
					assert.Equal(t, 2, g.Degree(u))
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.Equal(t, []int{0}, g.Neighbors(3))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.True(t, g.HasEdge(4, 1))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1))
				assert.False(t, g.HasEdge(2, 3))
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 3))
				assert.True(t, g.HasEdge(4, 5))
				assert.False(t, g.HasEdge(2, 3))
			},
		},
		{
			name: "Isolated(3)", ctor: builder.Isolated(3), wantV: 3, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		builder.Cycle(4),
		builder.Path(2),
		builder.Connect([2]int{3, 4}),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 4+1+1, g.Size())
	assert.True(t, g.HasEdge(4, 5))
	assert.True(t, g.HasEdge(3, 4))
}

func TestBuildGraph_Empty(t *testing.T) {
	g, err := builder.BuildGraph(nil)
	require.NoError(t, err)
	assert.True(t, g.Empty())
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"RandomSparse p>1", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Connect out of range", builder.Connect([2]int{0, 1}), builder.ErrConstructFailed},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// A loop survives the draft and is rejected when freezing.
	_, err := builder.BuildGraph(nil, builder.Path(2), builder.Connect([2]int{1, 1}))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.Size())
	none, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, none.Size())
}

func TestWithDegreeLabels(t *testing.T) {
	g := builder.MustBuildGraph([]builder.BuilderOption{builder.WithDegreeLabels()}, builder.Star(4))
	require.True(t, g.HasLabels())
	l, ok := g.Label(0)
	assert.True(t, ok)
	assert.Equal(t, 3, l)
	l, _ = g.Label(2)
	assert.Equal(t, 1, l)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithLabelFn(nil) })
	assert.Panics(t, func() { builder.WithValueFn(nil) })
	assert.Panics(t, func() { builder.UniformValueFn(2, 1) })
	assert.Panics(t, func() { builder.NormalValueFn(0, -1) })
	assert.Panics(t, func() { builder.MustBuildGraph(nil, builder.Cycle(1)) })
}
