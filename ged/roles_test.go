package ged_test

import (
	"testing"

	"github.com/katalvlaran/gedembed/builder"
	"github.com/katalvlaran/gedembed/ged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallerSource(t *testing.T) {
	path3 := structural(t, builder.MustBuildGraph(nil, builder.Path(3)), 0)
	cycle3 := structural(t, builder.MustBuildGraph(nil, builder.Cycle(3)), 1)
	path4 := structural(t, builder.MustBuildGraph(nil, builder.Path(4)), 2)
	star4 := structural(t, builder.MustBuildGraph(nil, builder.Star(4)), 3)

	sel := ged.SmallerSource{}
	assert.True(t, sel.Symmetric())

	// Fewer nodes wins regardless of side.
	assert.True(t, sel.TestIsSource(path3, path4))
	assert.False(t, sel.TestIsSource(path4, path3))

	// Equal order: fewer edges wins.
	assert.True(t, sel.TestIsSource(path3, cycle3))
	assert.False(t, sel.TestIsSource(cycle3, path3))

	// Equal order and size: fingerprint decides, consistently in both orders.
	require.Equal(t, path4.Graph.Size(), star4.Graph.Size())
	assert.NotEqual(t, sel.TestIsSource(path4, star4), sel.TestIsSource(star4, path4))

	// Identical content: the test side.
	assert.True(t, sel.TestIsSource(path4, path4))

	tieTest := ged.SmallerSource{Tie: ged.TieTest}
	assert.False(t, tieTest.Symmetric())
	assert.True(t, tieTest.TestIsSource(cycle3, path3))
	assert.True(t, tieTest.TestIsSource(path3, cycle3))
}

func TestEntry(t *testing.T) {
	g := builder.MustBuildGraph(nil, builder.Cycle(4))
	a := structural(t, g, 0)
	b := structural(t, g, 9)
	require.NoError(t, a.Validate())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "ID is not part of the fingerprint")

	c := structural(t, builder.MustBuildGraph(nil, builder.Path(4)), 0)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestParse(t *testing.T) {
	r, err := ged.ParseTieRule("test")
	require.NoError(t, err)
	assert.Equal(t, ged.TieTest, r)
	_, err = ged.ParseTieRule("nope")
	assert.Error(t, err)

	p, err := ged.ParseFailurePolicy("isolate")
	require.NoError(t, err)
	assert.Equal(t, ged.Isolate, p)
	_, err = ged.ParseFailurePolicy("nope")
	assert.ErrorIs(t, err, ged.ErrUnknownPolicy)

	assert.Equal(t, "assignment", ged.StageAssignment.String())
	assert.Equal(t, "fail-fast", ged.FailFast.String())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { ged.WithWorkers(0) })
	assert.Panics(t, func() { ged.WithPairCache(-1) })
	assert.Panics(t, func() { ged.WithRoleSelector(nil) })
	assert.Panics(t, func() { ged.WithFailurePolicy(ged.FailurePolicy(5)) })

	o := ged.DefaultOptions()
	assert.GreaterOrEqual(t, o.Workers, 1)
	assert.Equal(t, ged.FailFast, o.Policy)
	assert.NotNil(t, o.Logger)
}
