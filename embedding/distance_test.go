package embedding_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gedembed/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomVectors returns n deterministic vectors of dimension d.
func randomVectors(rng *rand.Rand, n, d int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
		for k := range out[i] {
			out[i][k] = rng.NormFloat64()
		}
	}

	return out
}

// TestNew_Validation covers ragged and non-finite inputs.
func TestNew_Validation(t *testing.T) {
	_, err := embedding.New([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, embedding.ErrRaggedVectors)

	_, err = embedding.New([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, embedding.ErrNonFinite)

	e, err := embedding.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, 0, e.Dim())
}

// TestEmbedding_Accessors ensures copies do not alias internal storage.
func TestEmbedding_Accessors(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	e := embedding.MustNew(src)
	src[0][0] = 100

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, 2, e.Dim())
	v := e.Vector(0)
	assert.Equal(t, []float64{1, 2}, v)
	v[0] = 9
	assert.Equal(t, []float64{1, 2}, e.Vector(0))
	assert.Nil(t, e.Vector(2))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, e.Vectors())
}

// TestFingerprint distinguishes content and shape.
func TestFingerprint(t *testing.T) {
	a := embedding.MustNew([][]float64{{1, 2}, {3, 4}})
	b := embedding.MustNew([][]float64{{1, 2}, {3, 4}})
	c := embedding.MustNew([][]float64{{1, 2, 3, 4}})
	d := embedding.MustNew([][]float64{{1, 2}, {3, 5}})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

// TestDistances_DimensionMismatch verifies the pair-level sentinel and that
// empty embeddings are compatible with any dimension.
func TestDistances_DimensionMismatch(t *testing.T) {
	a := embedding.MustNew([][]float64{{1, 2}})
	b := embedding.MustNew([][]float64{{1, 2, 3}})

	_, err := embedding.Distances(a, b)
	assert.ErrorIs(t, err, embedding.ErrDimensionMismatch)

	empty := embedding.MustNew(nil)
	d, err := embedding.Distances(empty, b)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Rows())
	assert.Equal(t, 1, d.Cols())
}

// TestDistances_Euclidean checks concrete values on a 3-4-5 triangle.
func TestDistances_Euclidean(t *testing.T) {
	a := embedding.MustNew([][]float64{{0, 0}, {3, 0}})
	b := embedding.MustNew([][]float64{{0, 0}, {3, 4}, {0, 4}})

	d, err := embedding.Distances(a, b)
	require.NoError(t, err)
	want := [][]float64{{0, 5, 4}, {3, 4, 5}}
	for i := range want {
		assert.InDeltaSlice(t, want[i], d.Row(i), 1e-12)
	}
}

// TestDistance_SymmetryAndIdentity is the property check: d(a,b)==d(b,a)
// bit-for-bit and d(a,a)==0 for every L-metric.
func TestDistance_SymmetryAndIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	vecs := randomVectors(rng, 20, 16)
	for _, m := range []embedding.Metric{embedding.Euclidean, embedding.SquaredEuclidean, embedding.Manhattan, embedding.Cosine} {
		for i := range vecs {
			for j := range vecs {
				assert.Equal(t, embedding.Distance(vecs[i], vecs[j], m), embedding.Distance(vecs[j], vecs[i], m), "%v symmetric", m)
			}
			self := embedding.Distance(vecs[i], vecs[i], m)
			if m == embedding.Cosine {
				assert.InDelta(t, 0, self, 1e-12)
			} else {
				assert.Equal(t, 0.0, self, "%v identity", m)
			}
		}
	}
}

// TestDistance_Cosine covers zero vectors and clamping.
func TestDistance_Cosine(t *testing.T) {
	zero := []float64{0, 0}
	x := []float64{1, 0}
	y := []float64{0, 2}
	neg := []float64{-3, 0}

	assert.Equal(t, 0.0, embedding.Distance(zero, zero, embedding.Cosine))
	assert.Equal(t, 1.0, embedding.Distance(zero, x, embedding.Cosine))
	assert.InDelta(t, 1.0, embedding.Distance(x, y, embedding.Cosine), 1e-12)
	assert.InDelta(t, 2.0, embedding.Distance(x, neg, embedding.Cosine), 1e-12)
	assert.InDelta(t, 7.0, embedding.Distance([]float64{1, 2}, []float64{4, 6}, embedding.Manhattan), 1e-12)
}

// TestDistances_GramAgreesWithPairwise compares the batched path to the exact one.
func TestDistances_GramAgreesWithPairwise(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := embedding.MustNew(randomVectors(rng, 13, 32))
	b := embedding.MustNew(randomVectors(rng, 21, 32))

	for _, m := range []embedding.Metric{embedding.Euclidean, embedding.SquaredEuclidean} {
		exact, err := embedding.Distances(a, b, embedding.WithMetric(m))
		require.NoError(t, err)
		fast, err := embedding.Distances(a, b, embedding.WithMetric(m), embedding.WithStrategy(embedding.Gram))
		require.NoError(t, err)
		for i := 0; i < exact.Rows(); i++ {
			assert.InDeltaSlice(t, exact.Row(i), fast.Row(i), 1e-9, "%v row %d", m, i)
		}
	}

	_, err := embedding.Distances(a, b, embedding.WithMetric(embedding.Cosine), embedding.WithStrategy(embedding.Gram))
	assert.ErrorIs(t, err, embedding.ErrUnsupportedStrategy)
}

// TestDistances_ZeroWidth ensures zero-dimensional vectors yield a zero matrix.
func TestDistances_ZeroWidth(t *testing.T) {
	a := embedding.MustNew([][]float64{{}, {}})
	b := embedding.MustNew([][]float64{{}})
	d, err := embedding.Distances(a, b, embedding.WithStrategy(embedding.Gram))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, d.RawData())
}

// TestParseMetric maps config names and rejects unknown ones.
func TestParseMetric(t *testing.T) {
	for name, want := range map[string]embedding.Metric{
		"":            embedding.Euclidean,
		"l2":          embedding.Euclidean,
		"sqeuclidean": embedding.SquaredEuclidean,
		"l1":          embedding.Manhattan,
		"cosine":      embedding.Cosine,
	} {
		got, err := embedding.ParseMetric(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if name != "" {
			round, err := embedding.ParseMetric(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, round)
		}
	}
	_, err := embedding.ParseMetric("hamming")
	assert.ErrorIs(t, err, embedding.ErrUnknownMetric)
	assert.Panics(t, func() { embedding.WithMetric(embedding.Metric(42)) })
}

func TestParseStrategy(t *testing.T) {
	got, err := embedding.ParseStrategy("gram")
	require.NoError(t, err)
	assert.Equal(t, embedding.Gram, got)

	got, err = embedding.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, embedding.Pairwise, got)

	_, err = embedding.ParseStrategy("blocked")
	assert.ErrorIs(t, err, embedding.ErrUnknownStrategy)
}
