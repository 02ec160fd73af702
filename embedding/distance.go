package embedding

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gedembed/matrix"
	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Distance returns dist(a,b) under metric m. a and b must have equal length;
// Distances validates that before entering the hot loop, so this kernel does not.
//
// Complexity: O(d).
func Distance(a, b []float64, m Metric) float64 {
	switch m {
	case SquaredEuclidean:
		d := vek.Distance(a, b)
		return d * d
	case Manhattan:
		return vek.ManhattanDistance(a, b)
	case Cosine:
		return cosineDistance(a, b)
	default:
		return vek.Distance(a, b)
	}
}

// cosineDistance is 1 − a·b/(|a||b|) clamped to [0,2].
// Zero vectors carry no direction: two of them coincide (0), one against a
// non-zero vector is orthogonal (1).
func cosineDistance(a, b []float64) float64 {
	na, nb := vek.Norm(a), vek.Norm(b)
	switch {
	case na == 0 && nb == 0:
		return 0
	case na == 0 || nb == 0:
		return 1
	}
	d := 1 - vek.Dot(a, b)/(na*nb)
	if d < 0 {
		return 0
	}
	if d > 2 {
		return 2
	}

	return d
}

// Distances computes the |src|×|tgt| node-distance matrix.
//
// Stage 1 (Validate): dimension compatibility and strategy/metric support.
// Stage 2 (Prepare): allocate the result; empty sides short-circuit.
// Stage 3 (Execute): Pairwise kernels or one Gram product.
//
// Complexity: O(m·n·d) time, O(m·n) memory.
func Distances(src, tgt Embedding, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts)
	if err := CheckCompatible(src, tgt); err != nil {
		return nil, fmt.Errorf("embedding.Distances: %w", err)
	}
	if o.Strategy == Gram && o.Metric != Euclidean && o.Metric != SquaredEuclidean {
		return nil, fmt.Errorf("embedding.Distances: %v with %v: %w", o.Strategy, o.Metric, ErrUnsupportedStrategy)
	}

	m, n := src.n, tgt.n
	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	// Empty graphs or zero-width vectors: every distance is 0 (or nothing to fill).
	if m == 0 || n == 0 || src.dim == 0 {
		return out, nil
	}

	if o.Strategy == Gram {
		gram(src, tgt, o.Metric == SquaredEuclidean, out.RawData())
		return out, nil
	}

	data := out.RawData()
	for i := 0; i < m; i++ {
		a := src.row(i)
		row := data[i*n : (i+1)*n]
		for j := range row {
			row[j] = Distance(a, tgt.row(j), o.Metric)
		}
	}

	return out, nil
}

// gram fills out (row-major m×n) with ||a_i||² + ||b_j||² − 2·a_i·b_j,
// clamped at 0 and square-rooted unless squared is set.
func gram(src, tgt Embedding, squared bool, out []float64) {
	m, n, d := src.n, tgt.n, src.dim

	a := mat.NewDense(m, d, src.data)
	b := mat.NewDense(n, d, tgt.data)
	prod := mat.NewDense(m, n, out)
	prod.Mul(a, b.T())

	sqA := make([]float64, m)
	for i := range sqA {
		r := src.row(i)
		sqA[i] = floats.Dot(r, r)
	}
	sqB := make([]float64, n)
	for j := range sqB {
		r := tgt.row(j)
		sqB[j] = floats.Dot(r, r)
	}

	for i := 0; i < m; i++ {
		row := out[i*n : (i+1)*n]
		for j := range row {
			v := sqA[i] + sqB[j] - 2*row[j]
			if v < 0 {
				v = 0
			}
			if !squared {
				v = math.Sqrt(v)
			}
			row[j] = v
		}
	}
}
