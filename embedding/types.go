package embedding

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors for embedding construction and distance computation.
var (
	// ErrDimensionMismatch indicates that two embeddings in one pair have
	// vectors of different length.
	ErrDimensionMismatch = errors.New("embedding: dimension mismatch")

	// ErrRaggedVectors indicates that vectors inside a single embedding differ in length.
	ErrRaggedVectors = errors.New("embedding: vectors have different lengths")

	// ErrNonFinite indicates a NaN or ±Inf component.
	ErrNonFinite = errors.New("embedding: NaN or Inf component")

	// ErrUnsupportedStrategy indicates a Strategy/Metric combination that has no kernel.
	ErrUnsupportedStrategy = errors.New("embedding: strategy does not support metric")

	// ErrUnknownMetric indicates a Metric value outside the declared constants.
	ErrUnknownMetric = errors.New("embedding: unknown metric")

	// ErrUnknownStrategy indicates a Strategy name outside the declared constants.
	ErrUnknownStrategy = errors.New("embedding: unknown strategy")
)

// Embedding is an immutable, index-aligned set of node vectors stored
// row-major: vector i occupies data[i*dim:(i+1)*dim].
type Embedding struct {
	n, dim int
	data   []float64
}

// New validates and copies vectors into an Embedding.
// An empty slice is a valid embedding of an empty graph (Len()==0, Dim()==0).
// Complexity: O(n·d).
func New(vectors [][]float64) (Embedding, error) {
	n := len(vectors)
	if n == 0 {
		return Embedding{}, nil
	}
	dim := len(vectors[0])
	data := make([]float64, 0, n*dim)
	for i, v := range vectors {
		if len(v) != dim {
			return Embedding{}, fmt.Errorf("embedding.New: vector %d has dim %d, want %d: %w", i, len(v), dim, ErrRaggedVectors)
		}
		for k, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return Embedding{}, fmt.Errorf("embedding.New: vector %d component %d: %w", i, k, ErrNonFinite)
			}
		}
		data = append(data, v...)
	}

	return Embedding{n: n, dim: dim, data: data}, nil
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(vectors [][]float64) Embedding {
	e, err := New(vectors)
	if err != nil {
		panic(err)
	}

	return e
}

// Len returns the number of vectors (== graph order).
func (e Embedding) Len() int { return e.n }

// Dim returns the vector dimension (0 for an empty embedding).
func (e Embedding) Dim() int { return e.dim }

// Vector returns a copy of vector i, or nil when out of range.
func (e Embedding) Vector(i int) []float64 {
	if i < 0 || i >= e.n {
		return nil
	}

	return append([]float64(nil), e.row(i)...)
}

// Vectors returns a deep copy of all vectors.
func (e Embedding) Vectors() [][]float64 {
	out := make([][]float64, e.n)
	for i := range out {
		out[i] = e.Vector(i)
	}

	return out
}

// row returns the internal read-only view of vector i.
func (e Embedding) row(i int) []float64 {
	return e.data[i*e.dim : (i+1)*e.dim : (i+1)*e.dim]
}

// Fingerprint returns a stable xxhash64 digest of shape and raw float bits.
// Complexity: O(n·d).
func (e Embedding) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(e.n))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(e.dim))
	_, _ = d.Write(buf[:])
	for _, x := range e.data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// CheckCompatible returns ErrDimensionMismatch when both embeddings are
// non-empty and their dimensions differ. Empty embeddings are compatible with
// anything: an empty graph contributes no vectors to compare.
func CheckCompatible(a, b Embedding) error {
	if a.n == 0 || b.n == 0 {
		return nil
	}
	if a.dim != b.dim {
		return fmt.Errorf("source dim %d, target dim %d: %w", a.dim, b.dim, ErrDimensionMismatch)
	}

	return nil
}
