package builder

import (
	"fmt"

	"github.com/katalvlaran/gedembed/core"
	"github.com/katalvlaran/gedembed/embedding"
)

// RandomEmbedding samples n vectors of width dim through the configured
// ValueFn, row by row. Requires WithSeed or WithRand.
// Complexity: O(n·dim).
func RandomEmbedding(n, dim int, opts ...BuilderOption) (embedding.Embedding, error) {
	cfg := newBuilderConfig(opts...)
	if n < 0 || dim < 1 {
		return embedding.Embedding{}, fmt.Errorf("%s: n=%d dim=%d: %w", MethodRandomEmbedding, n, dim, ErrBadSize)
	}
	if cfg.rng == nil {
		return embedding.Embedding{}, fmt.Errorf("%s: %w", MethodRandomEmbedding, ErrNeedRandSource)
	}

	vecs := make([][]float64, n)
	for i := range vecs {
		v := make([]float64, dim)
		for k := range v {
			v[k] = cfg.valueFn(cfg.rng)
		}
		vecs[i] = v
	}

	return embedding.New(vecs)
}

// StructuralEmbedding derives a deterministic embedding from topology alone:
// coordinate 0 is the node degree and coordinate k is the mean of coordinate
// k-1 over the node's neighbours (0 for isolated nodes). Relabelling the
// nodes permutes the rows (up to summation rounding), which makes it a
// stand-in for learned message-passing embeddings in tests.
// Complexity: O(dim·(n + E)).
func StructuralEmbedding(g *core.Graph, dim int) (embedding.Embedding, error) {
	if g == nil {
		return embedding.Embedding{}, fmt.Errorf("%s: nil graph: %w", MethodStructural, ErrConstructFailed)
	}
	if dim < 1 {
		return embedding.Embedding{}, fmt.Errorf("%s: dim=%d: %w", MethodStructural, dim, ErrBadSize)
	}

	n := g.Order()
	vecs := make([][]float64, n)
	for u := range vecs {
		vecs[u] = make([]float64, dim)
		vecs[u][0] = float64(g.Degree(u))
	}
	for k := 1; k < dim; k++ {
		for u := 0; u < n; u++ {
			nb := g.Neighbors(u)
			if len(nb) == 0 {
				continue
			}
			var sum float64
			for _, v := range nb {
				sum += vecs[v][k-1]
			}
			vecs[u][k] = sum / float64(len(nb))
		}
	}

	return embedding.New(vecs)
}
