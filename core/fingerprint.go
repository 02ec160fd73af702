package core

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Attribute-kind tags keep a labelled graph from colliding with an unlabelled
// graph whose bytes happen to line up.
const (
	tagEdges    byte = 'E'
	tagLabels   byte = 'L'
	tagFeatures byte = 'F'
)

// fingerprint hashes order, canonical edges and attributes with xxhash64.
// Edges are already sorted, so the digest is independent of input order.
// Complexity: O(n·f + E).
func fingerprint(g *Graph) uint64 {
	d := xxhash.New()
	var buf [8]byte

	putInt := func(x int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(x)))
		_, _ = d.Write(buf[:])
	}
	putFloat := func(x float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		_, _ = d.Write(buf[:])
	}

	putInt(g.n)
	_, _ = d.Write([]byte{tagEdges})
	putInt(len(g.edges))
	for _, e := range g.edges {
		putInt(e.U)
		putInt(e.V)
	}
	if g.hasLabels {
		_, _ = d.Write([]byte{tagLabels})
		for _, l := range g.labels {
			putInt(l)
		}
	}
	if g.hasFeatures {
		_, _ = d.Write([]byte{tagFeatures})
		for _, f := range g.features {
			putInt(len(f))
			for _, x := range f {
				putFloat(x)
			}
		}
	}

	return d.Sum64()
}
