package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder indicates that a negative node count was requested.
	ErrNegativeOrder = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrLoopNotAllowed indicates a self-loop (v,v) in the edge list.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAttributeLength indicates a labels/features slice whose length is not n.
	ErrAttributeLength = errors.New("core: attribute length differs from node count")
)

// Edge is an undirected edge in canonical form: U < V.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// pairKey is the hash-map key for O(1) edge membership.
type pairKey struct {
	u int // smaller endpoint
	v int // larger endpoint
}

// canonical orders the endpoints so that (u,v) and (v,u) share one key.
func canonical(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{u: u, v: v}
}

// GraphOption attaches optional node attributes before validation.
type GraphOption func(g *Graph)

// WithLabels attaches one integer label per node. The slice is copied.
func WithLabels(labels []int) GraphOption {
	return func(g *Graph) {
		g.labels = append([]int(nil), labels...)
		g.hasLabels = true
	}
}

// WithFeatures attaches one feature vector per node. Vectors are deep-copied.
func WithFeatures(features [][]float64) GraphOption {
	return func(g *Graph) {
		g.features = make([][]float64, len(features))
		for i, f := range features {
			g.features[i] = append([]float64(nil), f...)
		}
		g.hasFeatures = true
	}
}

// Graph is an immutable undirected simple graph over nodes 0..n-1.
//
// edges is sorted by (U,V); adj[u] is sorted ascending; set mirrors edges
// for constant-time membership. fp is computed once at construction.
type Graph struct {
	n     int
	edges []Edge
	adj   [][]int
	set   map[pairKey]struct{}

	labels      []int
	hasLabels   bool
	features    [][]float64
	hasFeatures bool

	fp uint64
}

// NewGraph validates and builds a Graph with n nodes and the given edge list.
// Duplicate edges, in either orientation, collapse into a single edge.
//
// Stage 1 (Validate): n ≥ 0, endpoints in range, no self-loops, attribute lengths.
// Stage 2 (Prepare): canonicalize and de-duplicate edges.
// Stage 3 (Finalize): sort, build adjacency and fingerprint.
//
// Complexity: O(n + E log E) time, O(n + E) memory.
func NewGraph(n int, edges [][2]int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(n=%d): %w", n, ErrNegativeOrder)
	}

	g := &Graph{n: n, set: make(map[pairKey]struct{}, len(edges))}
	for _, opt := range opts {
		opt(g)
	}
	if g.hasLabels && len(g.labels) != n {
		return nil, fmt.Errorf("NewGraph: %d labels for %d nodes: %w", len(g.labels), n, ErrAttributeLength)
	}
	if g.hasFeatures && len(g.features) != n {
		return nil, fmt.Errorf("NewGraph: %d feature vectors for %d nodes: %w", len(g.features), n, ErrAttributeLength)
	}

	g.edges = make([]Edge, 0, len(edges))
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d) with n=%d: %w", i, u, v, n, ErrNodeOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d): %w", i, u, v, ErrLoopNotAllowed)
		}
		k := canonical(u, v)
		if _, dup := g.set[k]; dup {
			continue
		}
		g.set[k] = struct{}{}
		g.edges = append(g.edges, Edge{U: k.u, V: k.v})
	}

	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].U != g.edges[j].U {
			return g.edges[i].U < g.edges[j].U
		}
		return g.edges[i].V < g.edges[j].V
	})

	g.adj = make([][]int, n)
	for _, e := range g.edges {
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}
	for u := range g.adj {
		sort.Ints(g.adj[u])
	}

	g.fp = fingerprint(g)

	return g, nil
}

// MustGraph is NewGraph that panics on error. Intended for fixtures and examples.
func MustGraph(n int, edges [][2]int, opts ...GraphOption) *Graph {
	g, err := NewGraph(n, edges, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
