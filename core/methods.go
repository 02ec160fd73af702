package core

// Order returns the number of nodes n.
// Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// Size returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// Empty reports whether the graph has no nodes.
func (g *Graph) Empty() bool { return g.n == 0 }

// HasEdge reports whether {u,v} is an edge. Out-of-range or equal endpoints
// simply yield false; membership queries never fail.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u == v {
		return false
	}
	_, ok := g.set[canonical(u, v)]

	return ok
}

// Edges returns a copy of the canonical edge list sorted by (U,V).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Neighbors returns a sorted copy of u's neighbors, or nil when u is out of range.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n {
		return nil
	}

	return append([]int(nil), g.adj[u]...)
}

// Degree returns the number of neighbors of u (0 when out of range).
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}

	return len(g.adj[u])
}

// HasLabels reports whether the graph was built WithLabels.
func (g *Graph) HasLabels() bool { return g.hasLabels }

// HasFeatures reports whether the graph was built WithFeatures.
func (g *Graph) HasFeatures() bool { return g.hasFeatures }

// Label returns u's label; ok is false when the graph has no labels or u is
// out of range.
func (g *Graph) Label(u int) (label int, ok bool) {
	if !g.hasLabels || u < 0 || u >= g.n {
		return 0, false
	}

	return g.labels[u], true
}

// Features returns a copy of u's feature vector, or nil when absent.
func (g *Graph) Features(u int) []float64 {
	if !g.hasFeatures || u < 0 || u >= g.n {
		return nil
	}

	return append([]float64(nil), g.features[u]...)
}

// Fingerprint returns the stable content digest computed at construction.
func (g *Graph) Fingerprint() uint64 { return g.fp }

// AttributesEqual compares node u of a with node v of b.
//
// Labels take precedence: when both graphs carry labels they decide equality.
// Otherwise, when both carry features, the vectors must match element-wise.
// comparable is false when the graphs share no attribute kind; equal is then
// false as well and callers treat the pair as indistinguishable.
//
// Complexity: O(1) for labels, O(f) for features.
func AttributesEqual(a *Graph, u int, b *Graph, v int) (equal, comparable bool) {
	if u < 0 || u >= a.n || v < 0 || v >= b.n {
		return false, false
	}
	if a.hasLabels && b.hasLabels {
		return a.labels[u] == b.labels[v], true
	}
	if a.hasFeatures && b.hasFeatures {
		fa, fb := a.features[u], b.features[v]
		if len(fa) != len(fb) {
			return false, true
		}
		for i := range fa {
			if fa[i] != fb[i] {
				return false, true
			}
		}

		return true, true
	}

	return false, false
}

// EachEdge calls fn for every edge in canonical (U,V) order without copying.
// Complexity: O(E).
func (g *Graph) EachEdge(fn func(e Edge)) {
	for _, e := range g.edges {
		fn(e)
	}
}
