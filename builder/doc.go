// Package builder provides deterministic graph and embedding fixtures for
// tests, examples and benchmarks.
//
// Graphs are assembled from Constructors applied in order to a draft; each
// topology constructor appends a fresh, disjoint component whose node ids
// continue after the previous ones. Connect then joins existing nodes.
// BuildGraph freezes the draft into an immutable *core.Graph.
//
//	g, err := builder.BuildGraph(nil,
//		builder.Cycle(4),         // nodes 0..3
//		builder.Path(2),          // nodes 4..5
//		builder.Connect([2]int{3, 4}),
//	)
//
// Key components:
//
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse (Erdős–Rényi, needs WithSeed/WithRand).
//   - Attributes: WithLabelFn, WithDegreeLabels.
//   - Embeddings: RandomEmbedding (ValueFn samples, seeded) and
//     StructuralEmbedding (degree plus iterated neighbour means; invariant
//     under node relabelling, so isomorphic graphs get permuted embeddings).
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (errors.Is) and never panic.
package builder
