// Package gedembed approximates graph edit distance (GED) between graphs
// whose nodes carry learned (or structural) embeddings.
//
// 🚀 What does it do?
//
//	For a source graph G₁ (n nodes) and a target graph G₂ (m ≥ n nodes):
//		• Embedding distances: an n×m matrix of node-vector distances
//		• Assignment: an injective node correspondence of minimum total distance
//		• Edit cost: substitutions, insertions and edge edits implied by it
//		• Batch: the |test|×|train| distance matrix over a worker pool
//
// ✨ Layout
//
//	core/       — undirected Graph with optional node labels and features
//	matrix/     — dense row-major float64 matrix, gonum bridge
//	embedding/  — Embedding type and pairwise distance matrices
//	assignment/ — Hungarian, greedy and exhaustive solvers
//	editcost/   — edit cost of a correspondence
//	ged/        — Pair and DistanceMatrix orchestration
//	builder/    — deterministic graph and embedding generators
//	dataset/    — TUDataset loader, embedding files, splits
//	store/      — .npy, CSV and SQLite result persistence
//	config/     — YAML run configuration
//	cmd/gedmatrix — command-line front end
//
// Quick example:
//
//	G₁:  A───B        G₂:  A───B───C
//
//	A→A, B→B, C inserted: node cost 1, edge cost 0, distance 1.
//
//	go install github.com/katalvlaran/gedembed/cmd/gedmatrix@latest
package gedembed
