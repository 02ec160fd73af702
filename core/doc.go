// Package core defines the immutable, index-addressed Graph used by the
// edit-distance engine.
//
// A Graph G = (V,E) has nodes 0..n-1 and a set of undirected simple edges.
// Every edge is stored canonically as (min,max), so (u,v) and (v,u) name the
// same edge. Optional per-node attributes travel with the graph:
//
//   - WithLabels(labels)     one integer label per node (e.g. atom type)
//   - WithFeatures(features) one real feature vector per node
//
// Graphs are validated once in NewGraph and never mutated afterwards, so a
// single *Graph may be shared by any number of goroutines without locking.
// The distance-matrix orchestrator relies on this: thousands of cells read
// the same graphs concurrently.
//
// Determinism:
//
//	Edges() and Neighbors(u) return sorted results, and Fingerprint() is a
//	stable 64-bit digest of order, edges and attributes. Two graphs with equal
//	content have equal fingerprints on every platform.
//
// Complexity:
//
//	NewGraph        O(n + E log E)
//	HasEdge         O(1)
//	Neighbors/Edges O(deg(u)) / O(E) (copies)
//
// Errors:
//
//	ErrNegativeOrder   - n < 0.
//	ErrNodeOutOfRange  - an edge endpoint is outside [0,n).
//	ErrLoopNotAllowed  - an edge (v,v) was supplied.
//	ErrAttributeLength - labels/features length differs from n.
package core
