// Package editcost turns a node correspondence into graph-edit costs.
//
// Given a correspondence π from source nodes (the smaller graph) into target
// nodes, the edit path it induces is:
//
//   - substitute every source node i by target node π(i);
//   - insert every target node outside the image of π;
//   - delete every source edge (u,v) whose image (π(u),π(v)) is not a target edge;
//   - insert every target edge (p,q) between matched nodes whose pre-image is
//     not a source edge.
//
// Edges touching inserted target nodes are covered by the node insertion and
// are not charged again, unless WithInsertedNodeEdges(true) is set.
//
// Node policies:
//
//	UnitCost (default)   – SubstitutionCost per matched pair whose attributes
//	                       differ (labels, else features; graphs without
//	                       attributes never mismatch) + InsertionCost per
//	                       inserted node. Integer-valued with unit costs.
//	EmbeddingWeighted    – SubstitutionCost × D[i][π(i)] per matched pair
//	                       (requires the distance matrix) + insertions.
//
// Complexity: O(m + n + E_src + E_tgt) with O(1) edge membership.
package editcost
