// Package dataset loads graph collections and their node embeddings from disk.
//
// Graphs come in the TUDataset text layout (one directory per dataset,
// optionally under raw/):
//
//	<name>_A.txt               "u, v" per line, 1-based global node ids
//	<name>_graph_indicator.txt graph id (1-based) of node i on line i
//	<name>_node_labels.txt     optional, integer label per node
//	<name>_node_attributes.txt optional, comma-separated floats per node
//	<name>_graph_labels.txt    optional, integer class per graph
//
// Edges are made undirected and de-duplicated; self-loops are dropped and
// counted in Dataset.DroppedLoops.
//
// Embeddings are JSON arrays of {"index": i, "vectors": [[...], ...]} records,
// where index is the graph's position in the dataset; file order is the
// train/test split order and is preserved. Entries joins both into
// ged.Entry lists ready for ged.DistanceMatrix.
package dataset
