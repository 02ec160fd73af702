// Package config loads gedmatrix run settings from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from DefaultConfig. The path comes from the caller or, when empty, from
// the GEDMATRIX_CONFIG environment variable. GEDMATRIX_WORKERS overrides
// run.workers after the file is read.
//
//	run:
//	  workers: 8
//	  failure_policy: isolate
//	  tie_rule: test        # test graph is source on equal node counts
//	  cache_size: 4096
//	embedding:
//	  metric: euclidean
//	  strategy: pairwise
//	assignment:
//	  algorithm: hungarian
//	cost:
//	  node_policy: unit
//	  substitution: 1
//	  insertion: 1
//	  edge_insertion: 1
//	  edge_deletion: 1
//	  charge_inserted_node_edges: false
//
// Config.Options translates the result into ged options.
package config
