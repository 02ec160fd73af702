package ged

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/gedembed/core"
	"github.com/katalvlaran/gedembed/embedding"
)

// Entry is one graph of a collection together with its node embeddings.
// ID is the caller's dataset index; it only appears in logs and errors.
type Entry struct {
	Graph     *core.Graph
	Embedding embedding.Embedding
	ID        int
}

// Validate checks that the embedding is index-aligned with the graph.
func (e Entry) Validate() error {
	if e.Graph == nil {
		return fmt.Errorf("entry %d: %w", e.ID, ErrNilGraph)
	}
	if e.Embedding.Len() != e.Graph.Order() {
		return fmt.Errorf("entry %d: %d vectors for %d nodes: %w",
			e.ID, e.Embedding.Len(), e.Graph.Order(), ErrEmbeddingOrder)
	}

	return nil
}

// Fingerprint digests the graph and embedding fingerprints; ID is ignored so
// the same graph in two collections hashes identically.
// Complexity: O(n·d).
func (e Entry) Fingerprint() uint64 {
	var buf [16]byte
	if e.Graph != nil {
		binary.LittleEndian.PutUint64(buf[:8], e.Graph.Fingerprint())
	}
	binary.LittleEndian.PutUint64(buf[8:], e.Embedding.Fingerprint())

	return xxhash.Sum64(buf[:])
}
