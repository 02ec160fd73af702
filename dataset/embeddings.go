package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/gedembed/embedding"
	"github.com/katalvlaran/gedembed/ged"
)

// Indexed is the embedding of one dataset graph.
type Indexed struct {
	Index     int
	Embedding embedding.Embedding
}

// record is the on-disk shape of Indexed.
type record struct {
	Index   int         `json:"index"`
	Vectors [][]float64 `json:"vectors"`
}

// LoadEmbeddings reads a JSON embedding file, preserving record order.
// Duplicate indices yield ErrDuplicateIndex; ragged or non-finite vectors
// yield the embedding package sentinels.
func LoadEmbeddings(path string) ([]Indexed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadEmbeddings: %w", err)
	}
	var recs []record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("LoadEmbeddings: %s: %v: %w", path, err, ErrMalformed)
	}

	out := make([]Indexed, len(recs))
	seen := make(map[int]struct{}, len(recs))
	for i, r := range recs {
		if _, dup := seen[r.Index]; dup {
			return nil, fmt.Errorf("LoadEmbeddings: %s: index %d: %w", path, r.Index, ErrDuplicateIndex)
		}
		seen[r.Index] = struct{}{}
		e, err := embedding.New(r.Vectors)
		if err != nil {
			return nil, fmt.Errorf("LoadEmbeddings: %s: index %d: %w", path, r.Index, err)
		}
		out[i] = Indexed{Index: r.Index, Embedding: e}
	}

	return out, nil
}

// SaveEmbeddings writes embeddings in the LoadEmbeddings format.
func SaveEmbeddings(path string, embs []Indexed) error {
	recs := make([]record, len(embs))
	for i, e := range embs {
		recs[i] = record{Index: e.Index, Vectors: e.Embedding.Vectors()}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("SaveEmbeddings: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("SaveEmbeddings: %w", err)
	}

	return nil
}

// Entries joins embeddings with the dataset graphs they index, in embedding
// order. Each entry's ID is its dataset index.
func Entries(ds *Dataset, embs []Indexed) ([]ged.Entry, error) {
	out := make([]ged.Entry, len(embs))
	for i, e := range embs {
		if e.Index < 0 || e.Index >= ds.Len() {
			return nil, fmt.Errorf("Entries: index %d of %d graphs: %w", e.Index, ds.Len(), ErrIndexOutOfRange)
		}
		entry := ged.Entry{Graph: ds.Graphs[e.Index], Embedding: e.Embedding, ID: e.Index}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("Entries: %w", err)
		}
		out[i] = entry
	}

	return out, nil
}
