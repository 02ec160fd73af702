package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gedembed/dataset"
	"github.com/katalvlaran/gedembed/embedding"
	"github.com/katalvlaran/gedembed/ged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train_embeddings.json")
	in := []dataset.Indexed{
		{Index: 1, Embedding: embedding.MustNew([][]float64{{1, 2}, {3, 4}})},
		{Index: 0, Embedding: embedding.MustNew([][]float64{{0.5, -0.5}, {0, 0}, {1, 1}})},
	}
	require.NoError(t, dataset.SaveEmbeddings(path, in))

	out, err := dataset.LoadEmbeddings(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Index, "file order is preserved")
	assert.Equal(t, 0, out[1].Index)
	assert.Equal(t, in[1].Embedding.Vectors(), out[1].Embedding.Vectors())
	assert.Equal(t, in[0].Embedding.Fingerprint(), out[0].Embedding.Fingerprint())
}

func TestLoadEmbeddings_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	_, err := dataset.LoadEmbeddings(write("dup.json", `[{"index":1,"vectors":[[1]]},{"index":1,"vectors":[[2]]}]`))
	assert.ErrorIs(t, err, dataset.ErrDuplicateIndex)

	_, err = dataset.LoadEmbeddings(write("bad.json", `{"index":1}`))
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.LoadEmbeddings(write("ragged.json", `[{"index":0,"vectors":[[1,2],[3]]}]`))
	assert.ErrorIs(t, err, embedding.ErrRaggedVectors)

	_, err = dataset.LoadEmbeddings(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	root := t.TempDir()
	writeTU(t, filepath.Join(root, "TOY", "raw"), "TOY", toyFiles())
	ds, err := dataset.LoadTU(root, "TOY")
	require.NoError(t, err)

	embs := []dataset.Indexed{
		{Index: 1, Embedding: embedding.MustNew([][]float64{{1}, {2}})},
		{Index: 0, Embedding: embedding.MustNew([][]float64{{1}, {2}, {3}})},
	}
	entries, err := dataset.Entries(ds, embs)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Same(t, ds.Graphs[1], entries[0].Graph)

	_, err = dataset.Entries(ds, []dataset.Indexed{{Index: 5}})
	assert.ErrorIs(t, err, dataset.ErrIndexOutOfRange)

	_, err = dataset.Entries(ds, []dataset.Indexed{{Index: 0, Embedding: embedding.MustNew([][]float64{{1}})}})
	assert.ErrorIs(t, err, ged.ErrEmbeddingOrder)
}
