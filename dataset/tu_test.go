package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gedembed/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTU writes files (suffix → content) for dataset name under dir.
func writeTU(t *testing.T, dir, name string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for suffix, body := range files {
		p := filepath.Join(dir, name+"_"+suffix+".txt")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
}

// toyFiles describes two graphs: a 3-path and a 2-path with a self-loop.
func toyFiles() map[string]string {
	return map[string]string{
		"A":               "1, 2\n2, 1\n2, 3\n3, 2\n4, 5\n5, 4\n5, 5\n",
		"graph_indicator": "1\n1\n1\n2\n2\n",
		"node_labels":     "0\n1\n0\n2\n2\n",
		"graph_labels":    "1\n-1\n",
	}
}

func TestLoadTU(t *testing.T) {
	root := t.TempDir()
	writeTU(t, filepath.Join(root, "TOY", "raw"), "TOY", toyFiles())

	ds, err := dataset.LoadTU(root, "TOY")
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "TOY", ds.Name)
	assert.Equal(t, []int{1, -1}, ds.GraphLabels)
	assert.Equal(t, 1, ds.DroppedLoops)

	g1, g2 := ds.Graphs[0], ds.Graphs[1]
	assert.Equal(t, 3, g1.Order())
	assert.Equal(t, 2, g1.Size())
	assert.True(t, g1.HasEdge(0, 1))
	assert.True(t, g1.HasEdge(1, 2))
	l, ok := g1.Label(1)
	assert.True(t, ok)
	assert.Equal(t, 1, l)

	assert.Equal(t, 2, g2.Order())
	assert.Equal(t, 1, g2.Size())
	l, _ = g2.Label(0)
	assert.Equal(t, 2, l)
}

func TestLoadTU_FlatLayoutAndAttributes(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"A":               "1, 2\n",
		"graph_indicator": "1\n1\n2\n",
		"node_attributes": "0.5, 1.0\n-1, 2\n3, 4\n",
	}
	writeTU(t, filepath.Join(root, "FLAT"), "FLAT", files)

	ds, err := dataset.LoadTU(root, "FLAT")
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Nil(t, ds.GraphLabels)
	assert.True(t, ds.Graphs[0].HasFeatures())
	assert.Equal(t, []float64{-1, 2}, ds.Graphs[0].Features(1))
	assert.Equal(t, 1, ds.Graphs[1].Order())
	assert.Zero(t, ds.Graphs[1].Size())
	assert.False(t, ds.Graphs[1].HasLabels())
}

func TestLoadTU_Errors(t *testing.T) {
	_, err := dataset.LoadTU(t.TempDir(), "NONE")
	assert.ErrorIs(t, err, dataset.ErrMissingFile)

	cases := map[string]map[string]string{
		"cross-graph edge": {
			"A":               "1, 3\n",
			"graph_indicator": "1\n1\n2\n",
		},
		"label count": {
			"A":               "1, 2\n",
			"graph_indicator": "1\n1\n",
			"node_labels":     "0\n",
		},
		"bad number": {
			"A":               "1, x\n",
			"graph_indicator": "1\n1\n",
		},
		"unsorted indicator": {
			"A":               "1, 2\n",
			"graph_indicator": "2\n1\n",
		},
		"node id out of range": {
			"A":               "1, 9\n",
			"graph_indicator": "1\n1\n",
		},
	}
	for name, files := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			writeTU(t, root, "BAD", files)
			_, err := dataset.LoadTU(root, "BAD")
			assert.ErrorIs(t, err, dataset.ErrMalformed)
		})
	}

	root := t.TempDir()
	writeTU(t, root, "NOIND", map[string]string{"A": "1, 2\n"})
	_, err = dataset.LoadTU(root, "NOIND")
	assert.ErrorIs(t, err, dataset.ErrMissingFile)
}
