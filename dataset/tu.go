package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/gedembed/core"
)

// Dataset is a loaded graph collection.
type Dataset struct {
	// Name is the TUDataset name, e.g. "MUTAG".
	Name string

	// Graphs are indexed by dataset position (graph id − 1).
	Graphs []*core.Graph

	// GraphLabels holds one class per graph, or nil when the file is absent.
	GraphLabels []int

	// DroppedLoops counts self-loop lines skipped while reading edges.
	DroppedLoops int
}

// Len returns the number of graphs.
func (d *Dataset) Len() int { return len(d.Graphs) }

// tuFiles resolves the file paths of a dataset.
type tuFiles struct {
	dir  string
	name string
}

func (f tuFiles) path(suffix string) string {
	return filepath.Join(f.dir, f.name+"_"+suffix+".txt")
}

// locate finds <dir>/<name>/raw or <dir>/<name> holding <name>_A.txt.
func locate(dir, name string) (tuFiles, error) {
	for _, d := range []string{
		filepath.Join(dir, name, "raw"),
		filepath.Join(dir, name),
		dir,
	} {
		f := tuFiles{dir: d, name: name}
		if _, err := os.Stat(f.path("A")); err == nil {
			return f, nil
		}
	}

	return tuFiles{}, fmt.Errorf("LoadTU: %s_A.txt under %s: %w", name, dir, ErrMissingFile)
}

// LoadTU reads dataset name from dir.
//
// Stage 1: graph indicator → node count per graph and local node ids.
// Stage 2: optional node labels / attributes, sliced per graph.
// Stage 3: edges, checked to stay within one graph.
// Stage 4: build immutable graphs; read optional graph labels.
//
// Complexity: O(N + E) over total nodes N and edge lines E.
func LoadTU(dir, name string) (*Dataset, error) {
	files, err := locate(dir, name)
	if err != nil {
		return nil, err
	}

	indicator, err := readInts(files.path("graph_indicator"), true)
	if err != nil {
		return nil, fmt.Errorf("LoadTU: %w", err)
	}
	graphLabels, err := readInts(files.path("graph_labels"), false)
	if err != nil {
		return nil, fmt.Errorf("LoadTU: %w", err)
	}

	// Nodes of graph g are contiguous (ids non-decreasing); local ids follow file order.
	nGraphs := len(graphLabels)
	local := make([]int, len(indicator))
	counts := []int{}
	for i, gid := range indicator {
		if gid < 1 || (i > 0 && gid < indicator[i-1]) {
			return nil, fmt.Errorf("LoadTU: indicator line %d: graph id %d: %w", i+1, gid, ErrMalformed)
		}
		for len(counts) < gid {
			counts = append(counts, 0)
		}
		local[i] = counts[gid-1]
		counts[gid-1]++
	}
	if len(counts) > nGraphs {
		nGraphs = len(counts)
	}
	for len(counts) < nGraphs {
		counts = append(counts, 0)
	}

	labels, err := readInts(files.path("node_labels"), false)
	if err != nil {
		return nil, fmt.Errorf("LoadTU: %w", err)
	}
	if labels != nil && len(labels) != len(indicator) {
		return nil, fmt.Errorf("LoadTU: %d node labels for %d nodes: %w", len(labels), len(indicator), ErrMalformed)
	}
	attrs, err := readFloatRows(files.path("node_attributes"))
	if err != nil {
		return nil, fmt.Errorf("LoadTU: %w", err)
	}
	if attrs != nil && len(attrs) != len(indicator) {
		return nil, fmt.Errorf("LoadTU: %d attribute rows for %d nodes: %w", len(attrs), len(indicator), ErrMalformed)
	}

	edges := make([][][2]int, nGraphs)
	ds := &Dataset{Name: name}
	err = eachRecord(files.path("A"), true, func(line int, rec []string) error {
		if len(rec) != 2 {
			return fmt.Errorf("%s line %d: %d fields: %w", files.path("A"), line, len(rec), ErrMalformed)
		}
		u, err1 := strconv.Atoi(rec[0])
		v, err2 := strconv.Atoi(rec[1])
		if err1 != nil || err2 != nil || u < 1 || v < 1 || u > len(indicator) || v > len(indicator) {
			return fmt.Errorf("%s line %d: %q: %w", files.path("A"), line, rec, ErrMalformed)
		}
		gu, gv := indicator[u-1], indicator[v-1]
		if gu != gv {
			return fmt.Errorf("%s line %d: edge joins graphs %d and %d: %w", files.path("A"), line, gu, gv, ErrMalformed)
		}
		if u == v {
			ds.DroppedLoops++
			return nil
		}
		edges[gu-1] = append(edges[gu-1], [2]int{local[u-1], local[v-1]})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("LoadTU: %w", err)
	}

	// Global node ids of graph g start at offset[g].
	offset := make([]int, nGraphs+1)
	for g := 0; g < nGraphs; g++ {
		offset[g+1] = offset[g] + counts[g]
	}

	ds.Graphs = make([]*core.Graph, nGraphs)
	for g := 0; g < nGraphs; g++ {
		lo, hi := offset[g], offset[g+1]
		var opts []core.GraphOption
		if labels != nil {
			opts = append(opts, core.WithLabels(labels[lo:hi]))
		}
		if attrs != nil {
			opts = append(opts, core.WithFeatures(attrs[lo:hi]))
		}
		gr, err := core.NewGraph(counts[g], edges[g], opts...)
		if err != nil {
			return nil, fmt.Errorf("LoadTU: graph %d: %w", g+1, err)
		}
		ds.Graphs[g] = gr
	}
	if graphLabels != nil {
		ds.GraphLabels = graphLabels
		for len(ds.GraphLabels) < nGraphs {
			ds.GraphLabels = append(ds.GraphLabels, 0)
		}
	}

	return ds, nil
}

// eachRecord streams comma-separated records with trimmed fields.
// A missing optional file yields no records and no error.
func eachRecord(path string, required bool, fn func(line int, rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return fmt.Errorf("%s: %w", path, ErrMissingFile)
			}
			return nil
		}
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %v: %w", path, err, ErrMalformed)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if len(rec) == 1 && rec[0] == "" {
			continue
		}
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

// readInts reads one integer per line; nil when an optional file is absent.
func readInts(path string, required bool) ([]int, error) {
	var out []int
	found := false
	err := eachRecord(path, required, func(line int, rec []string) error {
		found = true
		x, err := strconv.Atoi(rec[0])
		if err != nil || len(rec) != 1 {
			return fmt.Errorf("%s line %d: %q: %w", path, line, rec, ErrMalformed)
		}
		out = append(out, x)

		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found && !required {
		return nil, nil
	}

	return out, nil
}

// readFloatRows reads comma-separated floats per line; nil when absent.
func readFloatRows(path string) ([][]float64, error) {
	var out [][]float64
	err := eachRecord(path, false, func(line int, rec []string) error {
		row := make([]float64, len(rec))
		for i, s := range rec {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("%s line %d: %q: %w", path, line, s, ErrMalformed)
			}
			row[i] = x
		}
		out = append(out, row)

		return nil
	})

	return out, err
}
