package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gedembed/dataset"
	"github.com/katalvlaran/gedembed/store"
)

// Index files shared with the model-training pipeline.
const (
	trainIndicesFile = "train_indices.npy"
	testIndicesFile  = "test_indices.npy"
)

type splitFlags struct {
	datasetDir   string
	datasetName  string
	outputDir    string
	testFraction float64
	seed         int64
}

func newSplitCmd(logger loggerFunc) *cobra.Command {
	var f splitFlags

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Draw a seeded train/test split of a dataset",
		Long: `Shuffle the graphs of a dataset with --seed and write the train and test
indices to <output-dir>/train_indices.npy and test_indices.npy (int64, the
layout numpy.save produces). Embedding files for "gedmatrix distances" are
expected to cover exactly these indices.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSplit(f, logger(cmd.ErrOrStderr()), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.datasetDir, "dataset-dir", "data", "Directory holding TUDataset collections")
	cmd.Flags().StringVar(&f.datasetName, "dataset-name", "", "TUDataset name, e.g. MUTAG")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "Directory receiving the index files")
	cmd.Flags().Float64Var(&f.testFraction, "test-fraction", 0.1, "Share of graphs in the test split")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "Shuffle seed")
	_ = cmd.MarkFlagRequired("dataset-name")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

func runSplit(f splitFlags, log *slog.Logger, out io.Writer) error {
	ds, err := dataset.LoadTU(f.datasetDir, f.datasetName)
	if err != nil {
		return err
	}
	train, test, err := dataset.Split(ds.Len(), f.testFraction, f.seed)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return err
	}
	if err := store.WriteIndices(filepath.Join(f.outputDir, trainIndicesFile), train); err != nil {
		return err
	}
	if err := store.WriteIndices(filepath.Join(f.outputDir, testIndicesFile), test); err != nil {
		return err
	}
	log.Info("Split written.", "dir", f.outputDir, "seed", f.seed, "train", len(train), "test", len(test))

	fmt.Fprintf(out, "Split %s: %d train, %d test.\n", ds.Name, len(train), len(test))

	return nil
}
