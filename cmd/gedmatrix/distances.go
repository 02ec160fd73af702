package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gedembed/config"
	"github.com/katalvlaran/gedembed/dataset"
	"github.com/katalvlaran/gedembed/ged"
	"github.com/katalvlaran/gedembed/store"
)

// File names inside --output-dir.
const (
	trainEmbeddingsFile = "train_embeddings.json"
	testEmbeddingsFile  = "test_embeddings.json"
	distancesNPYFile    = "distances.npy"
	distancesCSVFile    = "distances.csv"
)

type distancesFlags struct {
	datasetDir  string
	datasetName string
	outputDir   string
	configPath  string
	sqlitePath  string
	workers     int
	csv         bool
	int32       bool
}

func newDistancesCmd(logger loggerFunc) *cobra.Command {
	var f distancesFlags

	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Compute the test×train distance matrix",
		Long: `Compute the approximate graph edit distance between every test and train
graph and write it to <output-dir>/distances.npy.

The embeddings are read from <output-dir>/train_embeddings.json and
<output-dir>/test_embeddings.json; each record's index selects the dataset
graph it embeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDistances(cmd.Context(), f, logger(cmd.ErrOrStderr()), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.datasetDir, "dataset-dir", "data", "Directory holding TUDataset collections")
	cmd.Flags().StringVar(&f.datasetName, "dataset-name", "", "TUDataset name, e.g. MUTAG")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "Directory with the embedding files; receives the results")
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML run configuration (default $"+config.EnvConfigPath+")")
	cmd.Flags().StringVar(&f.sqlitePath, "sqlite", "", "Also record the run in this SQLite database")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Concurrent cells (overrides the configuration)")
	cmd.Flags().BoolVar(&f.csv, "csv", false, "Also write "+distancesCSVFile)
	cmd.Flags().BoolVar(&f.int32, "int32", false, "Write "+distancesNPYFile+" as rounded int32 with failed cells as -1")
	_ = cmd.MarkFlagRequired("dataset-name")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

// runDistances is the distances command body. workers == 0 keeps the
// configured pool size.
func runDistances(ctx context.Context, f distancesFlags, log *slog.Logger, out io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.workers != 0 {
		cfg.Run.Workers = f.workers
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	ds, err := dataset.LoadTU(f.datasetDir, f.datasetName)
	if err != nil {
		return err
	}
	log.Info("Dataset loaded.", "dataset", ds.Name, "graphs", ds.Len(), "droppedLoops", ds.DroppedLoops)

	train, err := loadEntries(ds, filepath.Join(f.outputDir, trainEmbeddingsFile))
	if err != nil {
		return err
	}
	test, err := loadEntries(ds, filepath.Join(f.outputDir, testEmbeddingsFile))
	if err != nil {
		return err
	}

	opts = append(opts, ged.WithLogger(log))
	res, err := ged.DistanceMatrix(ctx, test, train, opts...)
	if err != nil {
		return fmt.Errorf("distances: %w", err)
	}
	if res.Failed() > 0 {
		log.Warn("Some cells failed and were left as NaN.", "failed", res.Failed(), "error", res.Err())
	}

	npyPath := filepath.Join(f.outputDir, distancesNPYFile)
	write := store.WriteNPY
	if f.int32 {
		write = store.WriteNPYInt32
	}
	if err := write(npyPath, res.Distances); err != nil {
		return err
	}
	log.Info("Distance matrix written.", "path", npyPath, "rows", res.Distances.Rows(), "cols", res.Distances.Cols(), "int32", f.int32)

	testIDs, trainIDs := entryIDs(test), entryIDs(train)
	if f.csv {
		if err := writeCSVFile(filepath.Join(f.outputDir, distancesCSVFile), res, testIDs, trainIDs); err != nil {
			return err
		}
	}
	if f.sqlitePath != "" {
		id, err := recordRun(ctx, f.sqlitePath, store.Run{
			Dataset:  ds.Name,
			Created:  time.Now(),
			Elapsed:  res.Elapsed,
			Failed:   res.Failed(),
			TestIDs:  testIDs,
			TrainIDs: trainIDs,
		}, res)
		if err != nil {
			return err
		}
		log.Info("Run recorded.", "db", f.sqlitePath, "run", id)
	}

	fmt.Fprintf(out, "Computation time: %s\n", res.Elapsed)

	return nil
}

func loadEntries(ds *dataset.Dataset, path string) ([]ged.Entry, error) {
	embs, err := dataset.LoadEmbeddings(path)
	if err != nil {
		return nil, err
	}
	entries, err := dataset.Entries(ds, embs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}

func entryIDs(entries []ged.Entry) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	return ids
}

func writeCSVFile(path string, res *ged.Result, testIDs, trainIDs []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return store.WriteCSV(f, res.Distances, testIDs, trainIDs)
}

func recordRun(ctx context.Context, path string, run store.Run, res *ged.Result) (string, error) {
	db, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	return db.SaveRun(ctx, run, res.Distances)
}
