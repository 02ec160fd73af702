package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gedembed/store"
)

type runsFlags struct {
	sqlitePath string
	dataset    string
	export     string
	deleteID   string
	outputDir  string
}

func newRunsCmd() *cobra.Command {
	var f runsFlags

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List, export or delete recorded distance-matrix runs",
		Long: `List the runs recorded with "gedmatrix distances --sqlite", newest first.

With --export <run-id> the stored matrix is written to
<output-dir>/distances.npy instead. With --delete <run-id> the run and
its cells are removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRuns(cmd.Context(), f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.sqlitePath, "sqlite", "", "SQLite run database")
	cmd.Flags().StringVar(&f.dataset, "dataset-name", "", "Only list runs of this dataset")
	cmd.Flags().StringVar(&f.export, "export", "", "Run id to export")
	cmd.Flags().StringVar(&f.deleteID, "delete", "", "Run id to delete")
	cmd.MarkFlagsMutuallyExclusive("export", "delete")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", ".", "Export destination directory")
	_ = cmd.MarkFlagRequired("sqlite")

	return cmd
}

func runRuns(ctx context.Context, f runsFlags, out io.Writer) error {
	db, err := store.Open(f.sqlitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if f.export != "" {
		run, m, err := db.LoadRun(ctx, f.export)
		if err != nil {
			return err
		}
		path := filepath.Join(f.outputDir, distancesNPYFile)
		if err := store.WriteNPY(path, m); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported run %s (%s, %dx%d) to %s.\n", run.ID, run.Dataset, run.Rows, run.Cols, path)
		return nil
	}

	if f.deleteID != "" {
		if err := db.DeleteRun(ctx, f.deleteID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted run %s.\n", f.deleteID)
		return nil
	}

	runs, err := db.ListRuns(ctx, f.dataset)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATASET\tCREATED\tSHAPE\tFAILED\tELAPSED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dx%d\t%d\t%s\n",
			r.ID, r.Dataset, r.Created.UTC().Format(time.RFC3339), r.Rows, r.Cols, r.Failed, r.Elapsed)
	}

	return tw.Flush()
}
