package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

// loggerFunc builds the run logger once flags are parsed.
type loggerFunc func(w io.Writer) *slog.Logger

// newRootCmd assembles the command tree. Flags live in closures rather than
// package globals so tests can build independent trees.
func newRootCmd() *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "gedmatrix",
		Short: "Embedding-guided graph edit distance matrices",
		Long: `gedmatrix approximates the graph edit distance between every test and
train graph of a TUDataset collection. Node correspondences come from an
optimal assignment over node-embedding distances; the edit cost of that
correspondence is the reported distance. Embeddings are produced elsewhere
and read from JSON files in the output directory.

Examples:
  gedmatrix split --dataset-dir data --dataset-name MUTAG --output-dir out
  gedmatrix distances --dataset-dir data --dataset-name MUTAG --output-dir out
  gedmatrix runs --sqlite out/runs.db`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	logger := func(w io.Writer) *slog.Logger { return newLogger(logLevel, logFormat, w) }
	root.AddCommand(
		newDistancesCmd(logger),
		newSplitCmd(logger),
		newRunsCmd(),
		newVersionCmd(),
	)

	return root
}

// newLogger returns a logger writing to w. Unknown levels fall back to info.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gedmatrix version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gedmatrix %s\n", version)
		},
	}
}
