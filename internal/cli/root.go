// Package cli implements the relief command-line interface.
//
// The CLI is a thin driver over the library: it loads a field scenario
// from a TOML file, runs the requested engine, and prints the result as
// a table. It exists for quick exploration; the library surface in
// isolation/ and prominence/ is the real product.
//
// # Commands
//
//   - isolation:  nearest-higher-neighbor records for a located field
//   - prominence: peak hierarchy for a field on a connectivity graph
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log; loggers travel through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it under ctx.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "relief",
		Short:        "relief computes topographic isolation and prominence over spatial fields",
		Long:         "relief reads a field scenario (values, coordinates, connectivity) from a TOML file\nand computes topography-inspired statistics: isolation (distance to the nearest\nhigher observation) and prominence (peaks, key cols, and heights above them).",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newIsolationCmd(), newProminenceCmd())

	return root.ExecuteContext(ctx)
}

// newLogger creates a logger writing to w at the given level, with
// short timestamps.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the private type for context keys used in this package.
type ctxKey int

// loggerKey is the context key the command logger is stored under.
const loggerKey ctxKey = 0

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the command logger, falling back to a
// default stderr logger when none was attached.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}

	return charmlog.Default()
}
