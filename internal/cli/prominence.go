package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relief/prominence"
)

// newProminenceCmd builds the "prominence" subcommand: load a scenario,
// run the peak-hierarchy sweep, print peaks, cols, and prominence.
func newProminenceCmd() *cobra.Command {
	var steps bool

	cmd := &cobra.Command{
		Use:   "prominence <scenario.toml>",
		Short: "Peaks, key cols, and each peak's height above its controlling saddle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			g, err := sc.Graph()
			if err != nil {
				return err
			}
			logger.Debug("scenario loaded", "nodes", g.Order(), "edges", len(sc.Edges))

			var opts []prominence.Option
			if sc.Center != "" {
				opts = append(opts, prominence.WithCenterStat(sc.Center))
			}
			if steps {
				opts = append(opts, prominence.WithObserver(prominence.StepLogger(logger)))
			}

			start := time.Now()
			res, err := prominence.Compute(sc.Values, g, opts...)
			if err != nil {
				return err
			}
			logger.Info("prominence computed",
				"peaks", len(res.Peaks),
				"keycols", len(res.KeyCols),
				"elapsed", time.Since(start).Round(time.Millisecond),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "peaks:", res.Peaks)
			for _, kc := range res.KeyCols {
				fmt.Fprintf(out, "col %d merges %v\n", kc.Col, kc.Peaks)
			}

			w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "node\tdominating_peak\tprominence")
			for i, p := range res.Prominence {
				fmt.Fprintf(w, "%d\t%d\t%s\n", i, res.DominatingPeak[i], formatFloat(p))
			}

			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&steps, "steps", false, "log every sweep step (with --verbose)")

	return cmd
}
