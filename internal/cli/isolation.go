package cli

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relief/isolation"
)

// newIsolationCmd builds the "isolation" subcommand: load a scenario,
// run the nearest-higher-neighbor sweep, print the precedence table.
func newIsolationCmd() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "isolation <scenario.toml>",
		Short: "Distance from each observation to its nearest higher neighbor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			logger.Debug("scenario loaded", "observations", len(sc.Values))

			var opts []isolation.Option
			if sc.Metric != "" {
				opts = append(opts, isolation.WithMetric(sc.Metric))
			}
			if sc.Center != "" {
				opts = append(opts, isolation.WithCenterStat(sc.Center))
			}

			start := time.Now()
			recs, err := isolation.Compute(sc.Values, sc.Coordinates, opts...)
			if err != nil {
				return err
			}
			logger.Info("isolation computed",
				"observations", len(recs),
				"elapsed", time.Since(start).Round(time.Millisecond),
			)

			if summary {
				for i, d := range recs.Distances() {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, formatFloat(d))
				}
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "index\tparent\trank\tparent_rank\tdistance\tgap")
			for _, r := range recs {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\n",
					r.Index, r.ParentIndex, r.Rank, r.ParentRank,
					formatFloat(r.Distance), formatFloat(r.Gap),
				)
			}

			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print only the distance column")

	return cmd
}

// formatFloat renders a value compactly, keeping NaN readable.
func formatFloat(x float64) string {
	if math.IsNaN(x) {
		return "-"
	}

	return fmt.Sprintf("%.4g", x)
}
