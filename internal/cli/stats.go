package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobsdb/invdb/internal/store"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Threshold int64
	Top       int
}

func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stock totals, low stock and top suppliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold := opts.Config.LowStockThreshold
			if cmd.Flags().Changed("threshold") {
				threshold = opts.Threshold
			}
			if threshold < 0 || opts.Top < 0 {
				return NewExitError(ExitCommandError, "--threshold and --top cannot be negative")
			}

			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), collectStats(s, threshold, opts.Top))
		},
	}

	cmd.Flags().Int64Var(&opts.Threshold, "threshold", 0,
		fmt.Sprintf("low stock threshold (default from config, %d)", store.DefaultLowStockThreshold))
	cmd.Flags().IntVar(&opts.Top, "top", 5, "entries in each top list")

	return cmd
}
