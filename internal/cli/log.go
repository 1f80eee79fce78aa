package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Lines int
}

func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the end of the audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := opts.Config.LogTail
			if cmd.Flags().Changed("lines") {
				n = opts.Lines
			}

			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			if !s.Log().Enabled() {
				return NewExitError(ExitCommandError, "audit log is disabled")
			}

			lines, err := s.LogTail(n)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read audit log", err)
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "number of lines (default from config)")

	return cmd
}
