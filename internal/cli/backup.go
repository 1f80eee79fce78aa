package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func backupPath(opts *RootOptions, args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return opts.Config.BackupPath
}

func NewBackupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [path]",
		Short: "Copy the encrypted data file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := backupPath(rootOpts, args)

			s, err := rootOpts.openStore(cmd)
			if err != nil {
				return err
			}
			if err := s.Backup(path); err != nil {
				return WrapExitError(ExitCommandError, "backup failed", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d record(s) to %s\n", s.TotalRecords(), path)
			return nil
		},
	}
}

func NewRestoreCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [path]",
		Short: "Replace the data file with a backup and load it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := backupPath(rootOpts, args)

			s, err := rootOpts.openStore(cmd)
			if err != nil {
				return err
			}
			if err := s.Restore(path); err != nil {
				return WrapExitError(ExitCommandError, "restore failed", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d record(s) from %s\n", s.TotalRecords(), path)
			return nil
		},
	}
}
