package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tobsdb/invdb/internal/config"
	"github.com/tobsdb/invdb/internal/store"
	"github.com/tobsdb/invdb/pkg"
)

// RootOptions holds global flags and the resolved config for all commands.
type RootOptions struct {
	ConfigPath string
	DataPath   string
	LogPath    string
	Verbose    bool

	Config config.Config
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "invdb",
		Short: "invdb - inventory record store",
		Long: `Track inventory records (id, name, quantity, price, supplier) in an
encrypted local file, query them with a small SQL-like language and keep an
audit log of every operation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.DataPath, "data", "", "encrypted data file (empty string keeps records in memory)")
	cmd.PersistentFlags().StringVar(&opts.LogPath, "log", "", "audit log file (empty string disables it)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSupplyCommand(opts))
	cmd.AddCommand(NewSellCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewBackupCommand(opts))
	cmd.AddCommand(NewRestoreCommand(opts))

	return cmd
}

// resolve layers flags over the config file and environment.
func (opts *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = opts.DataPath
	}
	if flags.Changed("log") {
		cfg.LogPath = opts.LogPath
	}
	opts.Config = cfg

	if opts.Verbose {
		pkg.SetLogLevel(pkg.LogLevelDebug)
	} else {
		pkg.SetLogLevel(cfg.Level())
	}
	// keep stdout for command output
	pkg.SetLogOutput(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	return nil
}

// openStore builds the configured store and loads its data file.
func (opts *RootOptions) openStore(cmd *cobra.Command) (*store.Store, error) {
	s := store.NewStore(opts.Config.StoreSettings())
	if err := s.Load(); err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load data", err)
	}

	if opts.Verbose {
		s.Subscribe(func(c store.Change) error {
			fmt.Fprintf(cmd.ErrOrStderr(), "changed: %s %s\n", c.Kind, formatIds(c.Ids))
			return nil
		})
	}
	return s, nil
}

// save persists s after a mutating command.
func save(s *store.Store) error {
	if err := s.Save(); err != nil {
		return WrapExitError(ExitCommandError, "failed to save data", err)
	}
	return nil
}

func formatIds(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ",")
}
