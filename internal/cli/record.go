package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Id       int64
	Name     string
	Quantity int64
	Price    float64
	Supplier string
}

func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
		Long: `Add a record. The id must be unused and positive, name and supplier must
not be blank and quantity and price must not be negative.

Example:
  invdb add --id 1 --name TV --quantity 10 --price 1000 --supplier Sony`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := record.New(opts.Id, opts.Name, opts.Quantity, opts.Price, opts.Supplier)
			if err := r.Validate(); err != nil {
				return WrapExitError(ExitFailure, "invalid record", err)
			}

			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}
			ok, err := s.AddRecord(r)
			if err != nil {
				return WrapExitError(ExitCommandError, "add failed", err)
			}
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf("record %d already exists", r.Id))
			}
			if err := save(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added record %d\n", r.Id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.Id, "id", 0, "record id")
	cmd.Flags().StringVar(&opts.Name, "name", "", "item name")
	cmd.Flags().Int64Var(&opts.Quantity, "quantity", 0, "quantity in stock")
	cmd.Flags().Float64Var(&opts.Price, "price", 0, "unit price")
	cmd.Flags().StringVar(&opts.Supplier, "supplier", "", "supplier name")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("supplier")

	return cmd
}

type stockFunc func(s *store.Store, id, amount int64) (bool, error)

func newStockCommand(rootOpts *RootOptions, use, short, refused string, apply stockFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid id", err)
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid amount", err)
			}

			s, err := rootOpts.openStore(cmd)
			if err != nil {
				return err
			}
			ok, err := apply(s, id, amount)
			if err != nil {
				return WrapExitError(ExitCommandError, use+" failed", err)
			}
			if !ok {
				return NewExitError(ExitFailure, fmt.Sprintf(refused, id))
			}
			if err := save(s); err != nil {
				return err
			}

			r := s.Get(id).MustGet()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d in stock\n", r.Name, r.Quantity)
			return nil
		},
	}
}

func NewSupplyCommand(rootOpts *RootOptions) *cobra.Command {
	return newStockCommand(rootOpts, "supply", "Add stock to a record",
		"cannot supply record %d: unknown id or negative amount",
		func(s *store.Store, id, amount int64) (bool, error) { return s.Supply(id, amount) })
}

func NewSellCommand(rootOpts *RootOptions) *cobra.Command {
	return newStockCommand(rootOpts, "sell", "Take stock from a record",
		"cannot sell from record %d: unknown id or not enough stock",
		func(s *store.Store, id, amount int64) (bool, error) { return s.Sell(id, amount) })
}

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	All bool
}

func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <id> | --all",
		Short: "Delete a record by id, or every record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.All == (len(args) == 1) {
				return NewExitError(ExitCommandError, "give either an id or --all")
			}

			var id int64
			if !opts.All {
				var err error
				if id, err = strconv.ParseInt(args[0], 10, 64); err != nil {
					return WrapExitError(ExitCommandError, "invalid id", err)
				}
			}

			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			count := 0
			if opts.All {
				count, err = s.DeleteAll()
			} else {
				var ok bool
				ok, err = s.DeleteById(id)
				if ok {
					count = 1
				} else if err == nil {
					return NewExitError(ExitFailure, fmt.Sprintf("record %d not found", id))
				}
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "delete failed", err)
			}
			if err := save(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record(s)\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "delete every record")

	return cmd
}
