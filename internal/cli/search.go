package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/types"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Op string
}

func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <field> <value>",
		Short: "Find records by field value",
		Long: `Find records by field value. Without --op this is an exact match that
uses the name and supplier indexes. With --op the table is scanned; name and
supplier always compare with =.

Example:
  invdb search supplier Sony
  invdb search price 500 --op '>='`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := record.ParseField(args[0])
			if !field.IsValid() {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown field %q", args[0]))
			}
			value, err := field.ParseValue(args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid value", err)
			}

			var op types.Operator
			if opts.Op != "" {
				var ok bool
				if op, ok = types.ParseOperator(opts.Op); !ok {
					return NewExitError(ExitCommandError, fmt.Sprintf("invalid operator %q", opts.Op))
				}
			}

			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			var found []record.Record
			if op == "" {
				found, err = s.Search(field, value)
			} else {
				found, err = s.SearchOp(field, value, op)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "search failed", err)
			}
			return printRecords(cmd.OutOrStdout(), found)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", "", "comparison operator (= > < >= <=)")

	return cmd
}

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	SortBy     string
	Descending bool
}

func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			if opts.SortBy == "" {
				return printRecords(cmd.OutOrStdout(), s.All())
			}

			field := record.ParseField(opts.SortBy)
			if !field.IsValid() {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown field %q", opts.SortBy))
			}
			sorted, err := s.Sort(field, opts.Descending)
			if err != nil {
				return WrapExitError(ExitCommandError, "sort failed", err)
			}
			return printRecords(cmd.OutOrStdout(), sorted)
		},
	}

	cmd.Flags().StringVar(&opts.SortBy, "sort", "", "field to sort by (default id)")
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "sort in descending order")

	return cmd
}
