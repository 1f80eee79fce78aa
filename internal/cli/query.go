package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tobsdb/invdb/internal/parser"
	"github.com/tobsdb/invdb/internal/query"
)

func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <statement>",
		Short: "Run one query language statement",
		Long: `Run one query language statement against the data file. Changes are
saved before the command returns. Run "invdb query HELP" for the grammar.

Example:
  invdb query 'SELECT * WHERE price>500'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.openStore(cmd)
			if err != nil {
				return err
			}
			e := query.NewExecutor(s)
			e.SaveOnWrite = true

			res, err := e.Execute(strings.Join(args, " "))
			if err != nil {
				return queryError(err)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

func queryError(err error) error {
	var parse_err *parser.ParseError
	if errors.As(err, &parse_err) {
		return WrapExitError(ExitCommandError, "invalid query", err)
	}
	return WrapExitError(ExitCommandError, "query failed", err)
}

func printResult(w io.Writer, res query.Result) error {
	switch res.Kind {
	case query.ResultRecords:
		return printRecords(w, res.Records)
	case query.ResultHelp:
		_, err := fmt.Fprint(w, res.Message)
		return err
	}
	_, err := fmt.Fprintln(w, res.Message)
	return err
}
