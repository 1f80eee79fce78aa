package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tobsdb/invdb/internal/query"
	"github.com/tobsdb/invdb/internal/store"
)

const repl_prompt = "invdb> "

func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read query statements from stdin until EOF or EXIT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.openStore(cmd)
			if err != nil {
				return err
			}
			return runRepl(cmd, s)
		},
	}
}

func runRepl(cmd *cobra.Command, s *store.Store) error {
	out := cmd.OutOrStdout()
	e := query.NewExecutor(s)
	e.SaveOnWrite = true

	id := s.Subscribe(func(c store.Change) error {
		fmt.Fprintf(out, "~ %s, %d record(s) in store\n", c.Kind, s.TotalRecords())
		return nil
	})
	defer s.Unsubscribe(id)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprint(out, repl_prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case strings.EqualFold(line, "exit"), strings.EqualFold(line, "quit"):
			return nil
		default:
			res, err := e.Execute(line)
			if err != nil {
				fmt.Fprintln(out, "Error:", err)
			} else if err := printResult(out, res); err != nil {
				return err
			}
		}
		fmt.Fprint(out, repl_prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
