package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Print the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(ledgerDir)
			if err != nil {
				return err
			}
			defer env.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tNAME\tTYPE\tTARGET")
			for _, a := range env.Accounts.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s.%s\n",
					a.ID, a.Code, a.Name, a.Type, a.Target.Statement, a.Target.Field)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")

	return cmd
}
