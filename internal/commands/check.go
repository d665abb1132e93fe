package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	var ledgerDir string
	var date string
	var description string
	var debits []string
	var credits []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a draft entry without posting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(ledgerDir)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.restore(cmd.Context()); err != nil {
				return err
			}

			entry, err := buildEntry(date, description, debits, credits)
			if err != nil {
				return err
			}

			found := env.Ledger.Evaluate(entry)
			if len(found) == 0 {
				fmt.Println("No findings. Entry would post cleanly.")
				return nil
			}
			fmt.Println("Findings:")
			printAlerts(found)
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "desc", "", "entry description")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line account=amount (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line account=amount (repeatable)")

	return cmd
}
