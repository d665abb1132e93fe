package commands

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/auditlog"
	"github.com/saldo-dev/saldo/internal/currency"
	"github.com/saldo-dev/saldo/internal/gitops"
)

func newEntriesCommand() *cobra.Command {
	entriesCmd := &cobra.Command{
		Use:   "entries",
		Short: "List and remove posted journal entries",
	}
	entriesCmd.AddCommand(newEntriesListCommand())
	entriesCmd.AddCommand(newEntriesRemoveCommand())
	return entriesCmd
}

func newEntriesListCommand() *cobra.Command {
	var ledgerDir string
	var showAlerts bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posted entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(ledgerDir)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.restore(cmd.Context()); err != nil {
				return err
			}

			entries := env.Ledger.Entries()
			if len(entries) == 0 {
				fmt.Println("No entries posted.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tDEBIT\tCREDIT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Date, e.Description,
					currency.FormatRupiah(e.TotalDebit()), currency.FormatRupiah(e.TotalCredit()))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if showAlerts {
				for _, e := range entries {
					found, err := env.Ledger.EntryAlerts(e.ID)
					if err != nil {
						return err
					}
					if len(found) == 0 {
						continue
					}
					fmt.Printf("\n%s:\n", e.ID)
					printAlerts(found)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")
	cmd.Flags().BoolVar(&showAlerts, "alerts", false, "re-evaluate each entry and show its findings")

	return cmd
}

func newEntriesRemoveCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "remove <entry-id>",
		Short: "Remove a posted entry (no undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID := args[0]

			env, err := openEnv(ledgerDir)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.restore(cmd.Context()); err != nil {
				return err
			}

			if err := env.Ledger.Remove(entryID); err != nil {
				return err
			}
			if err := env.Store.DeleteEntry(cmd.Context(), entryID); err != nil {
				return err
			}

			if err := auditlog.Append(env.Root, []auditlog.Record{{
				Timestamp: time.Now(),
				Action:    auditlog.ActionRemove,
				EntryID:   entryID,
			}}); err != nil {
				return err
			}

			if env.Config.Git.AutoCommit {
				author := gitops.Author{Name: env.Config.Git.AuthorName, Email: env.Config.Git.AuthorEmail}
				if _, err := gitops.Snapshot(env.Root, "remove: "+entryID, author); err != nil {
					slog.Warn("ledger snapshot failed", "error", err)
				}
			}

			fmt.Printf("Removed %s\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")

	return cmd
}
