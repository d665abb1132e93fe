package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/auditlog"
	"github.com/saldo-dev/saldo/internal/id"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/ledger"
	"github.com/saldo-dev/saldo/internal/model"
)

func newImportCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "import <journal.csv>",
		Short: "Post entries from a journal CSV",
		Long: `Import reads a journal CSV and posts each entry through the same
validation gate as saldo post. Entries with error findings are skipped
and reported; the rest are committed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(ledgerDir)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.restore(cmd.Context()); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			entries, err := journal.ReadEntries(f)
			if err != nil {
				return err
			}

			posted, skipped := 0, 0
			for _, entry := range entries {
				for i := range entry.Lines {
					if entry.Lines[i].ID == "" {
						entry.Lines[i].ID = id.NewLineID()
					}
				}
				if entry.ID == "" {
					t, perr := time.Parse(model.DateFormat, entry.Date)
					if perr != nil {
						fmt.Printf("Skipping entry with invalid date %q\n", entry.Date)
						skipped++
						continue
					}
					seq, serr := env.Store.NextSequence(cmd.Context(), t.Year(), int(t.Month()))
					if serr != nil {
						return serr
					}
					entry.ID = id.FormatEntryID(t.Year(), int(t.Month()), seq)
				}

				found, err := env.Ledger.Post(entry)
				if errors.Is(err, ledger.ErrRejected) {
					fmt.Printf("Skipping %s:\n", entry.ID)
					printAlerts(found)
					skipped++
					continue
				}
				if err != nil {
					return err
				}

				if err := env.Store.SaveEntry(cmd.Context(), entry); err != nil {
					return err
				}
				posted++
			}

			if posted > 0 {
				if err := auditlog.Append(env.Root, []auditlog.Record{{
					Timestamp: time.Now(),
					Action:    auditlog.ActionImport,
					Details:   fmt.Sprintf("%d posted, %d skipped from %s", posted, skipped, args[0]),
				}}); err != nil {
					return err
				}
			}

			fmt.Printf("Imported %d entries (%d skipped)\n", posted, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")

	return cmd
}
