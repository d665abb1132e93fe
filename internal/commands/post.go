package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/auditlog"
	"github.com/saldo-dev/saldo/internal/currency"
	"github.com/saldo-dev/saldo/internal/gitops"
	"github.com/saldo-dev/saldo/internal/ledger"
	"github.com/saldo-dev/saldo/internal/model"
)

func newPostCommand() *cobra.Command {
	var ledgerDir string
	var date string
	var description string
	var debits []string
	var credits []string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a journal entry to the ledger",
		Long: `Post builds a journal entry from --debit and --credit lines, runs the
alert evaluator, and commits the entry unless error-severity findings
block it. Warnings and info findings are advisory and never block.`,
		Example: `  saldo post --desc "Cash sale" --debit cash=1000000 --credit rev=1000000`,
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

			t, _ := time.Parse(model.DateFormat, entry.Date)
			seq, err := env.Store.NextSequence(cmd.Context(), t.Year(), int(t.Month()))
			if err != nil {
				return err
			}
			entry.ID, err = nextEntryID(entry.Date, seq)
			if err != nil {
				return err
			}

			found, err := env.Ledger.Post(entry)
			if len(found) > 0 {
				fmt.Printf("Findings for %s:\n", entry.ID)
				printAlerts(found)
			}
			if errors.Is(err, ledger.ErrRejected) {
				return fmt.Errorf("entry %s not posted: fix the errors above", entry.ID)
			}
			if err != nil {
				return err
			}

			if err := env.Store.SaveEntry(cmd.Context(), entry); err != nil {
				return err
			}

			if err := auditlog.Append(env.Root, []auditlog.Record{{
				Timestamp: time.Now(),
				Action:    auditlog.ActionPost,
				EntryID:   entry.ID,
				Details:   entry.Description,
			}}); err != nil {
				return err
			}

			if env.Config.Git.AutoCommit {
				author := gitops.Author{Name: env.Config.Git.AuthorName, Email: env.Config.Git.AuthorEmail}
				hash, err := gitops.Snapshot(env.Root, "post: "+entry.ID, author)
				if err != nil {
					slog.Warn("ledger snapshot failed", "error", err)
				} else if hash != "" {
					slog.Debug("ledger snapshot", "commit", hash)
				}
			}

			fmt.Printf("Posted %s (%s / %s)\n", entry.ID,
				currency.FormatRupiah(entry.TotalDebit()), currency.FormatRupiah(entry.TotalCredit()))
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
