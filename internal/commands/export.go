package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/journal"
)

func newExportCommand() *cobra.Command {
	var ledgerDir string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(ledgerDir)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.restore(cmd.Context()); err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = filepath.Join(env.Root, "exports", "journal.csv")
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating export dir: %w", err)
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			entries := env.Ledger.Entries()
			if err := journal.WriteEntries(f, entries); err != nil {
				return err
			}

			fmt.Printf("Exported %d entries to %s\n", len(entries), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default exports/journal.csv)")

	return cmd
}
