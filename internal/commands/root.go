// Package commands wires the saldo CLI: every subcommand operates on a
// ledger directory created by `saldo init`.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "saldo",
		Short:   "Double-entry bookkeeping for small businesses",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPostCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newEntriesCommand())
	rootCmd.AddCommand(newStatementsCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
