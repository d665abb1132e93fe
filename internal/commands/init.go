package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/config"
	"github.com/saldo-dev/saldo/internal/gitops"
	"github.com/saldo-dev/saldo/internal/statements"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new saldo ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, entityType, useGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "sme", "entity type")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize git and auto-commit ledger changes")

	return cmd
}

func runInit(dir, name, entityType string, useGit bool) error {
	for _, d := range []string{"accounts", "logs", "exports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, entityType)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	chart := accounts.NewService(accounts.DefaultChart())
	if err := chart.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	base := statements.DefaultBaseline()
	if err := statements.SaveBaseline(filepath.Join(dir, cfg.Storage.Baseline), base); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}

	gitignore := "exports/\n*.db\n*.db-shm\n*.db-wal\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
		if _, err := gitops.Snapshot(dir, "init: "+name, author); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Printf("Initialized saldo ledger for %s at %s\n", name, dir)
	return nil
}
