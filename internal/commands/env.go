package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/config"
	"github.com/saldo-dev/saldo/internal/ledger"
	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/statements"
	"github.com/saldo-dev/saldo/internal/storage"
)

// env bundles everything a subcommand needs from an opened ledger
// directory.
type env struct {
	Root     string
	Config   *config.Config
	Accounts *accounts.Service
	Base     model.Statements
	Store    *storage.Store
	Ledger   *ledger.Ledger
}

// openEnv loads config, chart, baseline and persisted entries from a
// ledger directory and restores the ledger session.
func openEnv(dir string) (*env, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving ledger path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("is %q a saldo ledger? %w", root, err)
	}

	accts, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}

	base, err := statements.LoadBaseline(filepath.Join(root, cfg.Storage.Baseline))
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(filepath.Join(root, cfg.Storage.Database))
	if err != nil {
		return nil, err
	}

	led := ledger.New(accts, base)
	led.SetThresholds(ledger.Thresholds{
		LargeVsAssets: decimal.NewFromFloat(cfg.Thresholds.LargeVsAssets),
		LargeVsCash:   decimal.NewFromFloat(cfg.Thresholds.LargeVsCash),
	})

	return &env{
		Root:     root,
		Config:   cfg,
		Accounts: accts,
		Base:     base,
		Store:    store,
		Ledger:   led,
	}, nil
}

// restore loads persisted entries into the ledger session.
func (e *env) restore(ctx context.Context) error {
	entries, err := e.Store.ListEntries(ctx)
	if err != nil {
		return err
	}
	e.Ledger.Restore(entries)
	return nil
}

// Close releases the entry store.
func (e *env) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}
