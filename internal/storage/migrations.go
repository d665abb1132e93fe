package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// migration is one schema step; migrations run in order inside a
// transaction each.
type migration struct {
	Version     int
	Description string
	Statements  []string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "entries and lines",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS entries (
				id TEXT PRIMARY KEY,
				date TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date)`,
			`CREATE TABLE IF NOT EXISTS lines (
				id TEXT PRIMARY KEY,
				entry_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
				position INTEGER NOT NULL,
				side TEXT NOT NULL,
				account_id TEXT NOT NULL,
				amount TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_lines_entry ON lines(entry_id)`,
		},
	},
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	var current sql.NullInt64
	if err := s.db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if int64(m.Version) <= current.Int64 {
			continue
		}
		if err := s.applyMigration(ctx, m); err != nil {
			return err
		}
		slog.Debug("applied migration", "version", m.Version, "description", m.Description)
	}
	return nil
}

func (s *Store) applyMigration(ctx context.Context, m migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration %d: %w", m.Version, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", m.Version, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
		return fmt.Errorf("migration %d: %w", m.Version, err)
	}
	return tx.Commit()
}
