// Package storage persists posted journal entries in SQLite so a
// ledger session can be restored across CLI invocations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is a SQLite-backed journal entry store.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (creating if needed) the entry database at dbPath and
// applies pending migrations.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite does not benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveEntry persists an entry and its lines in one transaction.
func (s *Store) SaveEntry(ctx context.Context, entry model.JournalEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO entries (id, date, description) VALUES (?, ?, ?)`,
		entry.ID, entry.Date, entry.Description,
	); err != nil {
		return fmt.Errorf("inserting entry %s: %w", entry.ID, err)
	}

	for pos, line := range entry.Lines {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO lines (id, entry_id, position, side, account_id, amount)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			line.ID, entry.ID, pos, string(line.Side), line.AccountID, line.Amount.String(),
		); err != nil {
			return fmt.Errorf("inserting line %s: %w", line.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry %s: %w", entry.ID, err)
	}
	return nil
}

// DeleteEntry removes an entry and its lines. Deleting an unknown id
// reports sql.ErrNoRows.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting entry %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// ListEntries returns all entries in post order with lines in original
// position order.
func (s *Store) ListEntries(ctx context.Context) ([]model.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.date, e.description, l.id, l.side, l.account_id, l.amount
		 FROM entries e
		 JOIN lines l ON l.entry_id = e.id
		 ORDER BY e.rowid, l.position`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []model.JournalEntry
	index := make(map[string]int)

	for rows.Next() {
		var entryID, date, desc, lineID, side, acctID, amount string
		if err := rows.Scan(&entryID, &date, &desc, &lineID, &side, &acctID, &amount); err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}

		amt, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parsing stored amount %q: %w", amount, err)
		}

		at, seen := index[entryID]
		if !seen {
			entries = append(entries, model.JournalEntry{ID: entryID, Date: date, Description: desc})
			at = len(entries) - 1
			index[entryID] = at
		}
		entries[at].Lines = append(entries[at].Lines, model.JournalLine{
			ID:        lineID,
			Side:      model.Side(side),
			AccountID: acctID,
			Amount:    amt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

// NextSequence returns the next entry sequence number for a month,
// scanning existing ids of the form "YYYY-MM-NNN".
func (s *Store) NextSequence(ctx context.Context, year, month int) (int, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(CAST(substr(id, ?) AS INTEGER)) FROM entries WHERE id LIKE ?`,
		len(prefix)+1, prefix+"%",
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("querying max sequence: %w", err)
	}
	return int(max.Int64) + 1, nil
}
