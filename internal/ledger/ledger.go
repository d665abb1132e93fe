// Package ledger owns the ordered list of posted journal entries and
// the policy gluing evaluation to posting: error findings reject a
// post, advisory findings ride along with it.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/alerts"
	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/statements"
)

// ErrRejected is returned by Post when error-severity findings block
// the entry. The findings themselves come back alongside it.
var ErrRejected = errors.New("entry rejected by validation")

// ErrNotFound is returned by Remove for an unknown entry id.
var ErrNotFound = errors.New("entry not found")

// Registry resolves chart-of-accounts ids.
type Registry interface {
	Get(id string) (model.Account, bool)
}

// Thresholds overrides the large-transaction ratios; zero fields keep
// the evaluator defaults.
type Thresholds struct {
	LargeVsAssets decimal.Decimal
	LargeVsCash   decimal.Decimal
}

// Ledger is a single-session entry list over a fixed baseline. It is
// not safe for concurrent use; one ledger belongs to one caller.
type Ledger struct {
	accounts   Registry
	base       model.Statements
	entries    []model.JournalEntry
	thresholds Thresholds
}

// New creates an empty ledger over a chart of accounts and baseline.
func New(accounts Registry, base model.Statements) *Ledger {
	return &Ledger{accounts: accounts, base: base}
}

// SetThresholds overrides the alert thresholds for this ledger.
func (l *Ledger) SetThresholds(t Thresholds) {
	l.thresholds = t
}

// Restore seeds the ledger with previously persisted entries without
// re-running validation; historical entries are replayed as-is.
func (l *Ledger) Restore(entries []model.JournalEntry) {
	l.entries = append(l.entries[:0], entries...)
}

// Post evaluates the candidate against the current ledger state and
// appends it unless error-severity findings block it. The returned
// alerts are the full finding list either way; on rejection err is
// ErrRejected and the ledger is unchanged.
func (l *Ledger) Post(entry model.JournalEntry) ([]model.Alert, error) {
	found := l.evaluate(entry, "")
	if alerts.HasErrors(found) {
		return found, ErrRejected
	}
	l.entries = append(l.entries, entry)
	return found, nil
}

// Evaluate runs the alert evaluator on a draft without posting it.
func (l *Ledger) Evaluate(entry model.JournalEntry) []model.Alert {
	return l.evaluate(entry, "")
}

// EntryAlerts re-evaluates a posted entry against the rest of the
// ledger, excluding the entry itself from duplicate scanning.
func (l *Ledger) EntryAlerts(id string) ([]model.Alert, error) {
	for _, e := range l.entries {
		if e.ID == id {
			return l.evaluate(e, id), nil
		}
	}
	return nil, fmt.Errorf("alerts for %q: %w", id, ErrNotFound)
}

// Remove excises an entry by id. There is no undo.
func (l *Ledger) Remove(id string) error {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("removing %q: %w", id, ErrNotFound)
}

// Entries returns a copy of the posted entries in post order.
func (l *Ledger) Entries() []model.JournalEntry {
	out := make([]model.JournalEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Statements derives the current statements from scratch over the full
// entry list.
func (l *Ledger) Statements() model.Statements {
	return statements.Derive(l.base, l.accounts, l.entries)
}

func (l *Ledger) evaluate(entry model.JournalEntry, excludeID string) []model.Alert {
	derived := l.Statements()

	existing := make([]model.JournalEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		existing = append(existing, e)
	}

	return alerts.Evaluate(entry, alerts.Context{
		AssetsTotal:   derived.BalanceSheet.TotalAssets,
		CashBalance:   derived.BalanceSheet.Cash,
		Existing:      existing,
		Accounts:      l.accounts,
		LargeVsAssets: l.thresholds.LargeVsAssets,
		LargeVsCash:   l.thresholds.LargeVsCash,
	})
}
