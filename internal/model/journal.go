package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the debit/credit side of a journal line.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// DateFormat is the ISO calendar date layout used for entry dates.
const DateFormat = "2006-01-02"

// BalanceEpsilon is the tolerance for debit/credit equality.
var BalanceEpsilon = decimal.New(1, -4) // 0.0001

// JournalLine is one side-tagged amount within an entry.
type JournalLine struct {
	ID        string
	Side      Side
	AccountID string
	Amount    decimal.Decimal
}

// JournalEntry is a dated set of debit/credit lines. Line order matters
// only for display; posting and duplicate detection ignore it.
type JournalEntry struct {
	ID          string
	Date        string // ISO form, DateFormat
	Description string
	Lines       []JournalLine
}

// TotalDebit sums the debit-side line amounts.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		if l.Side == SideDebit {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// TotalCredit sums the credit-side line amounts.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		if l.Side == SideCredit {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// Balanced reports whether debits equal credits within BalanceEpsilon.
func (e JournalEntry) Balanced() bool {
	diff := e.TotalDebit().Sub(e.TotalCredit()).Abs()
	return diff.LessThanOrEqual(BalanceEpsilon)
}

// HasDescription reports whether the description is non-blank after trimming.
func (e JournalEntry) HasDescription() bool {
	return strings.TrimSpace(e.Description) != ""
}
