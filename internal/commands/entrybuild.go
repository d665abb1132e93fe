package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/id"
	"github.com/saldo-dev/saldo/internal/model"
)

// parseLines turns repeated "account=amount" flag values into journal
// lines for one side. A spec with a blank account still parses; the
// alert evaluator reports it instead of the flag parser.
func parseLines(side model.Side, specs []string) ([]model.JournalLine, error) {
	var lines []model.JournalLine
	for _, spec := range specs {
		acct, amt, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid %s line %q: want account=amount", side, spec)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(amt))
		if err != nil {
			return nil, fmt.Errorf("invalid %s amount %q: %w", side, amt, err)
		}
		lines = append(lines, model.JournalLine{
			ID:        id.NewLineID(),
			Side:      side,
			AccountID: strings.TrimSpace(acct),
			Amount:    amount,
		})
	}
	return lines, nil
}

// buildEntry assembles a candidate entry from flag values. The date
// defaults to today; the entry id is assigned by the caller.
func buildEntry(date, description string, debits, credits []string) (model.JournalEntry, error) {
	if date == "" {
		date = time.Now().Format(model.DateFormat)
	}
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return model.JournalEntry{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}

	debitLines, err := parseLines(model.SideDebit, debits)
	if err != nil {
		return model.JournalEntry{}, err
	}
	creditLines, err := parseLines(model.SideCredit, credits)
	if err != nil {
		return model.JournalEntry{}, err
	}

	return model.JournalEntry{
		Date:        date,
		Description: strings.TrimSpace(description),
		Lines:       append(debitLines, creditLines...),
	}, nil
}

// printAlerts renders findings one per line, errors first already by
// evaluator order.
func printAlerts(alerts []model.Alert) {
	for _, a := range alerts {
		fmt.Printf("  [%s] %s: %s\n", strings.ToUpper(string(a.Severity)), a.Code, a.Message)
	}
}

// nextEntryID produces the month-scoped sequential id for a new entry.
func nextEntryID(date string, seq int) (string, error) {
	t, err := time.Parse(model.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return id.FormatEntryID(t.Year(), int(t.Month()), seq), nil
}
