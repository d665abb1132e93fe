// Package journal reads and writes journal.csv, the flat interchange
// form of the ledger: one row per line, grouped into entries by id.
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,description,line_id,side,account_id,amount"

const (
	numFields  = 7
	colEntryID = 0
	colDate    = 1
	colDesc    = 2
	colLineID  = 3
	colSide    = 4
	colAcctID  = 5
	colAmount  = 6
)

// ReadEntries reads all entries from a journal.csv reader. Rows sharing
// an entry_id are folded into one entry in row order; entries come back
// in first-appearance order.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.JournalEntry
	index := make(map[string]int)

	for i, rec := range records[1:] {
		entryID, line, date, desc, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		at, seen := index[entryID]
		if !seen {
			entries = append(entries, model.JournalEntry{
				ID:          entryID,
				Date:        date,
				Description: desc,
			})
			at = len(entries) - 1
			index[entryID] = at
		}
		entries[at].Lines = append(entries[at].Lines, line)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, entry := range entries {
		for _, line := range entry.Lines {
			if err := cw.Write(marshalRow(entry, line)); err != nil {
				return fmt.Errorf("writing entry %s: %w", entry.ID, err)
			}
		}
	}
	return cw.Error()
}

func marshalRow(entry model.JournalEntry, line model.JournalLine) []string {
	row := make([]string, numFields)
	row[colEntryID] = entry.ID
	row[colDate] = entry.Date
	row[colDesc] = entry.Description
	row[colLineID] = line.ID
	row[colSide] = string(line.Side)
	row[colAcctID] = line.AccountID
	row[colAmount] = line.Amount.String()
	return row
}

func unmarshalRow(record []string) (entryID string, line model.JournalLine, date, desc string, err error) {
	if len(record) != numFields {
		return "", model.JournalLine{}, "", "", fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	side := model.Side(record[colSide])
	if side != model.SideDebit && side != model.SideCredit {
		return "", model.JournalLine{}, "", "", fmt.Errorf("unknown side %q", record[colSide])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return "", model.JournalLine{}, "", "", fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	line = model.JournalLine{
		ID:        record[colLineID],
		Side:      side,
		AccountID: record[colAcctID],
		Amount:    amount,
	}
	return record[colEntryID], line, record[colDate], record[colDesc], nil
}
