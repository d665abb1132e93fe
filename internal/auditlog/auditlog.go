// Package auditlog keeps an append-only CSV trail of ledger mutations
// under <ledgerRoot>/logs/audit-log.csv.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Actions recorded in the audit log.
const (
	ActionPost   = "post"
	ActionRemove = "remove"
	ActionImport = "import"
)

// Record is one row in the audit log.
type Record struct {
	Timestamp time.Time
	Action    string
	EntryID   string
	Details   string
}

// Header is the CSV header for audit-log.csv.
const Header = "timestamp,action,entry_id,details"

const (
	numFields    = 4
	logDir       = "logs"
	logFile      = "logs/audit-log.csv"
	colTimestamp = 0
	colAction    = 1
	colEntryID   = 2
	colDetails   = 3
)

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(r Record) []string {
	row := make([]string, numFields)
	row[colTimestamp] = r.Timestamp.Format(time.RFC3339)
	row[colAction] = r.Action
	row[colEntryID] = r.EntryID
	row[colDetails] = r.Details
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(record []string) (Record, error) {
	if len(record) != numFields {
		return Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Record{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Record{
		Timestamp: ts,
		Action:    record[colAction],
		EntryID:   record[colEntryID],
		Details:   record[colDetails],
	}, nil
}

// Append writes records to <ledgerRoot>/logs/audit-log.csv, creating
// the file and header if needed.
func Append(ledgerRoot string, records []Record) error {
	dir := filepath.Join(ledgerRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(ledgerRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, r := range records {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all records from <ledgerRoot>/logs/audit-log.csv.
// A missing file yields an empty slice.
func Read(ledgerRoot string) ([]Record, error) {
	path := filepath.Join(ledgerRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readRecords(f)
}

func readRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var out []Record
	for i, rec := range records[1:] {
		rr, err := UnmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, rr)
	}
	return out, nil
}
