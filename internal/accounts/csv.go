package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/saldo-dev/saldo/internal/model"
)

// Header is the CSV header for chart-of-accounts.csv.
const Header = "id,code,name,type,target_statement,target_field,cash_flow"

const (
	numFields    = 7
	colID        = 0
	colCode      = 1
	colName      = 2
	colType      = 3
	colStatement = 4
	colField     = 5
	colCashFlow  = 6
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv (including header).
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, numFields)
	row[colID] = a.ID
	row[colCode] = a.Code
	row[colName] = a.Name
	row[colType] = string(a.Type)
	row[colStatement] = string(a.Target.Statement)
	row[colField] = a.Target.Field
	row[colCashFlow] = string(a.CashFlow)
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	accountType := model.AccountType(record[colType])
	switch accountType {
	case model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeEquity,
		model.AccountTypeRevenue, model.AccountTypeExpense, model.AccountTypeDistribution:
	default:
		return model.Account{}, fmt.Errorf("unknown account type %q", record[colType])
	}

	return model.Account{
		ID:   record[colID],
		Code: record[colCode],
		Name: record[colName],
		Type: accountType,
		Target: model.StatementTarget{
			Statement: model.StatementKind(record[colStatement]),
			Field:     record[colField],
		},
		CashFlow: model.CashFlowBucket(record[colCashFlow]),
	}, nil
}
