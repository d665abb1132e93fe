package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/saldo-dev/saldo/internal/model"
)

// Service provides in-memory lookup over the chart of accounts. The
// account set is fixed for the process lifetime; lookup misses are not
// errors, callers decide their own policy for unknown ids.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads chart-of-accounts.csv from a ledger root and returns a Service.
func Load(ledgerRoot string) (*Service, error) {
	path := filepath.Join(ledgerRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts in chart order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// CashAccount returns the designated cash account used for cash-flow
// classification.
func (s *Service) CashAccount() (model.Account, bool) {
	for _, a := range s.accounts {
		if a.CashFlow == model.BucketCash {
			return a, true
		}
	}
	return model.Account{}, false
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(ledgerRoot string) error {
	dir := filepath.Join(ledgerRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
