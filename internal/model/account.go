package model

// AccountType classifies accounts in the chart of accounts and determines
// the sign convention for debit/credit postings.
type AccountType string

const (
	AccountTypeAsset        AccountType = "asset"
	AccountTypeLiability    AccountType = "liability"
	AccountTypeEquity       AccountType = "equity"
	AccountTypeRevenue      AccountType = "revenue"
	AccountTypeExpense      AccountType = "expense"
	AccountTypeDistribution AccountType = "distribution"
)

// StatementKind names one of the four financial statements.
type StatementKind string

const (
	StatementBalanceSheet    StatementKind = "bs"
	StatementIncomeStatement StatementKind = "is"
	StatementEquity          StatementKind = "equity"
)

// StatementTarget names the statement field an account's balance feeds.
type StatementTarget struct {
	Statement StatementKind
	Field     string
}

// CashFlowBucket hints how an account participates in cash-flow
// classification. Most accounts carry BucketNone.
type CashFlowBucket string

const (
	BucketNone      CashFlowBucket = ""
	BucketCash      CashFlowBucket = "cash"
	BucketInvesting CashFlowBucket = "investing"
	BucketFinancing CashFlowBucket = "financing"
)

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	ID       string
	Code     string
	Name     string
	Type     AccountType
	Target   StatementTarget
	CashFlow CashFlowBucket
}

// DebitSign returns the posting sign for a debit against this account
// type: +1 for asset/expense/distribution, -1 for the rest. Credits use
// the opposite sign.
func (t AccountType) DebitSign() int {
	switch t {
	case AccountTypeAsset, AccountTypeExpense, AccountTypeDistribution:
		return 1
	default:
		return -1
	}
}
