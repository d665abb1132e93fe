package model

import "github.com/shopspring/decimal"

// Statement field names addressable by an Account's StatementTarget.
const (
	FieldCash                    = "cash"
	FieldTradeReceivables        = "trade_receivables"
	FieldInventories             = "inventories"
	FieldOtherCurrentAssets      = "other_current_assets"
	FieldPPENet                  = "ppe_net"
	FieldIntangible              = "intangible"
	FieldTradePayables           = "trade_payables"
	FieldShortTermBorrowings     = "short_term_borrowings"
	FieldOtherCurrentLiabilities = "other_current_liabilities"
	FieldLongTermBorrowings      = "long_term_borrowings"
	FieldDeferredTaxLiabilities  = "deferred_tax_liabilities"
	FieldShareCapital            = "share_capital"
	FieldRevenue                 = "revenue"
	FieldCOGS                    = "cogs"
	FieldOperatingExpenses       = "operating_expenses"
	FieldInterestExpense         = "interest_expense"
	FieldTaxExpense              = "tax_expense"
	FieldDividends               = "dividends"
)

// BalanceSheet holds the balance-sheet snapshot. Total fields are
// derived, never posted to directly. Snapshots serialize as JSON so
// decimal amounts round-trip exactly.
type BalanceSheet struct {
	Cash                    decimal.Decimal `json:"cash"`
	TradeReceivables        decimal.Decimal `json:"trade_receivables"`
	Inventories             decimal.Decimal `json:"inventories"`
	OtherCurrentAssets      decimal.Decimal `json:"other_current_assets"`
	PPENet                  decimal.Decimal `json:"ppe_net"`
	Intangible              decimal.Decimal `json:"intangible"`
	TotalAssets             decimal.Decimal `json:"total_assets"`
	TradePayables           decimal.Decimal `json:"trade_payables"`
	ShortTermBorrowings     decimal.Decimal `json:"short_term_borrowings"`
	OtherCurrentLiabilities decimal.Decimal `json:"other_current_liabilities"`
	LongTermBorrowings      decimal.Decimal `json:"long_term_borrowings"`
	DeferredTaxLiabilities  decimal.Decimal `json:"deferred_tax_liabilities"`
	TotalLiabilities        decimal.Decimal `json:"total_liabilities"`
	ShareCapital            decimal.Decimal `json:"share_capital"`
	RetainedEarnings        decimal.Decimal `json:"retained_earnings"`
	TotalEquity             decimal.Decimal `json:"total_equity"`
}

// IncomeStatement holds the income-statement snapshot.
type IncomeStatement struct {
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	EBIT              decimal.Decimal `json:"ebit"`
	InterestExpense   decimal.Decimal `json:"interest_expense"`
	ProfitBeforeTax   decimal.Decimal `json:"profit_before_tax"`
	TaxExpense        decimal.Decimal `json:"tax_expense"`
	NetIncome         decimal.Decimal `json:"net_income"`
}

// CashFlow holds the cash-flow statement. CashFromOperations is a
// residual plug, never summed directly from entries.
type CashFlow struct {
	OpeningCash        decimal.Decimal `json:"opening_cash"`
	CashFromOperations decimal.Decimal `json:"cash_from_operations"`
	CashFromInvesting  decimal.Decimal `json:"cash_from_investing"`
	CashFromFinancing  decimal.Decimal `json:"cash_from_financing"`
	NetChangeInCash    decimal.Decimal `json:"net_change_in_cash"`
	ClosingCash        decimal.Decimal `json:"closing_cash"`
}

// EquityChanges holds the changes-in-equity statement.
type EquityChanges struct {
	OpeningRetainedEarnings decimal.Decimal `json:"opening_retained_earnings"`
	NetIncome               decimal.Decimal `json:"net_income"`
	Dividends               decimal.Decimal `json:"dividends"`
	OtherAdjustments        decimal.Decimal `json:"other_adjustments"`
	ClosingRetainedEarnings decimal.Decimal `json:"closing_retained_earnings"`
}

// Statements bundles the four statement snapshots. The bundle is a
// value type; copying it copies every field.
type Statements struct {
	BalanceSheet    BalanceSheet    `json:"balance_sheet"`
	IncomeStatement IncomeStatement `json:"income_statement"`
	CashFlow        CashFlow        `json:"cash_flow"`
	EquityChanges   EquityChanges   `json:"equity_changes"`
}
