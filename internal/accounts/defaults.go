package accounts

import "github.com/saldo-dev/saldo/internal/model"

// DefaultChart returns the standard SME chart of accounts. Every account
// feeds exactly one statement field; the cash-flow column marks the
// designated cash account and the investing/financing hint accounts.
func DefaultChart() []model.Account {
	bs := func(field string) model.StatementTarget {
		return model.StatementTarget{Statement: model.StatementBalanceSheet, Field: field}
	}
	is := func(field string) model.StatementTarget {
		return model.StatementTarget{Statement: model.StatementIncomeStatement, Field: field}
	}
	eq := func(field string) model.StatementTarget {
		return model.StatementTarget{Statement: model.StatementEquity, Field: field}
	}

	return []model.Account{
		// Assets
		{ID: "cash", Code: "1000", Name: "Cash", Type: model.AccountTypeAsset, Target: bs(model.FieldCash), CashFlow: model.BucketCash},
		{ID: "ar", Code: "1100", Name: "Trade Receivables", Type: model.AccountTypeAsset, Target: bs(model.FieldTradeReceivables)},
		{ID: "inv", Code: "1200", Name: "Inventories", Type: model.AccountTypeAsset, Target: bs(model.FieldInventories)},
		{ID: "oca", Code: "1300", Name: "Other Current Assets", Type: model.AccountTypeAsset, Target: bs(model.FieldOtherCurrentAssets)},
		{ID: "ppe", Code: "1500", Name: "Property, Plant & Equipment (net)", Type: model.AccountTypeAsset, Target: bs(model.FieldPPENet), CashFlow: model.BucketInvesting},
		{ID: "intang", Code: "1600", Name: "Intangible Assets", Type: model.AccountTypeAsset, Target: bs(model.FieldIntangible), CashFlow: model.BucketInvesting},
		// Liabilities
		{ID: "ap", Code: "2000", Name: "Trade Payables", Type: model.AccountTypeLiability, Target: bs(model.FieldTradePayables)},
		{ID: "stb", Code: "2100", Name: "Short-term Borrowings", Type: model.AccountTypeLiability, Target: bs(model.FieldShortTermBorrowings), CashFlow: model.BucketFinancing},
		{ID: "ocl", Code: "2200", Name: "Other Current Liabilities", Type: model.AccountTypeLiability, Target: bs(model.FieldOtherCurrentLiabilities)},
		{ID: "ltb", Code: "2300", Name: "Long-term Borrowings", Type: model.AccountTypeLiability, Target: bs(model.FieldLongTermBorrowings), CashFlow: model.BucketFinancing},
		{ID: "dtl", Code: "2400", Name: "Deferred Tax Liabilities", Type: model.AccountTypeLiability, Target: bs(model.FieldDeferredTaxLiabilities)},
		// Equity
		{ID: "sc", Code: "3000", Name: "Share Capital", Type: model.AccountTypeEquity, Target: bs(model.FieldShareCapital), CashFlow: model.BucketFinancing},
		// Revenue & expenses
		{ID: "rev", Code: "4000", Name: "Revenue", Type: model.AccountTypeRevenue, Target: is(model.FieldRevenue)},
		{ID: "cogs", Code: "5000", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense, Target: is(model.FieldCOGS)},
		{ID: "opex", Code: "5100", Name: "Operating Expenses", Type: model.AccountTypeExpense, Target: is(model.FieldOperatingExpenses)},
		{ID: "intExp", Code: "5200", Name: "Interest Expense", Type: model.AccountTypeExpense, Target: is(model.FieldInterestExpense)},
		{ID: "taxExp", Code: "5300", Name: "Tax Expense", Type: model.AccountTypeExpense, Target: is(model.FieldTaxExpense)},
		// Distributions
		{ID: "div", Code: "5400", Name: "Dividends (Declared/Paid)", Type: model.AccountTypeDistribution, Target: eq(model.FieldDividends), CashFlow: model.BucketFinancing},
	}
}
