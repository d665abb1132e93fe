package statements

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"
)

// CheckConsistency verifies that a statement bundle articulates.
// It returns one message per violated cross-statement rule; an empty
// slice means the statements tie out.
func CheckConsistency(s model.Statements) []string {
	var problems []string

	bs := s.BalanceSheet
	is := s.IncomeStatement
	cfs := s.CashFlow
	eq := s.EquityChanges

	within := func(a, b decimal.Decimal) bool {
		return a.Sub(b).Abs().LessThanOrEqual(model.BalanceEpsilon)
	}

	assetSum := bs.Cash.
		Add(bs.TradeReceivables).
		Add(bs.Inventories).
		Add(bs.OtherCurrentAssets).
		Add(bs.PPENet).
		Add(bs.Intangible)
	if !within(bs.TotalAssets, assetSum) {
		problems = append(problems, fmt.Sprintf("total assets %s != asset sum %s", bs.TotalAssets, assetSum))
	}

	liabSum := bs.TradePayables.
		Add(bs.ShortTermBorrowings).
		Add(bs.OtherCurrentLiabilities).
		Add(bs.LongTermBorrowings).
		Add(bs.DeferredTaxLiabilities)
	if !within(bs.TotalLiabilities, liabSum) {
		problems = append(problems, fmt.Sprintf("total liabilities %s != liability sum %s", bs.TotalLiabilities, liabSum))
	}

	if !within(bs.TotalEquity, bs.ShareCapital.Add(bs.RetainedEarnings)) {
		problems = append(problems, fmt.Sprintf("total equity %s != share capital + retained earnings", bs.TotalEquity))
	}

	if !within(bs.TotalAssets, bs.TotalLiabilities.Add(bs.TotalEquity)) {
		problems = append(problems, fmt.Sprintf("assets %s != liabilities %s + equity %s", bs.TotalAssets, bs.TotalLiabilities, bs.TotalEquity))
	}

	if !within(is.GrossProfit, is.Revenue.Sub(is.COGS)) {
		problems = append(problems, "gross profit != revenue - cogs")
	}
	if !within(is.EBIT, is.GrossProfit.Sub(is.OperatingExpenses)) {
		problems = append(problems, "ebit != gross profit - operating expenses")
	}
	if !within(is.ProfitBeforeTax, is.EBIT.Sub(is.InterestExpense)) {
		problems = append(problems, "profit before tax != ebit - interest expense")
	}
	if !within(is.NetIncome, is.ProfitBeforeTax.Sub(is.TaxExpense)) {
		problems = append(problems, "net income != profit before tax - tax expense")
	}

	if !within(eq.NetIncome, is.NetIncome) {
		problems = append(problems, "equity statement net income != income statement net income")
	}
	closing := eq.OpeningRetainedEarnings.Add(eq.NetIncome).Sub(eq.Dividends).Add(eq.OtherAdjustments)
	if !within(eq.ClosingRetainedEarnings, closing) {
		problems = append(problems, "closing retained earnings does not roll forward")
	}
	if !within(bs.RetainedEarnings, eq.ClosingRetainedEarnings) {
		problems = append(problems, "balance sheet retained earnings != closing retained earnings")
	}

	if !within(cfs.ClosingCash, bs.Cash) {
		problems = append(problems, "closing cash != balance sheet cash")
	}
	if !within(cfs.NetChangeInCash, cfs.ClosingCash.Sub(cfs.OpeningCash)) {
		problems = append(problems, "net change in cash != closing - opening cash")
	}
	buckets := cfs.CashFromOperations.Add(cfs.CashFromInvesting).Add(cfs.CashFromFinancing)
	if !within(cfs.NetChangeInCash, buckets) {
		problems = append(problems, "cash flow buckets do not sum to net change in cash")
	}

	return problems
}
