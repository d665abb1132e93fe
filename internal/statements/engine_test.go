package statements

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/model"
)

var chart = accounts.NewService(accounts.DefaultChart())

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(side model.Side, account, amount string) model.JournalLine {
	return model.JournalLine{ID: account + "-" + string(side), Side: side, AccountID: account, Amount: dec(amount)}
}

func entry(id, date string, lines ...model.JournalLine) model.JournalEntry {
	return model.JournalEntry{ID: id, Date: date, Lines: lines}
}

func assertDec(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", label, want, got)
}

func TestDerive_NoEntries(t *testing.T) {
	base := DefaultBaseline()
	s := Derive(base, chart, nil)

	assertDec(t, "5150000000", s.BalanceSheet.TotalAssets, "total assets")
	assertDec(t, "624000000", s.IncomeStatement.NetIncome, "net income")
	assertDec(t, "1550000000", s.EquityChanges.ClosingRetainedEarnings, "closing re")
	// Buckets accumulate from entries only; with none the whole cash
	// movement sits in operations.
	assertDec(t, "0", s.CashFlow.CashFromInvesting, "cfi")
	assertDec(t, "0", s.CashFlow.CashFromFinancing, "cff")
	assertDec(t, "270000000", s.CashFlow.CashFromOperations, "cfo")
	assert.Empty(t, CheckConsistency(s))
}

func TestDerive_CashSale(t *testing.T) {
	base := DefaultBaseline()
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "cash", "1000000"),
		line(model.SideCredit, "rev", "1000000"),
	)
	s := Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "1251000000", s.BalanceSheet.Cash, "cash")
	assertDec(t, "7201000000", s.IncomeStatement.Revenue, "revenue")
	assertDec(t, "625000000", s.IncomeStatement.NetIncome, "net income")
	assertDec(t, "1551000000", s.BalanceSheet.RetainedEarnings, "retained earnings")
	assertDec(t, "5151000000", s.BalanceSheet.TotalAssets, "total assets")
	assert.Empty(t, CheckConsistency(s))
}

func TestDerive_BaseUntouched(t *testing.T) {
	base := DefaultBaseline()
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "cash", "1000000"),
		line(model.SideCredit, "rev", "1000000"),
	)
	_ = Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "1250000000", base.BalanceSheet.Cash, "base cash")
	assertDec(t, "7200000000", base.IncomeStatement.Revenue, "base revenue")
}

func TestDerive_Idempotent(t *testing.T) {
	base := DefaultBaseline()
	es := []model.JournalEntry{
		entry("2025-01-001", "2025-01-10",
			line(model.SideDebit, "cash", "5000000"),
			line(model.SideCredit, "rev", "5000000"),
		),
		entry("2025-01-002", "2025-01-11",
			line(model.SideDebit, "opex", "2500000"),
			line(model.SideCredit, "cash", "2500000"),
		),
	}
	first := Derive(base, chart, es)
	second := Derive(base, chart, es)
	assert.Equal(t, first, second)
}

func TestDerive_ReversalRoundTrip(t *testing.T) {
	base := DefaultBaseline()
	forward := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "ar", "3000000"),
		line(model.SideCredit, "rev", "3000000"),
	)
	reverse := entry("2025-01-002", "2025-01-11",
		line(model.SideDebit, "rev", "3000000"),
		line(model.SideCredit, "ar", "3000000"),
	)

	clean := Derive(base, chart, nil)
	round := Derive(base, chart, []model.JournalEntry{forward, reverse})

	assert.True(t, clean.BalanceSheet.TotalAssets.Equal(round.BalanceSheet.TotalAssets))
	assert.True(t, clean.IncomeStatement.NetIncome.Equal(round.IncomeStatement.NetIncome))
	assert.True(t, clean.BalanceSheet.TradeReceivables.Equal(round.BalanceSheet.TradeReceivables))
	assert.True(t, clean.EquityChanges.ClosingRetainedEarnings.Equal(round.EquityChanges.ClosingRetainedEarnings))
	assert.True(t, clean.CashFlow.ClosingCash.Equal(round.CashFlow.ClosingCash))
}

func TestDerive_UnknownAccountSkipped(t *testing.T) {
	base := DefaultBaseline()
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "petty_cash", "9000000"),
	)

	clean := Derive(base, chart, nil)
	got := Derive(base, chart, []model.JournalEntry{e})
	assert.Equal(t, clean, got)
}

func TestDerive_SignConventions(t *testing.T) {
	base := DefaultBaseline()
	// Pay down a payable from cash: both sides shrink.
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "ap", "10000000"),
		line(model.SideCredit, "cash", "10000000"),
	)
	s := Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "510000000", s.BalanceSheet.TradePayables, "trade payables")
	assertDec(t, "1240000000", s.BalanceSheet.Cash, "cash")
	assert.Empty(t, CheckConsistency(s))
}

func TestDerive_InvestingBucket(t *testing.T) {
	base := DefaultBaseline()
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "ppe", "50000000"),
		line(model.SideCredit, "cash", "50000000"),
	)
	s := Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "-50000000", s.CashFlow.CashFromInvesting, "cfi")
	assertDec(t, "0", s.CashFlow.CashFromFinancing, "cff")
	assertDec(t, "1200000000", s.CashFlow.ClosingCash, "closing cash")
	// Residual operations = net change - investing - financing.
	assertDec(t, "270000000", s.CashFlow.CashFromOperations, "cfo")
	assert.Empty(t, CheckConsistency(s))
}

func TestDerive_FinancingBucket(t *testing.T) {
	base := DefaultBaseline()
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "cash", "100000000"),
		line(model.SideCredit, "ltb", "100000000"),
	)
	s := Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "100000000", s.CashFlow.CashFromFinancing, "cff")
	assertDec(t, "0", s.CashFlow.CashFromInvesting, "cfi")
	assert.Empty(t, CheckConsistency(s))
}

func TestDerive_MixedEntryFallsToOperations(t *testing.T) {
	base := DefaultBaseline()
	// Cash out against both an investing account and a plain expense:
	// ambiguous, so neither bucket takes the delta.
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "ppe", "30000000"),
		line(model.SideDebit, "opex", "20000000"),
		line(model.SideCredit, "cash", "50000000"),
	)
	s := Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "0", s.CashFlow.CashFromInvesting, "cfi")
	assertDec(t, "0", s.CashFlow.CashFromFinancing, "cff")
	assertDec(t, "220000000", s.CashFlow.CashFromOperations, "cfo")
	assert.Empty(t, CheckConsistency(s))
}

func TestDerive_NoCashMovementNoBucket(t *testing.T) {
	base := DefaultBaseline()
	// Buy equipment on credit: investing-side sum is positive but no
	// cash moved, so the buckets stay empty.
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "ppe", "40000000"),
		line(model.SideCredit, "ap", "40000000"),
	)
	s := Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "0", s.CashFlow.CashFromInvesting, "cfi")
	assertDec(t, "2140000000", s.BalanceSheet.PPENet, "ppe")
	assert.Empty(t, CheckConsistency(s))
}

func TestDerive_DividendsFlowThroughEquity(t *testing.T) {
	base := DefaultBaseline()
	e := entry("2025-01-001", "2025-01-10",
		line(model.SideDebit, "div", "25000000"),
		line(model.SideCredit, "cash", "25000000"),
	)
	s := Derive(base, chart, []model.JournalEntry{e})

	assertDec(t, "225000000", s.EquityChanges.Dividends, "dividends")
	assertDec(t, "1525000000", s.EquityChanges.ClosingRetainedEarnings, "closing re")
	assertDec(t, "-25000000", s.CashFlow.CashFromFinancing, "cff")
	assert.Empty(t, CheckConsistency(s))
}

func TestBaselineRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/baseline.json"

	base := DefaultBaseline()
	require.NoError(t, SaveBaseline(path, base))

	loaded, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.True(t, base.BalanceSheet.Cash.Equal(loaded.BalanceSheet.Cash))
	assert.True(t, base.CashFlow.OpeningCash.Equal(loaded.CashFlow.OpeningCash))
	assert.Empty(t, CheckConsistency(loaded))
}
