package alerts

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

func entry(date string, lines ...model.JournalLine) model.JournalEntry {
	return model.JournalEntry{ID: "e1", Date: date, Description: "test entry", Lines: lines}
}

func baseContext() Context {
	return Context{Accounts: chart, Today: "2025-06-15"}
}

func codes(alerts []model.Alert) []string {
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.Code
	}
	return out
}

func findAlert(t *testing.T, alerts []model.Alert, code string) model.Alert {
	t.Helper()
	for _, a := range alerts {
		if a.Code == code {
			return a
		}
	}
	t.Fatalf("no %s alert in %v", code, codes(alerts))
	return model.Alert{}
}

func TestEvaluate_CleanEntry(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "500000"),
		line(model.SideCredit, "rev", "500000"),
	)
	found := Evaluate(e, baseContext())
	assert.Empty(t, found)
}

func TestEvaluate_NoLines(t *testing.T) {
	found := Evaluate(entry("2025-06-10"), baseContext())
	got := codes(found)
	assert.Contains(t, got, model.AlertNoLines)
	assert.Contains(t, got, model.AlertNoAmounts)
}

func TestEvaluate_Imbalanced(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "500000"),
		line(model.SideCredit, "rev", "600000"),
	)
	found := Evaluate(e, baseContext())
	a := findAlert(t, found, model.AlertImbalanced)
	assert.Equal(t, model.SeverityError, a.Severity)
	assert.Contains(t, a.Message, "Rp 100.000")
}

func TestEvaluate_BalancedWithinEpsilon(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "500000.00005"),
		line(model.SideCredit, "rev", "500000"),
	)
	found := Evaluate(e, baseContext())
	assert.NotContains(t, codes(found), model.AlertImbalanced)
}

func TestEvaluate_MissingAccount_Blank(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "", "500000"),
		line(model.SideCredit, "rev", "500000"),
	)
	found := Evaluate(e, baseContext())
	a := findAlert(t, found, model.AlertMissingAccount)
	assert.Equal(t, model.SeverityError, a.Severity)
}

func TestEvaluate_MissingAccount_Unknown(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "petty_cash", "500000"),
		line(model.SideCredit, "rev", "500000"),
	)
	found := Evaluate(e, baseContext())
	a := findAlert(t, found, model.AlertMissingAccount)
	assert.Contains(t, a.Message, "petty_cash")
}

func TestEvaluate_LineScanStopsAtFirstHit(t *testing.T) {
	// Missing account on line 1 masks the bad amount on line 2.
	e := entry("2025-06-10",
		line(model.SideDebit, "", "500000"),
		line(model.SideCredit, "rev", "-500000"),
	)
	found := Evaluate(e, baseContext())
	got := codes(found)
	assert.Contains(t, got, model.AlertMissingAccount)
	assert.NotContains(t, got, model.AlertInvalidAmount)
}

func TestEvaluate_InvalidAmount(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "0"),
		line(model.SideCredit, "rev", "0"),
	)
	found := Evaluate(e, baseContext())
	got := codes(found)
	assert.Contains(t, got, model.AlertInvalidAmount)
	assert.Contains(t, got, model.AlertNoAmounts)
}

func TestEvaluate_FutureDate(t *testing.T) {
	ctx := baseContext()

	e := entry("2025-06-16",
		line(model.SideDebit, "cash", "500000"),
		line(model.SideCredit, "rev", "500000"),
	)
	found := Evaluate(e, ctx)
	assert.Contains(t, codes(found), model.AlertFutureDate)

	e.Date = "2025-06-15"
	found = Evaluate(e, ctx)
	assert.NotContains(t, codes(found), model.AlertFutureDate)
}

func TestEvaluate_NoDescription(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "500000"),
		line(model.SideCredit, "rev", "500000"),
	)
	e.Description = "   "
	found := Evaluate(e, baseContext())
	a := findAlert(t, found, model.AlertNoDesc)
	assert.Equal(t, model.SeverityWarning, a.Severity)
}

func TestEvaluate_RevenueDebited(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "rev", "500000"),
		line(model.SideCredit, "cash", "500000"),
	)
	found := Evaluate(e, baseContext())
	assert.Contains(t, codes(found), model.AlertRevenueDebit)
}

func TestEvaluate_ExpenseCredited(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "2000000"),
		line(model.SideCredit, "opex", "2000000"),
	)
	found := Evaluate(e, baseContext())
	a := findAlert(t, found, model.AlertExpenseCredit)
	assert.Equal(t, model.SeverityWarning, a.Severity)
}

func TestEvaluate_RevenueDebitFlaggedPerLine(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "rev", "300000"),
		line(model.SideDebit, "rev", "200000"),
		line(model.SideCredit, "cash", "500000"),
	)
	found := Evaluate(e, baseContext())
	hits := 0
	for _, a := range found {
		if a.Code == model.AlertRevenueDebit {
			hits++
		}
	}
	assert.Equal(t, 2, hits)
}

func TestEvaluate_LargeVsAssets(t *testing.T) {
	ctx := baseContext()
	ctx.AssetsTotal = dec("100000000")

	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "25000000"),
		line(model.SideCredit, "rev", "25000000"),
	)
	found := Evaluate(e, ctx)
	a := findAlert(t, found, model.AlertLargeVsAssets)
	assert.Contains(t, a.Message, "25.0%")
}

func TestEvaluate_LargeVsAssets_BelowThreshold(t *testing.T) {
	ctx := baseContext()
	ctx.AssetsTotal = dec("100000000")

	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "19000000"),
		line(model.SideCredit, "rev", "19000000"),
	)
	found := Evaluate(e, ctx)
	assert.NotContains(t, codes(found), model.AlertLargeVsAssets)
}

func TestEvaluate_LargeVsAssets_SkippedWithoutContext(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "25000000"),
		line(model.SideCredit, "rev", "25000000"),
	)
	found := Evaluate(e, baseContext())
	assert.NotContains(t, codes(found), model.AlertLargeVsAssets)
}

func TestEvaluate_LargeVsCash(t *testing.T) {
	ctx := baseContext()
	ctx.CashBalance = dec("10000000")

	e := entry("2025-06-10",
		line(model.SideDebit, "opex", "6000000"),
		line(model.SideCredit, "cash", "6000000"),
	)
	found := Evaluate(e, ctx)
	a := findAlert(t, found, model.AlertLargeVsCash)
	assert.Contains(t, a.Message, "60.0%")
}

func TestEvaluate_RoundNumbers(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "2000000"),
		line(model.SideCredit, "rev", "2000000"),
	)
	found := Evaluate(e, baseContext())
	a := findAlert(t, found, model.AlertRoundNumbers)
	assert.Equal(t, model.SeverityInfo, a.Severity)
}

func TestEvaluate_RoundNumbers_NotEnoughHits(t *testing.T) {
	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "1500000"),
		line(model.SideCredit, "rev", "1000000"),
		line(model.SideCredit, "rev", "500000"),
	)
	found := Evaluate(e, baseContext())
	assert.NotContains(t, codes(found), model.AlertRoundNumbers)
}

func TestEvaluate_PossibleDuplicate_OrderIndependent(t *testing.T) {
	a := entry("2025-06-10",
		line(model.SideDebit, "cash", "750000"),
		line(model.SideCredit, "rev", "750000"),
	)
	b := entry("2025-06-10",
		line(model.SideCredit, "rev", "750000"),
		line(model.SideDebit, "cash", "750000"),
	)
	b.ID = "e2"

	ctxA := baseContext()
	ctxA.Existing = []model.JournalEntry{b}
	assert.Contains(t, codes(Evaluate(a, ctxA)), model.AlertPossibleDup)

	ctxB := baseContext()
	ctxB.Existing = []model.JournalEntry{a}
	assert.Contains(t, codes(Evaluate(b, ctxB)), model.AlertPossibleDup)
}

func TestEvaluate_PossibleDuplicate_DifferentDate(t *testing.T) {
	a := entry("2025-06-10",
		line(model.SideDebit, "cash", "750000"),
		line(model.SideCredit, "rev", "750000"),
	)
	b := entry("2025-06-11", a.Lines...)

	ctx := baseContext()
	ctx.Existing = []model.JournalEntry{b}
	assert.NotContains(t, codes(Evaluate(a, ctx)), model.AlertPossibleDup)
}

func TestEvaluate_Deterministic(t *testing.T) {
	ctx := baseContext()
	ctx.AssetsTotal = dec("50000000")
	ctx.CashBalance = dec("20000000")

	e := entry("2025-07-01",
		line(model.SideDebit, "rev", "15000000"),
		line(model.SideCredit, "opex", "15000000"),
	)
	e.Description = ""

	first := Evaluate(e, ctx)
	second := Evaluate(e, ctx)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestEvaluate_ThresholdOverride(t *testing.T) {
	ctx := baseContext()
	ctx.AssetsTotal = dec("100000000")
	ctx.LargeVsAssets = dec("0.5")

	e := entry("2025-06-10",
		line(model.SideDebit, "cash", "25000000"),
		line(model.SideCredit, "rev", "25000000"),
	)
	found := Evaluate(e, ctx)
	assert.NotContains(t, codes(found), model.AlertLargeVsAssets)
}
