// Package alerts evaluates draft and posted journal entries against a
// fixed battery of bookkeeping checks. Evaluation is pure: the same
// entry and context always produce the same ordered findings.
package alerts

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/currency"
	"github.com/saldo-dev/saldo/internal/model"
)

// Resolver looks up accounts in the chart of accounts.
type Resolver interface {
	Get(id string) (model.Account, bool)
}

// Default thresholds for the large-transaction heuristics.
var (
	DefaultLargeVsAssets = decimal.NewFromFloat(0.2)
	DefaultLargeVsCash   = decimal.NewFromFloat(0.5)
)

var (
	roundUnit    = decimal.New(1, 6) // 1,000,000
	oneHundred   = decimal.NewFromInt(100)
	minRoundHits = 2
)

// Context carries the ledger state a candidate entry is judged against.
// Zero-valued fields disable the corresponding checks or fall back to
// defaults.
type Context struct {
	// AssetsTotal and CashBalance are the current derived totals; the
	// large-transaction checks only run when they are positive.
	AssetsTotal decimal.Decimal
	CashBalance decimal.Decimal

	// Existing entries scanned for duplicates. The candidate itself
	// must not be among them.
	Existing []model.JournalEntry

	// Accounts resolves line account ids; nil disables resolution so
	// only blank ids trigger MISSING_ACCOUNT.
	Accounts Resolver

	// Today is an ISO date overriding the wall clock, for tests.
	Today string

	// Threshold overrides; zero means the default ratio.
	LargeVsAssets decimal.Decimal
	LargeVsCash   decimal.Decimal
}

// Evaluate runs every check against the candidate entry and returns the
// findings in a fixed order. Multiple checks may fire; none of them
// stops the others.
func Evaluate(entry model.JournalEntry, ctx Context) []model.Alert {
	var out []model.Alert

	totalDebit := entry.TotalDebit()
	totalCredit := entry.TotalCredit()

	if len(entry.Lines) == 0 {
		out = append(out, model.Alert{
			Severity: model.SeverityError,
			Code:     model.AlertNoLines,
			Message:  "Journal has no lines.",
		})
	}
	if totalDebit.Sign() <= 0 || totalCredit.Sign() <= 0 {
		out = append(out, model.Alert{
			Severity: model.SeverityError,
			Code:     model.AlertNoAmounts,
			Message:  "Debit and credit must be greater than 0.",
		})
	}
	if diff := totalDebit.Sub(totalCredit).Abs(); diff.GreaterThan(model.BalanceEpsilon) {
		out = append(out, model.Alert{
			Severity: model.SeverityError,
			Code:     model.AlertImbalanced,
			Message:  fmt.Sprintf("Entry not balanced by %s.", currency.FormatRupiah(diff)),
		})
	}

	// Line-level errors stop at the first offending line: one finding
	// is enough to send the user back to the form.
	for _, l := range entry.Lines {
		if a, bad := badAccount(l, ctx.Accounts); bad {
			out = append(out, a)
			break
		}
		if l.Amount.Sign() <= 0 {
			out = append(out, model.Alert{
				Severity: model.SeverityError,
				Code:     model.AlertInvalidAmount,
				Message:  "Amounts must be positive numbers.",
			})
			break
		}
	}

	today := ctx.Today
	if today == "" {
		today = time.Now().Format(model.DateFormat)
	}
	if entry.Date != "" && entry.Date > today {
		out = append(out, model.Alert{
			Severity: model.SeverityWarning,
			Code:     model.AlertFutureDate,
			Message:  "Journal date is in the future.",
		})
	}

	if !entry.HasDescription() {
		out = append(out, model.Alert{
			Severity: model.SeverityWarning,
			Code:     model.AlertNoDesc,
			Message:  "Consider adding a clear description for the audit trail.",
		})
	}

	// Unusual side usage, flagged per line.
	if ctx.Accounts != nil {
		for _, l := range entry.Lines {
			acct, ok := ctx.Accounts.Get(l.AccountID)
			if !ok {
				continue
			}
			if acct.Type == model.AccountTypeRevenue && l.Side == model.SideDebit {
				out = append(out, model.Alert{
					Severity: model.SeverityWarning,
					Code:     model.AlertRevenueDebit,
					Message:  "Revenue debited: is this a return or reversal?",
				})
			}
			if acct.Type == model.AccountTypeExpense && l.Side == model.SideCredit {
				out = append(out, model.Alert{
					Severity: model.SeverityWarning,
					Code:     model.AlertExpenseCredit,
					Message:  "Expense credited: refund or reclassification?",
				})
			}
		}
	}

	// Large-transaction heuristics. The entry total is the debit total,
	// which equals the credit total once balanced.
	entryTotal := totalDebit
	if ctx.AssetsTotal.Sign() > 0 {
		ratio := entryTotal.Div(ctx.AssetsTotal)
		if ratio.GreaterThanOrEqual(threshold(ctx.LargeVsAssets, DefaultLargeVsAssets)) {
			out = append(out, model.Alert{
				Severity: model.SeverityWarning,
				Code:     model.AlertLargeVsAssets,
				Message: fmt.Sprintf("Large entry (%s%% of total assets). Review authorization.",
					ratio.Mul(oneHundred).StringFixed(1)),
			})
		}
	}
	if ctx.CashBalance.Sign() > 0 {
		ratio := entryTotal.Div(ctx.CashBalance)
		if ratio.GreaterThanOrEqual(threshold(ctx.LargeVsCash, DefaultLargeVsCash)) {
			out = append(out, model.Alert{
				Severity: model.SeverityWarning,
				Code:     model.AlertLargeVsCash,
				Message: fmt.Sprintf("Large entry (%s%% of cash balance). Ensure cash availability and approval.",
					ratio.Mul(oneHundred).StringFixed(1)),
			})
		}
	}

	// Round-number pattern: lines of at least one million rupiah ending
	// in six zeros, forming half or more of the entry.
	rounded := 0
	for _, l := range entry.Lines {
		if l.Amount.GreaterThanOrEqual(roundUnit) && l.Amount.Mod(roundUnit).IsZero() {
			rounded++
		}
	}
	need := (len(entry.Lines) + 1) / 2
	if need < minRoundHits {
		need = minRoundHits
	}
	if rounded >= need {
		out = append(out, model.Alert{
			Severity: model.SeverityInfo,
			Code:     model.AlertRoundNumbers,
			Message:  "Many large round-number amounts. Double-check supporting documents.",
		})
	}

	// Duplicate detection: same date, identical normalized line set.
	key := normalizeKey(entry.Lines)
	for _, ex := range ctx.Existing {
		if len(ex.Lines) == 0 {
			continue
		}
		if ex.Date == entry.Date && normalizeKey(ex.Lines) == key {
			out = append(out, model.Alert{
				Severity: model.SeverityWarning,
				Code:     model.AlertPossibleDup,
				Message:  "Possible duplicate of an existing journal on the same date.",
			})
			break
		}
	}

	return out
}

// HasErrors reports whether any finding carries error severity.
func HasErrors(alerts []model.Alert) bool {
	for _, a := range alerts {
		if a.IsError() {
			return true
		}
	}
	return false
}

func badAccount(l model.JournalLine, accounts Resolver) (model.Alert, bool) {
	if l.AccountID == "" {
		return model.Alert{
			Severity: model.SeverityError,
			Code:     model.AlertMissingAccount,
			Message:  "One or more lines have no account selected.",
		}, true
	}
	if accounts != nil {
		if _, ok := accounts.Get(l.AccountID); !ok {
			return model.Alert{
				Severity: model.SeverityError,
				Code:     model.AlertMissingAccount,
				Message:  fmt.Sprintf("Account %q is not in the chart of accounts.", l.AccountID),
			}, true
		}
	}
	return model.Alert{}, false
}

func threshold(override, fallback decimal.Decimal) decimal.Decimal {
	if override.Sign() > 0 {
		return override
	}
	return fallback
}

// normalizeKey serializes lines sorted by (side, account, amount) so
// comparison ignores entry order.
func normalizeKey(lines []model.JournalLine) string {
	sorted := make([]model.JournalLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Side != b.Side {
			return a.Side < b.Side
		}
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}
		return a.Amount.LessThan(b.Amount)
	})

	var sb strings.Builder
	for _, l := range sorted {
		sb.WriteString(string(l.Side))
		sb.WriteString("|")
		sb.WriteString(l.AccountID)
		sb.WriteString("|")
		sb.WriteString(l.Amount.String())
		sb.WriteString(";")
	}
	return sb.String()
}
