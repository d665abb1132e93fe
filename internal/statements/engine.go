// Package statements derives the four financial statements from a base
// snapshot and a list of posted journal entries.
package statements

import (
	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"
)

// Resolver looks up accounts in the chart of accounts.
type Resolver interface {
	Get(id string) (model.Account, bool)
}

// Derive folds entries onto the base snapshot and returns the current
// statements. The fold is a pure function of its inputs and is always
// recomputed from the full entry list; there is no incremental path.
//
// Lines referencing unknown accounts are skipped without effect.
// Validation is the alert evaluator's job, not the posting engine's.
func Derive(base model.Statements, accounts Resolver, entries []model.JournalEntry) model.Statements {
	s := base // value copy, base stays untouched

	cfi := decimal.Zero
	cff := decimal.Zero

	for _, entry := range entries {
		cashDelta := decimal.Zero
		investSum := decimal.Zero
		financeSum := decimal.Zero
		otherSum := decimal.Zero

		for _, line := range entry.Lines {
			acct, ok := accounts.Get(line.AccountID)
			if !ok {
				continue
			}

			post(&s, acct, line.Side, line.Amount)

			switch acct.CashFlow {
			case model.BucketCash:
				if line.Side == model.SideDebit {
					cashDelta = cashDelta.Add(line.Amount)
				} else {
					cashDelta = cashDelta.Sub(line.Amount)
				}
			case model.BucketInvesting:
				investSum = investSum.Add(line.Amount.Abs())
			case model.BucketFinancing:
				financeSum = financeSum.Add(line.Amount.Abs())
			default:
				otherSum = otherSum.Add(line.Amount.Abs())
			}
		}

		// Single-bucket-winner heuristic: the entry's whole cash delta
		// goes to investing or financing only when exactly one of those
		// buckets saw non-cash movement and nothing else did. Everything
		// ambiguous lands in the operations residual.
		if !cashDelta.IsZero() {
			switch {
			case investSum.IsPositive() && financeSum.IsZero() && otherSum.IsZero():
				cfi = cfi.Add(cashDelta)
			case financeSum.IsPositive() && investSum.IsZero() && otherSum.IsZero():
				cff = cff.Add(cashDelta)
			}
		}
	}

	recomputeDerived(&s, cfi, cff)
	return s
}

// post applies one line's signed delta to the statement field the
// account targets.
func post(s *model.Statements, acct model.Account, side model.Side, amount decimal.Decimal) {
	sign := acct.Type.DebitSign()
	if side == model.SideCredit {
		sign = -sign
	}

	delta := amount
	if sign < 0 {
		delta = delta.Neg()
	}

	field := fieldRef(s, acct.Target)
	if field == nil {
		return
	}
	*field = field.Add(delta)
}

// fieldRef maps a statement target onto the backing field. Unknown
// targets return nil and the posting is dropped.
func fieldRef(s *model.Statements, target model.StatementTarget) *decimal.Decimal {
	switch target.Statement {
	case model.StatementBalanceSheet:
		bs := &s.BalanceSheet
		switch target.Field {
		case model.FieldCash:
			return &bs.Cash
		case model.FieldTradeReceivables:
			return &bs.TradeReceivables
		case model.FieldInventories:
			return &bs.Inventories
		case model.FieldOtherCurrentAssets:
			return &bs.OtherCurrentAssets
		case model.FieldPPENet:
			return &bs.PPENet
		case model.FieldIntangible:
			return &bs.Intangible
		case model.FieldTradePayables:
			return &bs.TradePayables
		case model.FieldShortTermBorrowings:
			return &bs.ShortTermBorrowings
		case model.FieldOtherCurrentLiabilities:
			return &bs.OtherCurrentLiabilities
		case model.FieldLongTermBorrowings:
			return &bs.LongTermBorrowings
		case model.FieldDeferredTaxLiabilities:
			return &bs.DeferredTaxLiabilities
		case model.FieldShareCapital:
			return &bs.ShareCapital
		}
	case model.StatementIncomeStatement:
		is := &s.IncomeStatement
		switch target.Field {
		case model.FieldRevenue:
			return &is.Revenue
		case model.FieldCOGS:
			return &is.COGS
		case model.FieldOperatingExpenses:
			return &is.OperatingExpenses
		case model.FieldInterestExpense:
			return &is.InterestExpense
		case model.FieldTaxExpense:
			return &is.TaxExpense
		}
	case model.StatementEquity:
		if target.Field == model.FieldDividends {
			return &s.EquityChanges.Dividends
		}
	}
	return nil
}

// recomputeDerived rebuilds every derived total in fixed order so the
// four statements always articulate.
func recomputeDerived(s *model.Statements, cfi, cff decimal.Decimal) {
	is := &s.IncomeStatement
	is.GrossProfit = is.Revenue.Sub(is.COGS)
	is.EBIT = is.GrossProfit.Sub(is.OperatingExpenses)
	is.ProfitBeforeTax = is.EBIT.Sub(is.InterestExpense)
	is.NetIncome = is.ProfitBeforeTax.Sub(is.TaxExpense)

	eq := &s.EquityChanges
	eq.NetIncome = is.NetIncome
	eq.ClosingRetainedEarnings = eq.OpeningRetainedEarnings.
		Add(eq.NetIncome).
		Sub(eq.Dividends).
		Add(eq.OtherAdjustments)

	bs := &s.BalanceSheet
	bs.TotalAssets = bs.Cash.
		Add(bs.TradeReceivables).
		Add(bs.Inventories).
		Add(bs.OtherCurrentAssets).
		Add(bs.PPENet).
		Add(bs.Intangible)
	bs.RetainedEarnings = eq.ClosingRetainedEarnings
	bs.TotalLiabilities = bs.TradePayables.
		Add(bs.ShortTermBorrowings).
		Add(bs.OtherCurrentLiabilities).
		Add(bs.LongTermBorrowings).
		Add(bs.DeferredTaxLiabilities)
	bs.TotalEquity = bs.ShareCapital.Add(bs.RetainedEarnings)

	cfs := &s.CashFlow
	cfs.ClosingCash = bs.Cash
	cfs.NetChangeInCash = cfs.ClosingCash.Sub(cfs.OpeningCash)
	cfs.CashFromInvesting = cfi
	cfs.CashFromFinancing = cff
	// Operations is the plug that reconciles the other buckets.
	cfs.CashFromOperations = cfs.NetChangeInCash.
		Sub(cfs.CashFromInvesting).
		Sub(cfs.CashFromFinancing)
}
