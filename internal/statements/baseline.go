package statements

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/saldo-dev/saldo/internal/model"
)

// DefaultBaseline returns the FY2024 opening snapshot the ledger posts
// against. The figures articulate: assets equal liabilities plus
// equity, retained earnings tie to the equity statement, and the cash
// flow reconciles to the balance-sheet cash movement.
func DefaultBaseline() model.Statements {
	idr := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

	return model.Statements{
		BalanceSheet: model.BalanceSheet{
			Cash:                    idr(1_250_000_000),
			TradeReceivables:        idr(850_000_000),
			Inventories:             idr(640_000_000),
			OtherCurrentAssets:      idr(160_000_000),
			PPENet:                  idr(2_100_000_000),
			Intangible:              idr(150_000_000),
			TotalAssets:             idr(5_150_000_000),
			TradePayables:           idr(520_000_000),
			ShortTermBorrowings:     idr(400_000_000),
			OtherCurrentLiabilities: idr(180_000_000),
			LongTermBorrowings:      idr(900_000_000),
			DeferredTaxLiabilities:  idr(100_000_000),
			TotalLiabilities:        idr(2_100_000_000),
			ShareCapital:            idr(1_500_000_000),
			RetainedEarnings:        idr(1_550_000_000),
			TotalEquity:             idr(3_050_000_000),
		},
		IncomeStatement: model.IncomeStatement{
			Revenue:           idr(7_200_000_000),
			COGS:              idr(4_320_000_000),
			GrossProfit:       idr(2_880_000_000),
			OperatingExpenses: idr(1_950_000_000),
			EBIT:              idr(930_000_000),
			InterestExpense:   idr(130_000_000),
			ProfitBeforeTax:   idr(800_000_000),
			TaxExpense:        idr(176_000_000),
			NetIncome:         idr(624_000_000),
		},
		CashFlow: model.CashFlow{
			OpeningCash:        idr(980_000_000),
			CashFromOperations: idr(770_000_000),
			CashFromInvesting:  idr(-350_000_000),
			CashFromFinancing:  idr(-150_000_000),
			NetChangeInCash:    idr(270_000_000),
			ClosingCash:        idr(1_250_000_000),
		},
		EquityChanges: model.EquityChanges{
			OpeningRetainedEarnings: idr(1_126_000_000),
			NetIncome:               idr(624_000_000),
			Dividends:               idr(200_000_000),
			OtherAdjustments:        idr(0),
			ClosingRetainedEarnings: idr(1_550_000_000),
		},
	}
}

// LoadBaseline reads a baseline snapshot from a JSON file.
func LoadBaseline(path string) (model.Statements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Statements{}, fmt.Errorf("reading baseline: %w", err)
	}
	var base model.Statements
	if err := json.Unmarshal(data, &base); err != nil {
		return model.Statements{}, fmt.Errorf("parsing baseline: %w", err)
	}
	return base, nil
}

// SaveBaseline writes a baseline snapshot to a JSON file.
func SaveBaseline(path string, base model.Statements) error {
	data, err := json.MarshalIndent(base, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling baseline: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}
	return nil
}
