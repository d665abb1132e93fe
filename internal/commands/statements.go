package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/currency"
	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/statements"
)

func newStatementsCommand() *cobra.Command {
	var ledgerDir string
	var compact bool

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Derive and print the four financial statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(ledgerDir)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := env.restore(cmd.Context()); err != nil {
				return err
			}

			derived := env.Ledger.Statements()
			renderStatements(os.Stdout, derived, compact)

			if problems := statements.CheckConsistency(derived); len(problems) > 0 {
				fmt.Println("\nConsistency problems:")
				for _, p := range problems {
					fmt.Printf("  - %s\n", p)
				}
				return fmt.Errorf("statements do not articulate")
			}
			fmt.Println("\nStatements articulate.")
			return nil
		},
	}

	cmd.Flags().StringVar(&ledgerDir, "ledger", ".", "ledger directory")
	cmd.Flags().BoolVar(&compact, "compact", false, "abbreviated amounts (Rp 1.2 B)")

	return cmd
}

func renderStatements(out io.Writer, s model.Statements, compact bool) {
	format := currency.FormatRupiah
	if compact {
		format = currency.FormatCompact
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	row := func(label string, v decimal.Decimal) {
		fmt.Fprintf(w, "  %s\t%s\n", label, format(v))
	}

	bs := s.BalanceSheet
	fmt.Fprintln(w, "BALANCE SHEET\t")
	row("Cash", bs.Cash)
	row("Trade Receivables", bs.TradeReceivables)
	row("Inventories", bs.Inventories)
	row("Other Current Assets", bs.OtherCurrentAssets)
	row("PP&E (net)", bs.PPENet)
	row("Intangible Assets", bs.Intangible)
	row("Total Assets", bs.TotalAssets)
	row("Trade Payables", bs.TradePayables)
	row("Short-term Borrowings", bs.ShortTermBorrowings)
	row("Other Current Liabilities", bs.OtherCurrentLiabilities)
	row("Long-term Borrowings", bs.LongTermBorrowings)
	row("Deferred Tax Liabilities", bs.DeferredTaxLiabilities)
	row("Total Liabilities", bs.TotalLiabilities)
	row("Share Capital", bs.ShareCapital)
	row("Retained Earnings", bs.RetainedEarnings)
	row("Total Equity", bs.TotalEquity)

	is := s.IncomeStatement
	fmt.Fprintln(w, "\nINCOME STATEMENT\t")
	row("Revenue", is.Revenue)
	row("COGS", is.COGS)
	row("Gross Profit", is.GrossProfit)
	row("Operating Expenses", is.OperatingExpenses)
	row("EBIT", is.EBIT)
	row("Interest Expense", is.InterestExpense)
	row("Profit Before Tax", is.ProfitBeforeTax)
	row("Tax Expense", is.TaxExpense)
	row("Net Income", is.NetIncome)

	cfs := s.CashFlow
	fmt.Fprintln(w, "\nCASH FLOW\t")
	row("Opening Cash", cfs.OpeningCash)
	row("Cash from Operations", cfs.CashFromOperations)
	row("Cash from Investing", cfs.CashFromInvesting)
	row("Cash from Financing", cfs.CashFromFinancing)
	row("Net Change in Cash", cfs.NetChangeInCash)
	row("Closing Cash", cfs.ClosingCash)

	eq := s.EquityChanges
	fmt.Fprintln(w, "\nCHANGES IN EQUITY\t")
	row("Opening Retained Earnings", eq.OpeningRetainedEarnings)
	row("Net Income", eq.NetIncome)
	row("Dividends", eq.Dividends)
	row("Other Adjustments", eq.OtherAdjustments)
	row("Closing Retained Earnings", eq.ClosingRetainedEarnings)

	_ = w.Flush()
}
