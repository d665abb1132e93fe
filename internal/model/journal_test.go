package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEntryTotals(t *testing.T) {
	e := JournalEntry{
		Lines: []JournalLine{
			{Side: SideDebit, AccountID: "cash", Amount: dec("300000")},
			{Side: SideDebit, AccountID: "ar", Amount: dec("200000")},
			{Side: SideCredit, AccountID: "rev", Amount: dec("500000")},
		},
	}

	assert.True(t, dec("500000").Equal(e.TotalDebit()))
	assert.True(t, dec("500000").Equal(e.TotalCredit()))
	assert.True(t, e.Balanced())
}

func TestBalancedEpsilon(t *testing.T) {
	e := JournalEntry{
		Lines: []JournalLine{
			{Side: SideDebit, AccountID: "cash", Amount: dec("500000.00005")},
			{Side: SideCredit, AccountID: "rev", Amount: dec("500000")},
		},
	}
	assert.True(t, e.Balanced(), "difference below epsilon is balanced")

	e.Lines[0].Amount = dec("500000.001")
	assert.False(t, e.Balanced())
}

func TestHasDescription(t *testing.T) {
	assert.False(t, JournalEntry{}.HasDescription())
	assert.False(t, JournalEntry{Description: "   "}.HasDescription())
	assert.True(t, JournalEntry{Description: "Kas masuk"}.HasDescription())
}

func TestDebitSign(t *testing.T) {
	assert.Equal(t, 1, AccountTypeAsset.DebitSign())
	assert.Equal(t, 1, AccountTypeExpense.DebitSign())
	assert.Equal(t, 1, AccountTypeDistribution.DebitSign())
	assert.Equal(t, -1, AccountTypeLiability.DebitSign())
	assert.Equal(t, -1, AccountTypeEquity.DebitSign())
	assert.Equal(t, -1, AccountTypeRevenue.DebitSign())
}
