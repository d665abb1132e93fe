package journal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleEntries() []model.JournalEntry {
	return []model.JournalEntry{
		{
			ID:          "2025-01-001",
			Date:        "2025-01-10",
			Description: "Penjualan tunai",
			Lines: []model.JournalLine{
				{ID: "l1", Side: model.SideDebit, AccountID: "cash", Amount: dec("1000000")},
				{ID: "l2", Side: model.SideCredit, AccountID: "rev", Amount: dec("1000000")},
			},
		},
		{
			ID:          "2025-01-002",
			Date:        "2025-01-12",
			Description: "Beban operasional",
			Lines: []model.JournalLine{
				{ID: "l3", Side: model.SideDebit, AccountID: "opex", Amount: dec("250000.50")},
				{ID: "l4", Side: model.SideCredit, AccountID: "cash", Amount: dec("250000.50")},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	entries := sampleEntries()

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	loaded, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "2025-01-001", loaded[0].ID)
	assert.Equal(t, "Penjualan tunai", loaded[0].Description)
	require.Len(t, loaded[0].Lines, 2)
	assert.True(t, dec("1000000").Equal(loaded[0].Lines[0].Amount))

	assert.Equal(t, "2025-01-002", loaded[1].ID)
	assert.True(t, dec("250000.50").Equal(loaded[1].Lines[1].Amount))
}

func TestReadGroupsByEntryID(t *testing.T) {
	csv := Header + "\n" +
		"e1,2025-01-10,first,a,debit,cash,100\n" +
		"e2,2025-01-11,second,b,debit,opex,200\n" +
		"e1,2025-01-10,first,c,credit,rev,100\n" +
		"e2,2025-01-11,second,d,credit,cash,200\n"

	entries, err := ReadEntries(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "e1", entries[0].ID)
	assert.Len(t, entries[0].Lines, 2)
	assert.Equal(t, "e2", entries[1].ID)
	assert.Len(t, entries[1].Lines, 2)
}

func TestReadEmpty(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = ReadEntries(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadBadSide(t *testing.T) {
	csv := Header + "\n" + "e1,2025-01-10,x,a,both,cash,100\n"
	_, err := ReadEntries(strings.NewReader(csv))
	assert.ErrorContains(t, err, "unknown side")
}

func TestReadBadAmount(t *testing.T) {
	csv := Header + "\n" + "e1,2025-01-10,x,a,debit,cash,seratus\n"
	_, err := ReadEntries(strings.NewReader(csv))
	assert.ErrorContains(t, err, "parsing amount")
}
