package currency

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

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"500", "Rp 500"},
		{"1000", "Rp 1.000"},
		{"100000", "Rp 100.000"},
		{"1234567", "Rp 1.234.567"},
		{"1250000000", "Rp 1.250.000.000"},
		{"-750000", "-Rp 750.000"},
		{"1234.5", "Rp 1.234,50"},
		{"99.99", "Rp 99,99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(dec(tt.in)), "input %s", tt.in)
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1200000000", "Rp 1.2 B"},
		{"250000000", "Rp 250 M"},
		{"1000000", "Rp 1 M"},
		{"2500000", "Rp 2.5 M"},
		{"15000000", "Rp 15 M"},
		{"999999", "Rp 999.999"},
		{"-1200000000", "-Rp 1.2 B"},
		{"10000000000", "Rp 10 B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompact(dec(tt.in)), "input %s", tt.in)
	}
}
