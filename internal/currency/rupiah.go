// Package currency formats Indonesian Rupiah amounts for display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	million = decimal.New(1, 6)
	billion = decimal.New(1, 9)
)

// FormatRupiah renders an amount in full precision with id-ID grouping,
// e.g. "Rp 1.234.567" or "Rp 1.234,50". Amounts are rounded to whole
// sen (two decimal places); a zero fraction is omitted.
func FormatRupiah(amount decimal.Decimal) string {
	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("Rp ")

	rounded := amount.Abs().Round(2)
	whole := rounded.Truncate(0)
	frac := rounded.Sub(whole)

	b.WriteString(groupThousands(whole.String()))
	if !frac.IsZero() {
		// "0.5" -> ",50"
		cents := frac.Mul(decimal.New(1, 2)).Truncate(0).IntPart()
		b.WriteString(",")
		if cents < 10 {
			b.WriteString("0")
		}
		b.WriteString(decimal.NewFromInt(cents).String())
	}
	return b.String()
}

// FormatCompact renders an abbreviated amount for summary display:
// "Rp 1.2 B" at or above one billion, "Rp 250 M" at or above one
// million, and the full form below that.
func FormatCompact(amount decimal.Decimal) string {
	sign := ""
	abs := amount.Abs()
	if amount.IsNegative() {
		sign = "-"
	}

	switch {
	case abs.GreaterThanOrEqual(billion):
		return sign + "Rp " + trimScaled(abs.Div(billion)) + " B"
	case abs.GreaterThanOrEqual(million):
		return sign + "Rp " + trimScaled(abs.Div(million)) + " M"
	default:
		return sign + FormatRupiah(abs)
	}
}

// trimScaled renders a scaled magnitude with one decimal under 10 and
// none at 10 or above, dropping a trailing ".0".
func trimScaled(n decimal.Decimal) string {
	var s string
	if n.GreaterThanOrEqual(decimal.NewFromInt(10)) {
		s = n.Round(0).String()
	} else {
		s = n.Round(1).String()
	}
	return strings.TrimSuffix(s, ".0")
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return strings.Join(parts, ".")
}
