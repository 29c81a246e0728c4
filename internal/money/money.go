// Package money formats amounts the way they are shown to users, in
// Indonesian Rupiah with Indonesian digit grouping.
package money

import (
	"strings"

	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/shopspring/decimal"
)

const (
	symbol         = "Rp "
	groupSeparator = "."
	fractionMark   = ","
	fractionDigits = 3
)

// Format returns the amount with currency symbol, e.g. "Rp 1.500.000".
// At most three fraction digits are shown.
func Format(amount decimal.Decimal) string {
	s := amount.Round(fractionDigits).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, fraction, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(symbol)
	b.WriteString(sign)
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(digit)
	}
	if fraction != "" {
		b.WriteString(fractionMark)
		b.WriteString(fraction)
	}
	return b.String()
}

// Signed formats the amount of a transaction with a sign showing its
// direction. Transfers carry no sign.
func Signed(t models.Transaction) string {
	switch t.Type {
	case models.TypeIncome:
		return "+ " + Format(t.Amount)
	case models.TypeExpense:
		return "- " + Format(t.Amount)
	default:
		return Format(t.Amount)
	}
}
