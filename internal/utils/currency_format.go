package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatBRL renders an amount the way the app displays money: "R$ 12.35".
// Negative values keep their sign in front of the symbol: "-R$ 12.35".
func FormatBRL(amount decimal.Decimal) string {
	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
		amount = amount.Neg()
	}
	b.WriteString("R$ ")
	b.WriteString(FormatWithPrecision(amount, 2))
	return b.String()
}
