package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineTotal multiplies a text price by a text quantity for display. ok is
// false when either value is not a plain decimal number.
func LineTotal(price, quantity string) (total decimal.Decimal, ok bool) {
	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return decimal.Zero, false
	}
	q, err := decimal.NewFromString(strings.TrimSpace(quantity))
	if err != nil {
		return decimal.Zero, false
	}
	return p.Mul(q), true
}

// FormatAmount renders an amount with two decimals and comma thousands
// separators, e.g. 1234567.5 -> "1,234,567.50".
func FormatAmount(amount decimal.Decimal) string {
	formatted := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	parts := strings.SplitN(formatted, ".", 2)
	integerPart := parts[0]

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return sign + strings.Join(result, ",") + "." + parts[1]
}

// DisplayLineTotal is LineTotal formatted for the listing page, or "-".
func DisplayLineTotal(price, quantity string) string {
	total, ok := LineTotal(price, quantity)
	if !ok {
		return "-"
	}
	return FormatAmount(total)
}
