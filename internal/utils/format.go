package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Compact renders a quantity in idle-game notation: 1.50k, 2.35M, 1.20B, 4.00T.
func Compact(n float64) string {
	switch {
	case n >= 1e12:
		return fmt.Sprintf("%.2fT", n/1e12)
	case n >= 1e9:
		return fmt.Sprintf("%.2fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.2fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2fk", n/1e3)
	default:
		return fmt.Sprintf("%.2f", n)
	}
}

// Money renders a cash amount with grouping, e.g. "EUR 12,345.67".
// Large balances switch to compact notation.
func Money(n float64) string {
	if n >= 1e6 {
		return "EUR " + Compact(n)
	}
	return moneyPrinter.Sprintf("EUR %.2f", n)
}

// Grams renders a resource amount, e.g. "150.00 g" or "1.20M g".
func Grams(n float64) string {
	return Compact(n) + " g"
}
