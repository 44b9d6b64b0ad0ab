package f2f

import (
	"fmt"
	"strconv"
)

// Pence is a currency amount in integer minor units. Keeping money integral
// means repeated extraction of the same sheet produces identical totals.
type Pence int64

// String renders the amount as pounds with a two digit minor part,
// e.g. 12345 -> "£123.45".
func (p Pence) String() string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s£%d.%02d", sign, p/100, p%100)
}

// VATRateString renders a fractional VAT rate for display. A rate of exactly
// zero reads "No VAT"; anything else is shown as a percentage, e.g. 0.2 ->
// "20%".
func VATRateString(rate float64) string {
	if rate == 0 {
		return "No VAT"
	}
	return strconv.FormatFloat(rate*100, 'f', -1, 64) + "%"
}

// FormatQty renders an ordered quantity without trailing zeros, e.g. 2 -> "2"
// and 1.5 -> "1.5".
func FormatQty(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}
