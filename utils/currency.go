package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// nairaPrinter groups digits the way the dashboard always has: en-NG locale,
// no fraction digits.
var nairaPrinter = message.NewPrinter(language.MustParse("en-NG"))

// FormatNaira renders an amount as a Naira currency string, e.g. "₦1,234,568".
func FormatNaira(amount float64) string {
	return nairaPrinter.Sprintf("₦%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
