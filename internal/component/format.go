package component

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a price as a whole number with thousands separators, e.g. 1500.4 -> "1,500".
func FormatAmount(d decimal.Decimal) string {
	return amountPrinter.Sprintf("%d", d.Round(0).IntPart())
}
