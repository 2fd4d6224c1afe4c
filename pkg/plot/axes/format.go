package axes

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatNumber formats v with exactly decimals fraction digits using the
// grouping and decimal separators of p's locale.
func formatNumber(p *message.Printer, v float64, decimals int) string {
	if v == 0 || math.Abs(v) < math.Pow(10, -float64(decimals+1)) {
		v = 0 // avoid "-0"
	}
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}

func newPrinter(tag language.Tag) *message.Printer {
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
