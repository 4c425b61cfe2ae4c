// Package money renders decimal amounts for display, with the configured
// currency symbol and English digit grouping ("₱3,000").
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const maxFractionDigits = 2

type Formatter struct {
	symbol  string
	printer *message.Printer
}

func New(symbol string) Formatter {
	return Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Format groups thousands and keeps at most two fraction digits, dropping
// trailing zeros. The integer part is grouped exactly; amounts beyond int64 are
// written ungrouped.
func (f Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(maxFractionDigits)
	sign := ""

	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	if !whole.Equal(decimal.NewFromInt(whole.IntPart())) {
		return sign + f.symbol + rounded.String()
	}

	fraction := ""
	if rest := rounded.Sub(whole); !rest.IsZero() {
		fraction = strings.TrimPrefix(rest.String(), "0")
	}

	return sign + f.symbol + f.printer.Sprint(number.Decimal(whole.IntPart())) + fraction
}

func (f Formatter) Symbol() string {
	return f.symbol
}
