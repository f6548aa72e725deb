// Package money formats and parses rupee amounts in the Indian Crore/Lakh
// notation used by the planner.
package money

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale carries the presentation settings for amounts. It is passed
// explicitly instead of relying on process-wide locale state.
type Locale struct {
	Tag    language.Tag
	Symbol string
}

// DefaultLocale is Indian English with the rupee sign.
func DefaultLocale() Locale {
	return Locale{Tag: language.MustParse("en-IN"), Symbol: "₹"}
}

// ParseLocale builds a Locale from a BCP 47 tag and a currency symbol.
func ParseLocale(tag, symbol string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, err
	}
	if symbol == "" {
		symbol = "₹"
	}
	return Locale{Tag: t, Symbol: symbol}, nil
}

// Formatter renders amounts for one Locale.
type Formatter struct {
	locale  Locale
	printer *message.Printer
}

// NewFormatter creates a Formatter bound to the given locale.
func NewFormatter(l Locale) *Formatter {
	return &Formatter{locale: l, printer: message.NewPrinter(l.Tag)}
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() Locale { return f.locale }

// Amount renders a base-unit amount as "₹ N.NN Cr" from one crore up,
// "₹ N.NN L" from one lakh up, and "₹ N" below that. Thresholds apply to the
// magnitude so negative remainders keep their unit.
func (f *Formatter) Amount(amount int64) string {
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= domain.Crore:
		return f.locale.Symbol + " " + f.unit(amount, domain.Crore) + " Cr"
	case abs >= domain.Lakh:
		return f.locale.Symbol + " " + f.unit(amount, domain.Lakh) + " L"
	default:
		return f.locale.Symbol + " " + f.printer.Sprintf("%d", amount)
	}
}

func (f *Formatter) unit(amount, per int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(per)).StringFixed(2)
}

// Crores renders an amount in crores with two decimals, e.g. "330.00".
func Crores(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(domain.Crore)).StringFixed(2)
}

// Percent renders a percentage without decimals when it is integral.
func Percent(p float64) string {
	if p == math.Trunc(p) {
		return strconv.FormatFloat(p, 'f', 0, 64) + "%"
	}
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// ParseDigits keeps only the ASCII digits of s and parses them. ok is false
// when s holds no digits or the digits overflow an int64.
func ParseDigits(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
