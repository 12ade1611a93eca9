// Package currency converts and formats amounts using the fixed-rate
// currency table.
package currency

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// zeroDecimalCurrencies are rendered without a fractional part.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
}

var one = decimal.NewFromInt(1)

// Converter converts between currencies via the base currency and formats
// amounts for display.
type Converter struct {
	currencies *domain.CurrencyTable
	observer   domain.FallbackObserver
	logger     zerolog.Logger
}

// NewConverter creates a Converter. A nil observer discards fallback events.
func NewConverter(currencies *domain.CurrencyTable, logger zerolog.Logger, observer domain.FallbackObserver) *Converter {
	if observer == nil {
		observer = domain.NopFallbackObserver{}
	}
	return &Converter{
		currencies: currencies,
		observer:   observer,
		logger:     logger,
	}
}

// Convert converts amount from one currency to another as
// amount / rate[from] * rate[to]. Same-currency conversions return amount
// unchanged. An empty code means the base currency.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	from, to = normalize(from), normalize(to)
	if from == to {
		return amount
	}

	return amount.Div(c.Rate(from)).Mul(c.Rate(to))
}

// Rate returns units of code per one base unit. Unknown codes are treated
// as the base currency (rate 1) and reported to the fallback observer.
func (c *Converter) Rate(code string) decimal.Decimal {
	code = normalize(code)
	if cur, ok := c.currencies.Lookup(code); ok && cur.Rate.IsPositive() {
		return cur.Rate
	}

	c.logger.Warn().Str("currency", code).Msg("unknown currency, using base rate")
	c.observer.ObserveFallback(domain.FallbackCurrency, code)

	return one
}

// Decimals returns the number of fraction digits shown for code.
func Decimals(code string) int32 {
	if zeroDecimalCurrencies[normalize(code)] {
		return 0
	}
	return 2
}

// Format renders amount with the currency symbol and grouped thousands,
// e.g. "$1,234.50" or "¥1,235". Unknown codes render as a plain number
// with two decimals.
func (c *Converter) Format(amount decimal.Decimal, code string) string {
	cur, ok := c.currencies.Lookup(code)
	if !ok {
		return amount.StringFixed(2)
	}

	places := Decimals(cur.Code)
	rounded := amount.Round(places)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	out := sign + cur.Symbol + humanize.BigComma(whole.BigInt())
	if places > 0 {
		// "0.50" -> ".50"
		out += strings.TrimPrefix(rounded.Sub(whole).StringFixed(places), "0")
	}

	return out
}

// Symbol returns the display symbol for code, or the code itself.
func (c *Converter) Symbol(code string) string {
	if cur, ok := c.currencies.Lookup(code); ok {
		return cur.Symbol
	}
	return code
}

// Name returns the display name for code, or the code itself.
func (c *Converter) Name(code string) string {
	if cur, ok := c.currencies.Lookup(code); ok {
		return cur.Name
	}
	return code
}

// Currencies returns the table the converter was built with.
func (c *Converter) Currencies() *domain.CurrencyTable {
	return c.currencies
}

func normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.BaseCurrency
	}
	return code
}
