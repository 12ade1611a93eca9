package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency all fixed rates are expressed against.
const BaseCurrency = "USD"

// Currency is static reference data for a currency code. Rate is the
// number of units of this currency per one unit of BaseCurrency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
	Rate   decimal.Decimal
}

// CurrencyTable is an immutable, ordered set of currencies.
type CurrencyTable struct {
	order []string
	byKey map[string]Currency
}

// NewCurrencyTable builds a table preserving the given order. Later
// duplicates replace earlier ones.
func NewCurrencyTable(currencies []Currency) *CurrencyTable {
	t := &CurrencyTable{byKey: make(map[string]Currency, len(currencies))}
	for _, c := range currencies {
		c.Code = normalizeCode(c.Code)
		if _, exists := t.byKey[c.Code]; !exists {
			t.order = append(t.order, c.Code)
		}
		t.byKey[c.Code] = c
	}
	return t
}

// Lookup returns the currency for code.
func (t *CurrencyTable) Lookup(code string) (Currency, bool) {
	c, ok := t.byKey[normalizeCode(code)]
	return c, ok
}

// All returns the currencies in declaration order.
func (t *CurrencyTable) All() []Currency {
	out := make([]Currency, 0, len(t.order))
	for _, code := range t.order {
		out = append(out, t.byKey[code])
	}
	return out
}

// Len returns the number of currencies in the table.
func (t *CurrencyTable) Len() int {
	return len(t.order)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
