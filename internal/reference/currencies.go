// Package reference holds the static lookup tables the budget engine reads:
// currencies with their fixed rates, and income/expense categories.
package reference

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// DefaultCurrencies returns the built-in currency table. Rates are units per
// one US dollar and are fixed for the process lifetime.
func DefaultCurrencies() *domain.CurrencyTable {
	return domain.NewCurrencyTable([]domain.Currency{
		{Code: "USD", Symbol: "$", Name: "US Dollar", Rate: rate("1.0")},
		{Code: "EUR", Symbol: "€", Name: "Euro", Rate: rate("0.85")},
		{Code: "GBP", Symbol: "£", Name: "British Pound", Rate: rate("0.73")},
		{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Rate: rate("1.35")},
		{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Rate: rate("1.50")},
		{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Rate: rate("110.0")},
		{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", Rate: rate("6.45")},
		{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc", Rate: rate("0.92")},
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Rate: rate("74.5")},
		{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", Rate: rate("5.20")},
		{Code: "MXN", Symbol: "Mex$", Name: "Mexican Peso", Rate: rate("20.0")},
		{Code: "RUB", Symbol: "₽", Name: "Russian Ruble", Rate: rate("75.0")},
		{Code: "KRW", Symbol: "₩", Name: "South Korean Won", Rate: rate("1200.0")},
		{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", Rate: rate("1.35")},
		{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar", Rate: rate("7.80")},
	})
}

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
