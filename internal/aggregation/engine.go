// Package aggregation turns a snapshot of transactions into dashboard
// figures: period summaries with trends, time series and category
// breakdowns. Every function is a pure function of its arguments; the
// engine keeps no state between calls.
package aggregation

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

const (
	// WeeklyBuckets is the length of the weekly series.
	WeeklyBuckets = 8
	// YearlyBuckets is the length of the yearly series.
	YearlyBuckets = 4
	// MaxBreakdownEntries caps the category breakdown.
	MaxBreakdownEntries = 8
)

// Converter converts amounts between currencies.
type Converter interface {
	Convert(amount decimal.Decimal, from, to string) decimal.Decimal
}

// Engine computes aggregates over caller-owned transaction snapshots.
type Engine struct {
	converter  Converter
	categories *domain.CategoryTable
	observer   domain.FallbackObserver
	logger     zerolog.Logger
}

// NewEngine creates an Engine. A nil observer discards fallback events.
func NewEngine(converter Converter, categories *domain.CategoryTable, logger zerolog.Logger, observer domain.FallbackObserver) *Engine {
	if observer == nil {
		observer = domain.NopFallbackObserver{}
	}
	return &Engine{
		converter:  converter,
		categories: categories,
		observer:   observer,
		logger:     logger,
	}
}

// Dashboard bundles the three aggregate views for one period.
type Dashboard struct {
	Summary   Summary
	Series    []SeriesPoint
	Breakdown []CategorySlice
}

// Dashboard computes summary, series and breakdown in one call.
func (e *Engine) Dashboard(txs []domain.Transaction, p domain.Period, displayCurrency string, ref time.Time) Dashboard {
	return Dashboard{
		Summary:   e.Summarize(txs, p, displayCurrency, ref),
		Series:    e.Series(txs, p, displayCurrency, ref),
		Breakdown: e.CategoryBreakdown(txs, p, displayCurrency, ref),
	}
}

// convert returns tx.Amount expressed in displayCurrency.
func (e *Engine) convert(tx *domain.Transaction, displayCurrency string) decimal.Decimal {
	return e.converter.Convert(tx.Amount, tx.CurrencyOrBase(), displayCurrency)
}

func displayCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.BaseCurrency
	}
	return code
}

// totals accumulates income and expense.
type totals struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

func (t *totals) add(typ domain.TransactionType, amount decimal.Decimal) {
	switch typ {
	case domain.TransactionTypeIncome:
		t.income = t.income.Add(amount)
	case domain.TransactionTypeExpense:
		t.expense = t.expense.Add(amount)
	}
}

func (t totals) balance() decimal.Decimal {
	return t.income.Sub(t.expense)
}
