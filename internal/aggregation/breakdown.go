package aggregation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/period"
)

// CategorySlice is one entry of the expense breakdown.
type CategorySlice struct {
	CategoryID string
	Name       string
	Color      string
	Value      decimal.Decimal
	// Share is Value as a percentage of the breakdown total, one decimal.
	Share decimal.Decimal
}

// CategoryBreakdown sums expenses of the active window per category, sorted
// by value descending and capped at MaxBreakdownEntries. Equal values keep
// the order in which their categories were first seen.
func (e *Engine) CategoryBreakdown(txs []domain.Transaction, p domain.Period, displayCurrency string, ref time.Time) []CategorySlice {
	displayCurrency = displayCode(displayCurrency)
	window := period.Resolve(p, ref).Current

	index := make(map[string]int)
	var slices []CategorySlice

	for i := range txs {
		tx := &txs[i]
		if tx.Type != domain.TransactionTypeExpense || !window.Contains(tx.Date) {
			continue
		}

		pos, ok := index[tx.Category]
		if !ok {
			pos = len(slices)
			index[tx.Category] = pos
			slices = append(slices, e.newSlice(tx.Category))
		}
		slices[pos].Value = slices[pos].Value.Add(e.convert(tx, displayCurrency))
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})

	if len(slices) > MaxBreakdownEntries {
		slices = slices[:MaxBreakdownEntries]
	}

	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	if total.IsPositive() {
		for i := range slices {
			slices[i].Share = slices[i].Value.Div(total).Mul(hundred).Round(1)
		}
	}

	return slices
}

func (e *Engine) newSlice(categoryID string) CategorySlice {
	c, found := e.categories.Resolve(domain.TransactionTypeExpense, categoryID)
	if !found {
		e.logger.Warn().Str("category", categoryID).Msg("unknown expense category, using raw id")
		e.observer.ObserveFallback(domain.FallbackCategory, categoryID)
	}

	return CategorySlice{
		CategoryID: categoryID,
		Name:       c.Name,
		Color:      c.Color,
		Value:      decimal.Zero,
		Share:      decimal.Zero,
	}
}
