package aggregation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/period"
)

var hundred = decimal.NewFromInt(100)

// Trend is the rounded period-over-period change of one metric.
type Trend struct {
	Percent decimal.Decimal
	Label   string
}

// Summary holds the active window totals and their trends.
type Summary struct {
	Period       domain.Period
	Currency     string
	Windows      domain.Windows
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	IncomeTrend  Trend
	ExpenseTrend Trend
}

// Summarize totals income and expense for the window containing ref and
// compares them with the preceding window.
func (e *Engine) Summarize(txs []domain.Transaction, p domain.Period, displayCurrency string, ref time.Time) Summary {
	displayCurrency = displayCode(displayCurrency)
	windows := period.Resolve(p, ref)

	var current, previous totals
	for i := range txs {
		tx := &txs[i]
		switch {
		case windows.Current.Contains(tx.Date):
			current.add(tx.Type, e.convert(tx, displayCurrency))
		case windows.Previous.Contains(tx.Date):
			previous.add(tx.Type, e.convert(tx, displayCurrency))
		}
	}

	return Summary{
		Period:       p,
		Currency:     displayCurrency,
		Windows:      windows,
		TotalIncome:  current.income,
		TotalExpense: current.expense,
		Balance:      current.balance(),
		IncomeTrend:  ComputeTrend(current.income, previous.income, p),
		ExpenseTrend: ComputeTrend(current.expense, previous.expense, p),
	}
}

// ComputeTrend returns (current-previous)/previous*100 rounded to a whole
// percent. A previous value of zero yields a zero trend regardless of
// current.
func ComputeTrend(current, previous decimal.Decimal, p domain.Period) Trend {
	if !previous.IsPositive() {
		return Trend{Percent: decimal.Zero, Label: TrendLabel(decimal.Zero, p)}
	}

	pct := current.Sub(previous).Div(previous).Mul(hundred).Round(0)
	return Trend{Percent: pct, Label: TrendLabel(pct, p)}
}

// TrendLabel renders a rounded percentage as "+12% from last month",
// "-5% from last month" or "No change from last month".
func TrendLabel(pct decimal.Decimal, p domain.Period) string {
	switch pct.Sign() {
	case 1:
		return fmt.Sprintf("+%s%% from %s", pct.String(), p.PreviousLabel())
	case -1:
		return fmt.Sprintf("%s%% from %s", pct.String(), p.PreviousLabel())
	default:
		return "No change from " + p.PreviousLabel()
	}
}
