package aggregation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/aggregation"
	"github.com/iho/gobudget/internal/currency"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/reference"
)

type countingObserver struct {
	events map[string]int
}

func (o *countingObserver) ObserveFallback(kind domain.FallbackKind, key string) {
	o.events[string(kind)+":"+key]++
}

func newEngine(t *testing.T) (*aggregation.Engine, *currency.Converter, *countingObserver) {
	t.Helper()
	obs := &countingObserver{events: map[string]int{}}
	tables := reference.Defaults()
	conv := currency.NewConverter(tables.Currencies, zerolog.Nop(), obs)
	return aggregation.NewEngine(conv, tables.Categories, zerolog.Nop(), obs), conv, obs
}

func ref(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func tx(typ domain.TransactionType, amount, cur, category, date string) domain.Transaction {
	return domain.Transaction{
		ID:          fmt.Sprintf("%s-%s-%s", typ, category, date),
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Currency:    cur,
		Category:    category,
		Description: category,
		Date:        date,
	}
}

func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, want.Equal(got), append([]any{fmt.Sprintf("expected %s, got %s", want, got)}, msgAndArgs...)...)
}

func TestSummarize_EndToEnd(t *testing.T) {
	engine, conv, _ := newEngine(t)
	txs := []domain.Transaction{
		tx(domain.TransactionTypeIncome, "5000", "USD", "salary", "2025-07-01"),
		tx(domain.TransactionTypeExpense, "800", "USD", "rent", "2025-07-01"),
		tx(domain.TransactionTypeExpense, "140", "EUR", "entertainment", "2025-07-08"),
	}

	s := engine.Summarize(txs, domain.PeriodMonthly, "USD", ref(t, "2025-07-15"))

	wantExpense := decimal.NewFromInt(800).Add(conv.Convert(decimal.NewFromInt(140), "EUR", "USD"))
	assertDecimal(t, decimal.NewFromInt(5000), s.TotalIncome)
	assertDecimal(t, wantExpense, s.TotalExpense)
	assertDecimal(t, s.TotalIncome.Sub(wantExpense), s.Balance)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, domain.Window{Start: "2025-07-01", End: "2025-07-31"}, s.Windows.Current)

	// June is empty, so both trends are guarded to zero.
	assert.Equal(t, "No change from last month", s.IncomeTrend.Label)
	assert.Equal(t, "No change from last month", s.ExpenseTrend.Label)
}

func TestSummarize_TrendsAgainstPreviousWindow(t *testing.T) {
	engine, _, _ := newEngine(t)
	txs := []domain.Transaction{
		tx(domain.TransactionTypeIncome, "1000", "USD", "salary", "2025-06-01"),
		tx(domain.TransactionTypeIncome, "1200", "USD", "salary", "2025-07-01"),
		tx(domain.TransactionTypeExpense, "400", "USD", "food", "2025-06-10"),
		tx(domain.TransactionTypeExpense, "380", "USD", "food", "2025-07-10"),
		// Outside both windows.
		tx(domain.TransactionTypeIncome, "99999", "USD", "salary", "2025-05-31"),
		tx(domain.TransactionTypeExpense, "99999", "USD", "food", "2025-08-01"),
	}

	s := engine.Summarize(txs, domain.PeriodMonthly, "USD", ref(t, "2025-07-15"))

	assertDecimal(t, decimal.NewFromInt(1200), s.TotalIncome)
	assertDecimal(t, decimal.NewFromInt(380), s.TotalExpense)
	assertDecimal(t, decimal.NewFromInt(820), s.Balance)
	assert.Equal(t, "+20% from last month", s.IncomeTrend.Label)
	assertDecimal(t, decimal.NewFromInt(20), s.IncomeTrend.Percent)
	assert.Equal(t, "-5% from last month", s.ExpenseTrend.Label)
	assertDecimal(t, decimal.NewFromInt(-5), s.ExpenseTrend.Percent)
}

func TestSummarize_ConvertsIntoDisplayCurrency(t *testing.T) {
	engine, _, _ := newEngine(t)
	txs := []domain.Transaction{
		tx(domain.TransactionTypeIncome, "100", "USD", "salary", "2025-07-01"),
		tx(domain.TransactionTypeIncome, "85", "EUR", "freelance", "2025-07-02"),
		{ID: "no-currency", Type: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(100), Category: "salary", Description: "x", Date: "2025-07-03"},
	}

	s := engine.Summarize(txs, domain.PeriodMonthly, "eur", ref(t, "2025-07-15"))

	assert.Equal(t, "EUR", s.Currency)
	assertDecimal(t, decimal.NewFromInt(255), s.TotalIncome.Round(8))
}

func TestSummarize_WeeklyAndYearlyLabels(t *testing.T) {
	engine, _, _ := newEngine(t)
	txs := []domain.Transaction{
		tx(domain.TransactionTypeExpense, "100", "USD", "food", "2025-07-08"),
		tx(domain.TransactionTypeExpense, "150", "USD", "food", "2025-07-15"),
		tx(domain.TransactionTypeExpense, "200", "USD", "food", "2024-03-01"),
	}

	weekly := engine.Summarize(txs, domain.PeriodWeekly, "USD", ref(t, "2025-07-16"))
	assertDecimal(t, decimal.NewFromInt(150), weekly.TotalExpense)
	assert.Equal(t, "+50% from last week", weekly.ExpenseTrend.Label)

	yearly := engine.Summarize(txs, domain.PeriodYearly, "USD", ref(t, "2025-07-16"))
	assertDecimal(t, decimal.NewFromInt(250), yearly.TotalExpense)
	assert.Equal(t, "+25% from last year", yearly.ExpenseTrend.Label)
}

func TestSummarize_EmptyInput(t *testing.T) {
	engine, _, _ := newEngine(t)

	s := engine.Summarize(nil, domain.PeriodMonthly, "USD", ref(t, "2025-07-15"))

	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.Equal(t, "No change from last month", s.IncomeTrend.Label)
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		period   domain.Period
		want     string
	}{
		{"growth", "1120", "1000", domain.PeriodMonthly, "+12% from last month"},
		{"decline", "950", "1000", domain.PeriodMonthly, "-5% from last month"},
		{"rounds half away from zero", "1005", "1000", domain.PeriodWeekly, "+1% from last week"},
		{"sub-percent change rounds to no change", "1003", "1000", domain.PeriodYearly, "No change from last year"},
		{"equal", "500", "500", domain.PeriodMonthly, "No change from last month"},
		{"drop to zero", "0", "500", domain.PeriodMonthly, "-100% from last month"},
		{"zero previous with current", "500", "0", domain.PeriodMonthly, "No change from last month"},
		{"zero previous and current", "0", "0", domain.PeriodWeekly, "No change from last week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := aggregation.ComputeTrend(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.previous), tt.period)
			assert.Equal(t, tt.want, trend.Label)
		})
	}
}

func TestSummarize_IsIdempotent(t *testing.T) {
	engine, _, _ := newEngine(t)
	txs := reference.DemoTransactions()
	before := append([]domain.Transaction(nil), txs...)

	first := engine.Dashboard(txs, domain.PeriodMonthly, "USD", ref(t, "2025-07-15"))
	second := engine.Dashboard(txs, domain.PeriodMonthly, "USD", ref(t, "2025-07-15"))

	assert.Equal(t, first, second)
	assert.Equal(t, before, txs, "engine must not modify its input")
}
