package aggregation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/period"
)

// SeriesPoint is one bucket of the income/expense chart.
type SeriesPoint struct {
	Label   string
	Window  domain.Window
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Series buckets transactions over time, oldest first.
//
// Weekly and yearly series are fixed trailing windows (8 weeks, 4 years)
// ending at ref. The monthly series is not windowed: it has one bucket for
// every calendar month that has at least one transaction.
func (e *Engine) Series(txs []domain.Transaction, p domain.Period, displayCurrency string, ref time.Time) []SeriesPoint {
	displayCurrency = displayCode(displayCurrency)

	switch p {
	case domain.PeriodWeekly:
		return e.fixedSeries(txs, period.WeeklyBuckets(ref, WeeklyBuckets), displayCurrency)
	case domain.PeriodYearly:
		return e.fixedSeries(txs, period.YearlyBuckets(ref, YearlyBuckets), displayCurrency)
	default:
		return e.monthlySeries(txs, displayCurrency)
	}
}

func (e *Engine) fixedSeries(txs []domain.Transaction, buckets []period.Bucket, displayCurrency string) []SeriesPoint {
	sums := make([]totals, len(buckets))

	for i := range txs {
		tx := &txs[i]
		for b := range buckets {
			if buckets[b].Window.Contains(tx.Date) {
				sums[b].add(tx.Type, e.convert(tx, displayCurrency))
				break
			}
		}
	}

	points := make([]SeriesPoint, len(buckets))
	for b, bucket := range buckets {
		points[b] = newPoint(bucket, sums[b])
	}
	return points
}

func (e *Engine) monthlySeries(txs []domain.Transaction, displayCurrency string) []SeriesPoint {
	buckets := make(map[string]period.Bucket)
	sums := make(map[string]*totals)

	for i := range txs {
		tx := &txs[i]
		t, err := tx.Time()
		if err != nil {
			e.logger.Debug().Str("date", tx.Date).Str("id", tx.ID).Msg("skipping transaction with malformed date")
			continue
		}
		key := t.Format("2006-01")

		if _, seen := buckets[key]; !seen {
			buckets[key] = period.MonthBucket(t)
			sums[key] = &totals{}
		}
		sums[key].add(tx.Type, e.convert(tx, displayCurrency))
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]SeriesPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, newPoint(buckets[k], *sums[k]))
	}
	return points
}

func newPoint(bucket period.Bucket, t totals) SeriesPoint {
	return SeriesPoint{
		Label:   bucket.Label,
		Window:  bucket.Window,
		Income:  t.income,
		Expense: t.expense,
		Balance: t.balance(),
	}
}
