// Package period computes reporting windows from an explicit reference
// instant. Nothing here reads the wall clock.
package period

import (
	"time"

	"github.com/iho/gobudget/internal/domain"
)

// Bucket is one point of a time series: a labelled sub-window.
type Bucket struct {
	Label  string
	Window domain.Window
}

// Day truncates t to its calendar date. The year, month and day are taken
// in t's own location; the result is expressed in UTC so day arithmetic is
// not affected by DST transitions.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date in domain.DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// WeekStart returns the Monday of the week containing t. Sunday is treated
// as the last day of the week.
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// MonthWindow returns the first and last day of the given month.
func MonthWindow(year int, month time.Month) domain.Window {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return domain.Window{Start: FormatDate(first), End: FormatDate(last)}
}

// YearWindow returns Jan 1 .. Dec 31 of year.
func YearWindow(year int) domain.Window {
	return domain.Window{
		Start: FormatDate(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)),
		End:   FormatDate(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)),
	}
}

// WeekWindow returns the 7-day window starting at start.
func WeekWindow(start time.Time) domain.Window {
	return domain.Window{Start: FormatDate(start), End: FormatDate(start.AddDate(0, 0, 6))}
}

// Resolve returns the window containing ref for period p together with the
// immediately preceding comparable window. Unknown periods resolve as
// monthly.
func Resolve(p domain.Period, ref time.Time) domain.Windows {
	d := Day(ref)

	switch p {
	case domain.PeriodWeekly:
		start := WeekStart(d)
		return domain.Windows{
			Current:  WeekWindow(start),
			Previous: WeekWindow(start.AddDate(0, 0, -7)),
		}
	case domain.PeriodYearly:
		return domain.Windows{
			Current:  YearWindow(d.Year()),
			Previous: YearWindow(d.Year() - 1),
		}
	default:
		prev := time.Date(d.Year(), d.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		return domain.Windows{
			Current:  MonthWindow(d.Year(), d.Month()),
			Previous: MonthWindow(prev.Year(), prev.Month()),
		}
	}
}

// WeeklyBuckets returns n consecutive weeks, oldest first, the last one
// being the week containing ref. Labels are the week start as "Jan 2".
func WeeklyBuckets(ref time.Time, n int) []Bucket {
	current := WeekStart(ref)
	buckets := make([]Bucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := current.AddDate(0, 0, -7*i)
		buckets = append(buckets, Bucket{
			Label:  start.Format("Jan 2"),
			Window: WeekWindow(start),
		})
	}
	return buckets
}

// YearlyBuckets returns n consecutive calendar years, oldest first, ending
// with the year of ref. Labels are 4-digit years.
func YearlyBuckets(ref time.Time, n int) []Bucket {
	year := Day(ref).Year()
	buckets := make([]Bucket, 0, n)
	for y := year - n + 1; y <= year; y++ {
		w := YearWindow(y)
		buckets = append(buckets, Bucket{Label: w.Start[:4], Window: w})
	}
	return buckets
}

// MonthBucket returns the bucket for the calendar month of t, labelled
// "Jan 06".
func MonthBucket(t time.Time) Bucket {
	return Bucket{
		Label:  t.Format("Jan 06"),
		Window: MonthWindow(t.Year(), t.Month()),
	}
}
