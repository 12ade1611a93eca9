package domain

import (
	"fmt"
	"strings"
)

// Period selects the reporting granularity.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod parses a period selector. Empty input yields PeriodMonthly.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodMonthly, nil
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

// PreviousLabel names the preceding comparable window, as used in trend labels.
func (p Period) PreviousLabel() string {
	switch p {
	case PeriodWeekly:
		return "last week"
	case PeriodYearly:
		return "last year"
	default:
		return "last month"
	}
}

// Window is a closed date range [Start, End] in DateLayout form.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether date falls inside the window. Comparison is
// lexical, which matches chronological order for DateLayout strings.
func (w Window) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}

// Windows pairs the active window with the one immediately preceding it.
type Windows struct {
	Current  Window `json:"current"`
	Previous Window `json:"previous"`
}
