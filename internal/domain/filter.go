package domain

import (
	"fmt"
	"time"
)

// TimeRange names a relative date window anchored on a reference time.
type TimeRange string

const (
	TimeRangeWeek    TimeRange = "week"
	TimeRangeMonth   TimeRange = "month"
	TimeRangeQuarter TimeRange = "quarter"
	TimeRangeYear    TimeRange = "year"
	TimeRangeAll     TimeRange = "all"
)

// ParseTimeRange validates a raw time range string.
func ParseTimeRange(s string) (TimeRange, error) {
	switch tr := TimeRange(s); tr {
	case TimeRangeWeek, TimeRangeMonth, TimeRangeQuarter, TimeRangeYear, TimeRangeAll:
		return tr, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
}

// Bounds resolves the range to an inclusive [from, to] interval around now.
// TimeRangeAll returns zero times, which impose no bound. Weeks start on
// Sunday.
func (tr TimeRange) Bounds(now time.Time) (from, to time.Time) {
	switch tr {
	case TimeRangeWeek:
		from = startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		to = endOfDay(from.AddDate(0, 0, 6))
	case TimeRangeMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = endOfDay(from.AddDate(0, 1, -1))
	case TimeRangeQuarter:
		quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
		from = time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, now.Location())
		to = endOfDay(from.AddDate(0, 3, -1))
	case TimeRangeYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		to = endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
	}

	return from, to
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// CategoryAll is the sentinel category filter value matching every category.
const CategoryAll = "all"

// Filter narrows an expense set. Zero-value fields impose no constraint;
// constraints combine with logical AND.
type Filter struct {
	DateFrom time.Time
	DateTo   time.Time
	Category string
}

// Matches reports whether the expense satisfies every set constraint.
// Date bounds are inclusive.
func (f Filter) Matches(e *Expense) bool {
	if !f.DateFrom.IsZero() && e.Date.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && e.Date.After(f.DateTo) {
		return false
	}
	if f.Category != "" && f.Category != CategoryAll && string(e.Category) != f.Category {
		return false
	}
	return true
}

// ApplyFilter returns the subset of expenses matching the filter,
// preserving the input order.
func ApplyFilter(f Filter, expenses []*Expense) []*Expense {
	out := make([]*Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
