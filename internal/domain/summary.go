package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoExpensesEntry is the lastEntry value reported for an empty record set.
const NoExpensesEntry = "No expenses yet"

// ExpenseSummary holds the derived dashboard aggregates. It is recomputed on
// every request and never persisted.
type ExpenseSummary struct {
	TotalExpenses   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	TopCategory     string
	LastEntry       string
	PercentChange   decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// Summarize reduces a snapshot of expenses into summary statistics as of now.
// CreatedAt never participates; all month arithmetic is over Date.
//
// PercentChange is 0 when the previous month has no expenses, regardless of
// the current month. TopCategory ties break toward the category encountered
// first; LastEntry ties break toward the expense encountered first, so a
// date-descending snapshot yields the most recently dated entry.
func Summarize(expenses []*Expense, now time.Time) ExpenseSummary {
	currentYear, currentMonth := now.Year(), now.Month()
	previousYear, previousMonth := currentYear, currentMonth-1
	if currentMonth == time.January {
		previousYear, previousMonth = currentYear-1, time.December
	}

	total := decimal.Zero
	monthly := decimal.Zero
	previous := decimal.Zero

	categoryTotals := make(map[Category]decimal.Decimal)
	var categoryOrder []Category

	var last *Expense

	for _, e := range expenses {
		total = total.Add(e.Amount)

		if e.Date.Year() == currentYear && e.Date.Month() == currentMonth {
			monthly = monthly.Add(e.Amount)
		}
		if e.Date.Year() == previousYear && e.Date.Month() == previousMonth {
			previous = previous.Add(e.Amount)
		}

		if _, seen := categoryTotals[e.Category]; !seen {
			categoryOrder = append(categoryOrder, e.Category)
		}
		categoryTotals[e.Category] = categoryTotals[e.Category].Add(e.Amount)

		if last == nil || e.Date.After(last.Date) {
			last = e
		}
	}

	percentChange := decimal.Zero
	if !previous.IsZero() {
		percentChange = monthly.Sub(previous).Div(previous).Mul(oneHundred)
	}

	topCategory := CategoryOther
	topAmount := decimal.Zero
	for _, c := range categoryOrder {
		if categoryTotals[c].GreaterThan(topAmount) {
			topAmount = categoryTotals[c]
			topCategory = c
		}
	}

	lastEntry := NoExpensesEntry
	if last != nil {
		lastEntry = last.Description
	}

	return ExpenseSummary{
		TotalExpenses:   total,
		MonthlyExpenses: monthly,
		TopCategory:     topCategory.DisplayName(),
		LastEntry:       lastEntry,
		PercentChange:   percentChange,
	}
}

// TotalsByCategory maps each category appearing in the snapshot to the sum
// of its amounts. Categories with no expenses are omitted, not zero-filled.
func TotalsByCategory(expenses []*Expense) map[Category]decimal.Decimal {
	totals := make(map[Category]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// TotalsByMonth maps each three-letter month abbreviation (Jan..Dec) to the
// sum of amounts dated in that month of the given year. All 12 keys are
// pre-seeded to zero before accumulation.
func TotalsByMonth(expenses []*Expense, year int) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, 12)
	for m := time.January; m <= time.December; m++ {
		totals[m.String()[:3]] = decimal.Zero
	}

	for _, e := range expenses {
		if e.Date.Year() != year {
			continue
		}
		key := e.Date.Month().String()[:3]
		totals[key] = totals[key].Add(e.Amount)
	}

	return totals
}
