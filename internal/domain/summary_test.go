package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/domain"
)

func TestSummarizeEmpty(t *testing.T) {
	s := domain.Summarize(nil, time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC))

	if !s.TotalExpenses.IsZero() {
		t.Errorf("totalExpenses = %s, want 0", s.TotalExpenses)
	}
	if !s.MonthlyExpenses.IsZero() {
		t.Errorf("monthlyExpenses = %s, want 0", s.MonthlyExpenses)
	}
	if !s.PercentChange.IsZero() {
		t.Errorf("percentChange = %s, want 0", s.PercentChange)
	}
	if s.TopCategory != "Other" {
		t.Errorf("topCategory = %q, want %q", s.TopCategory, "Other")
	}
	if s.LastEntry != domain.NoExpensesEntry {
		t.Errorf("lastEntry = %q, want %q", s.LastEntry, domain.NoExpensesEntry)
	}
}

func TestSummarizeWorkedExample(t *testing.T) {
	now := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

	expenses := []*domain.Expense{
		{
			ID: 1, Description: "January groceries",
			Amount: decimal.NewFromInt(100), Category: domain.CategoryFood,
			Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, Description: "February groceries",
			Amount: decimal.NewFromInt(50), Category: domain.CategoryFood,
			Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 3, Description: "Train ticket",
			Amount: decimal.NewFromInt(30), Category: domain.CategoryTravel,
			Date: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	s := domain.Summarize(expenses, now)

	if want := decimal.NewFromInt(180); !s.TotalExpenses.Equal(want) {
		t.Errorf("totalExpenses = %s, want %s", s.TotalExpenses, want)
	}
	if want := decimal.NewFromInt(80); !s.MonthlyExpenses.Equal(want) {
		t.Errorf("monthlyExpenses = %s, want %s", s.MonthlyExpenses, want)
	}
	if want := decimal.NewFromInt(-20); !s.PercentChange.Equal(want) {
		t.Errorf("percentChange = %s, want %s", s.PercentChange, want)
	}
	if s.TopCategory != "Food & Dining" {
		t.Errorf("topCategory = %q, want %q", s.TopCategory, "Food & Dining")
	}
	if s.LastEntry != "Train ticket" {
		t.Errorf("lastEntry = %q, want %q", s.LastEntry, "Train ticket")
	}
}

func TestSummarizeYearRollover(t *testing.T) {
	// January: the previous month is December of the prior year.
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	expenses := []*domain.Expense{
		{ID: 1, Description: "new year dinner", Amount: decimal.NewFromInt(40), Category: domain.CategoryFood,
			Date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Description: "holiday gifts", Amount: decimal.NewFromInt(80), Category: domain.CategoryShopping,
			Date: time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)},
	}

	s := domain.Summarize(expenses, now)

	if want := decimal.NewFromInt(40); !s.MonthlyExpenses.Equal(want) {
		t.Errorf("monthlyExpenses = %s, want %s", s.MonthlyExpenses, want)
	}
	// (40 - 80) / 80 * 100 = -50
	if want := decimal.NewFromInt(-50); !s.PercentChange.Equal(want) {
		t.Errorf("percentChange = %s, want %s", s.PercentChange, want)
	}
}

func TestSummarizePercentChangeZeroPreviousMonth(t *testing.T) {
	now := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

	expenses := []*domain.Expense{
		{ID: 1, Description: "lunch", Amount: decimal.NewFromInt(25), Category: domain.CategoryFood,
			Date: time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)},
	}

	s := domain.Summarize(expenses, now)

	// Previous month has no expenses: percent change reports 0, not 100.
	if !s.PercentChange.IsZero() {
		t.Errorf("percentChange = %s, want 0", s.PercentChange)
	}
}

func TestSummarizeTopCategoryTieBreaksFirstEncountered(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	expenses := []*domain.Expense{
		{ID: 1, Description: "a", Amount: decimal.NewFromInt(50), Category: domain.CategoryTravel,
			Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Description: "b", Amount: decimal.NewFromInt(50), Category: domain.CategoryFood,
			Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
	}

	s := domain.Summarize(expenses, now)

	if s.TopCategory != domain.CategoryTravel.DisplayName() {
		t.Errorf("topCategory = %q, want first-encountered %q", s.TopCategory, domain.CategoryTravel.DisplayName())
	}
}

func TestTotalsByCategoryOmitsZeroCategories(t *testing.T) {
	expenses := []*domain.Expense{
		{ID: 1, Amount: decimal.NewFromInt(100), Category: domain.CategoryFood,
			Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Amount: decimal.NewFromInt(50), Category: domain.CategoryFood,
			Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Amount: decimal.NewFromInt(30), Category: domain.CategoryTravel,
			Date: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)},
	}

	totals := domain.TotalsByCategory(expenses)

	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if want := decimal.NewFromInt(150); !totals[domain.CategoryFood].Equal(want) {
		t.Errorf("food total = %s, want %s", totals[domain.CategoryFood], want)
	}
	if want := decimal.NewFromInt(30); !totals[domain.CategoryTravel].Equal(want) {
		t.Errorf("travel total = %s, want %s", totals[domain.CategoryTravel], want)
	}
	if _, ok := totals[domain.CategoryHousing]; ok {
		t.Error("expected housing to be omitted, not zero-filled")
	}
}

func TestTotalsByMonthAlwaysHasTwelveKeys(t *testing.T) {
	totals := domain.TotalsByMonth(nil, 2024)

	if len(totals) != 12 {
		t.Fatalf("expected 12 keys, got %d", len(totals))
	}
	for _, key := range []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"} {
		total, ok := totals[key]
		if !ok {
			t.Errorf("missing month key %q", key)
			continue
		}
		if !total.IsZero() {
			t.Errorf("month %q = %s, want 0", key, total)
		}
	}
}

func TestTotalsByMonthSumsMatchYearTotal(t *testing.T) {
	expenses := []*domain.Expense{
		{ID: 1, Amount: decimal.RequireFromString("10.50"), Category: domain.CategoryFood,
			Date: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Amount: decimal.RequireFromString("20.25"), Category: domain.CategoryFood,
			Date: time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Amount: decimal.RequireFromString("99.99"), Category: domain.CategoryTravel,
			Date: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Amount: decimal.NewFromInt(500), Category: domain.CategoryHousing,
			Date: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)}, // other year, excluded
	}

	totals := domain.TotalsByMonth(expenses, 2024)

	if want := decimal.RequireFromString("30.75"); !totals["Jan"].Equal(want) {
		t.Errorf("Jan = %s, want %s", totals["Jan"], want)
	}
	if want := decimal.RequireFromString("99.99"); !totals["Jun"].Equal(want) {
		t.Errorf("Jun = %s, want %s", totals["Jun"], want)
	}

	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	if want := decimal.RequireFromString("130.74"); !sum.Equal(want) {
		t.Errorf("sum of months = %s, want %s", sum, want)
	}
}
