package dto

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/domain"
)

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Date:        e.Date,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TopCategory     string          `json:"topCategory"`
	LastEntry       string          `json:"lastEntry"`
	PercentChange   decimal.Decimal `json:"percentChange"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s domain.ExpenseSummary) SummaryResponse {
	return SummaryResponse{
		TotalExpenses:   s.TotalExpenses,
		MonthlyExpenses: s.MonthlyExpenses,
		TopCategory:     s.TopCategory,
		LastEntry:       s.LastEntry,
		PercentChange:   s.PercentChange,
	}
}

// CategoryTotal is one row of the by-category report.
type CategoryTotal struct {
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryTotalsFromDomain flattens the by-category map into rows sorted by
// total descending, ties by category name, so the payload is deterministic.
func CategoryTotalsFromDomain(totals map[domain.Category]decimal.Decimal) []CategoryTotal {
	result := make([]CategoryTotal, 0, len(totals))
	for c, total := range totals {
		result = append(result, CategoryTotal{
			Category: string(c),
			Label:    c.DisplayName(),
			Total:    total,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// MonthlyReportResponse represents the by-month report in API responses.
// Months always holds all twelve three-letter keys.
type MonthlyReportResponse struct {
	Year   int                        `json:"year"`
	Months map[string]decimal.Decimal `json:"months"`
}

// ErrorResponse represents an error in API responses. Errors carries
// field-level validation detail on 400 responses.
type ErrorResponse struct {
	Error   string                   `json:"error"`
	Message string                   `json:"message,omitempty"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}
