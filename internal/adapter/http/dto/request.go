package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/domain"
)

// DateLayout is the calendar-day format accepted in requests and emitted in
// CSV exports.
const DateLayout = "2006-01-02"

// ExpenseRequest represents the create/update payload for an expense.
type ExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Notes       string          `json:"notes,omitempty"`
}

// ToInput converts to domain input. An unparseable date is reported as a
// field-level validation error rather than a decode failure, so it lands in
// the same 400 payload as the other invariant violations.
func (r *ExpenseRequest) ToInput() (domain.ExpenseInput, domain.ValidationErrors) {
	input := domain.ExpenseInput{
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Notes:       r.Notes,
	}

	if r.Date != "" {
		date, err := parseDate(r.Date)
		if err != nil {
			return input, domain.ValidationErrors{{
				Field:   "date",
				Message: "must be a date in " + DateLayout + " or RFC 3339 format",
			}}
		}
		input.Date = date
	}

	return input, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
