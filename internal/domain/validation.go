package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmount matches the NUMERIC(10,2) storage column.
const MaxAmount = "99999999.99"

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "invalid expense: " + strings.Join(msgs, "; ")
}

// ExpenseInput holds candidate fields for creating or updating an expense.
// ID and CreatedAt are never part of the input; the store assigns them.
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Notes       string
}

// Validate checks the Expense invariants. It returns nil when the input is
// well-formed, otherwise one ValidationError per offending field.
func (in ExpenseInput) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, ValidationError{Field: "description", Message: ErrEmptyDescription.Error()})
	}

	if in.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, ValidationError{Field: "amount", Message: ErrInvalidAmount.Error()})
	} else {
		maxAmount, _ := decimal.NewFromString(MaxAmount)
		if in.Amount.GreaterThan(maxAmount) {
			errs = append(errs, ValidationError{Field: "amount", Message: fmt.Sprintf("%s: maximum is %s", ErrAmountTooLarge, MaxAmount)})
		}
	}

	if _, err := ParseCategory(in.Category); err != nil {
		errs = append(errs, ValidationError{Field: "category", Message: err.Error()})
	}

	if in.Date.IsZero() {
		errs = append(errs, ValidationError{Field: "date", Message: ErrMissingDate.Error()})
	}

	return errs
}

// NormalizedAmount returns the amount rounded half-up to currency scale.
func (in ExpenseInput) NormalizedAmount() decimal.Decimal {
	return in.Amount.Round(2)
}
