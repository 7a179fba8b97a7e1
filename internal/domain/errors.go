package domain

import "errors"

var (
	// Expense errors
	ErrExpenseNotFound = errors.New("expense not found")

	// Validation errors
	ErrInvalidCategory  = errors.New("unknown expense category")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrMissingDate      = errors.New("date is required")
	ErrInvalidTimeRange = errors.New("unknown time range")
)
