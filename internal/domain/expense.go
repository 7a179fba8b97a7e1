package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded monetary outflow.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    Category
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
}
