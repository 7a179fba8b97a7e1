package usecase

import (
	"context"
	"time"

	"github.com/iho/spendlog/internal/domain"
)

// ExpenseRepository defines data access for expenses. Create assigns the
// record's ID and CreatedAt; neither ever changes afterwards. List returns
// records ordered by date descending, ties broken by insertion order.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.Expense, error)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
