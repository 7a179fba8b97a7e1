// Package memory provides a map-backed ExpenseRepository. It is the default
// storage driver and keeps the same observable semantics as the database
// drivers: store-assigned monotonic ids that are never reused, immutable
// CreatedAt, and date-descending listing with stable insertion-order ties.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/domain"
)

// Store implements usecase.ExpenseRepository in memory.
type Store struct {
	mu       sync.RWMutex
	expenses map[int64]*domain.Expense
	nextID   int64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		expenses: make(map[int64]*domain.Expense),
		nextID:   1,
	}
}

// Create assigns a fresh id and CreatedAt, then inserts the record.
func (s *Store) Create(ctx context.Context, expense *domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = s.nextID
	s.nextID++
	expense.CreatedAt = time.Now().UTC()

	copied := *expense
	s.expenses[expense.ID] = &copied

	return nil
}

// GetByID returns the record or domain.ErrExpenseNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.expenses[id]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}

	copied := *e
	return &copied, nil
}

// Update replaces every mutable field of the addressed record atomically.
// ID and CreatedAt are preserved from the existing record.
func (s *Store) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.expenses[expense.ID]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}

	updated := *expense
	updated.CreatedAt = existing.CreatedAt
	s.expenses[expense.ID] = &updated

	copied := updated
	return &copied, nil
}

// Delete removes the record and reports whether one existed. Deleted ids are
// never reassigned.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return false, nil
	}

	delete(s.expenses, id)
	return true, nil
}

// List returns all records ordered by date descending; records sharing a
// date keep their insertion order.
func (s *Store) List(ctx context.Context) ([]*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		copied := *e
		out = append(out, &copied)
	}

	// Ascending id equals insertion order, which makes the sort ties stable.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}

// Seed inserts development sample expenses relative to now. Used by the
// server in memory mode when SEED_DATA is enabled.
func (s *Store) Seed(ctx context.Context, now time.Time) error {
	lastMonth := now.AddDate(0, -1, 0)

	samples := []domain.Expense{
		{Description: "Grocery Shopping", Amount: decimal.RequireFromString("67.52"),
			Category: domain.CategoryFood, Date: now, Notes: "Weekly groceries"},
		{Description: "Netflix Subscription", Amount: decimal.RequireFromString("14.99"),
			Category: domain.CategoryEntertainment, Date: now.AddDate(0, 0, -2), Notes: "Monthly subscription"},
		{Description: "Gas Station", Amount: decimal.RequireFromString("42.75"),
			Category: domain.CategoryTransportation, Date: now.AddDate(0, 0, -3), Notes: "Filled up the tank"},
		{Description: "Electricity Bill", Amount: decimal.RequireFromString("124.30"),
			Category: domain.CategoryHousing, Date: now.AddDate(0, 0, -7), Notes: "Monthly utility bill"},
		{Description: "New Shoes", Amount: decimal.RequireFromString("89.99"),
			Category: domain.CategoryShopping, Date: now.AddDate(0, 0, -10), Notes: "Running shoes"},
		{Description: "Dentist Appointment", Amount: decimal.RequireFromString("75.00"),
			Category: domain.CategoryHealthcare, Date: lastMonth, Notes: "Regular checkup"},
		{Description: "Restaurant", Amount: decimal.RequireFromString("48.35"),
			Category: domain.CategoryFood, Date: lastMonth, Notes: "Dinner with friends"},
		{Description: "Internet Bill", Amount: decimal.RequireFromString("65.99"),
			Category: domain.CategoryHousing, Date: lastMonth, Notes: "Monthly internet service"},
	}

	for i := range samples {
		if err := s.Create(ctx, &samples[i]); err != nil {
			return err
		}
	}

	return nil
}
