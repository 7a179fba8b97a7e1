package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/spendlog/internal/adapter/repository/memory"
	"github.com/iho/spendlog/internal/domain"
)

func newExpense(desc string, amount string, category domain.Category, date time.Time) *domain.Expense {
	return &domain.Expense{
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        date,
		Notes:       "note",
	}
}

func TestStoreCreateAndGetByID(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	e := newExpense("Lunch", "12.50", domain.CategoryFood, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.Create(ctx, e))

	require.EqualValues(t, 1, e.ID)
	require.False(t, e.CreatedAt.IsZero())

	got, err := store.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, e.Description, got.Description)
	require.True(t, got.Amount.Equal(e.Amount))
	require.Equal(t, e.Category, got.Category)
	require.True(t, got.Date.Equal(e.Date))
	require.Equal(t, e.Notes, got.Notes)
	require.True(t, got.CreatedAt.Equal(e.CreatedAt))
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store := memory.NewStore()

	_, err := store.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrExpenseNotFound)
}

func TestStoreIDsAreNeverReused(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	first := newExpense("a", "1.00", domain.CategoryOther, time.Now())
	require.NoError(t, store.Create(ctx, first))

	removed, err := store.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, removed)

	second := newExpense("b", "2.00", domain.CategoryOther, time.Now())
	require.NoError(t, store.Create(ctx, second))
	require.Greater(t, second.ID, first.ID)
}

func TestStoreUpdatePreservesIDAndCreatedAt(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	e := newExpense("Lunch", "12.50", domain.CategoryFood, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.Create(ctx, e))
	originalCreatedAt := e.CreatedAt

	updated, err := store.Update(ctx, &domain.Expense{
		ID:          e.ID,
		Description: "Team lunch",
		Amount:      decimal.RequireFromString("45.00"),
		Category:    domain.CategoryEntertainment,
		Date:        time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		Notes:       "client visit",
		// A tampered CreatedAt must not survive the update.
		CreatedAt: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, e.ID, updated.ID)
	require.True(t, updated.CreatedAt.Equal(originalCreatedAt))
	require.Equal(t, "Team lunch", updated.Description)
	require.True(t, updated.Amount.Equal(decimal.RequireFromString("45.00")))
	require.Equal(t, domain.CategoryEntertainment, updated.Category)
	require.Equal(t, "client visit", updated.Notes)
}

func TestStoreUpdateNotFound(t *testing.T) {
	store := memory.NewStore()

	_, err := store.Update(context.Background(), &domain.Expense{ID: 9, Description: "x",
		Amount: decimal.NewFromInt(1), Category: domain.CategoryOther, Date: time.Now()})
	require.ErrorIs(t, err, domain.ErrExpenseNotFound)
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	e := newExpense("Lunch", "12.50", domain.CategoryFood, time.Now())
	require.NoError(t, store.Create(ctx, e))

	removed, err := store.Delete(ctx, e.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = store.Delete(ctx, e.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestStoreListOrdersByDateDescending(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	older := newExpense("older", "1.00", domain.CategoryFood, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	newest := newExpense("newest", "2.00", domain.CategoryFood, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	middle := newExpense("middle", "3.00", domain.CategoryFood, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	for _, e := range []*domain.Expense{older, newest, middle} {
		require.NoError(t, store.Create(ctx, e))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "newest", list[0].Description)
	require.Equal(t, "middle", list[1].Description)
	require.Equal(t, "older", list[2].Description)
}

func TestStoreListTiesKeepInsertionOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	sameDay := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	for _, desc := range []string{"first", "second", "third"} {
		require.NoError(t, store.Create(ctx, newExpense(desc, "5.00", domain.CategoryFood, sameDay)))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "third"},
		[]string{list[0].Description, list[1].Description, list[2].Description})
}

func TestStoreListReturnsCopies(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	e := newExpense("Lunch", "12.50", domain.CategoryFood, time.Now())
	require.NoError(t, store.Create(ctx, e))

	list, err := store.List(ctx)
	require.NoError(t, err)
	list[0].Description = "mutated"

	got, err := store.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, "Lunch", got.Description, "mutating a listed record must not affect the store")
}

func TestStoreSeed(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)
}
