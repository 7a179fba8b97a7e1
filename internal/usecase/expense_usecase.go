package usecase

import (
	"context"

	"github.com/iho/spendlog/internal/domain"
	"github.com/iho/spendlog/internal/infrastructure/metrics"
)

// ExpenseUseCase handles expense CRUD business logic.
type ExpenseUseCase struct {
	expenseRepo ExpenseRepository
	metrics     *metrics.Metrics
}

// NewExpenseUseCase creates a new ExpenseUseCase. A nil metrics disables
// instrumentation.
func NewExpenseUseCase(expenseRepo ExpenseRepository, metrics *metrics.Metrics) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, metrics: metrics}
}

// CreateExpense validates the input and persists a new expense. The store
// assigns ID and CreatedAt. Validation failures never reach the store.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input domain.ExpenseInput) (*domain.Expense, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, errs
	}

	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		Description: input.Description,
		Amount:      input.NormalizedAmount(),
		Category:    category,
		Date:        input.Date,
		Notes:       input.Notes,
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ExpensesCreated.Inc()
		uc.metrics.ExpenseAmount.Observe(expense.Amount.InexactFloat64())
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id int64) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, id)
}

// UpdateExpense replaces every mutable field of the expense addressed by id.
// ID and CreatedAt are never touched. Fails with domain.ErrExpenseNotFound
// when no record exists.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, id int64, input domain.ExpenseInput) (*domain.Expense, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, errs
	}

	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		ID:          id,
		Description: input.Description,
		Amount:      input.NormalizedAmount(),
		Category:    category,
		Date:        input.Date,
		Notes:       input.Notes,
	}

	updated, err := uc.expenseRepo.Update(ctx, expense)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ExpensesUpdated.Inc()
	}

	return updated, nil
}

// DeleteExpense removes the expense. It reports whether a record was
// actually removed; deleting an absent id is not an error.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.expenseRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted && uc.metrics != nil {
		uc.metrics.ExpensesDeleted.Inc()
	}

	return deleted, nil
}

// ListExpenses returns expenses matching the filter, most recent first.
// An empty filter returns every record.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, filter domain.Filter) ([]*domain.Expense, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.ApplyFilter(filter, expenses), nil
}
