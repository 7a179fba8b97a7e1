package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/domain"
	"github.com/iho/spendlog/internal/infrastructure/metrics"
)

// ExpenseRepository implements usecase.ExpenseRepository over PostgreSQL.
type ExpenseRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewExpenseRepository creates a new ExpenseRepository. A nil metrics
// disables instrumentation.
func NewExpenseRepository(pool *pgxpool.Pool, metrics *metrics.Metrics) *ExpenseRepository {
	return &ExpenseRepository{
		pool:    pool,
		retrier: NewRetrier(),
		metrics: metrics,
	}
}

// record counts one storage operation and, when it failed, one error.
func (r *ExpenseRepository) record(operation string, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.StoreOperations.WithLabelValues(operation).Inc()
	if err != nil {
		r.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}

const expenseColumns = `id, description, amount, category, date, notes, created_at`

// Create inserts the expense. The database assigns id and created_at.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (description, amount, category, date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	amount, err := decimalToNumeric(expense.Amount)
	if err != nil {
		return err
	}

	var createdAt pgtype.Timestamptz

	err = r.pool.QueryRow(ctx, query,
		expense.Description,
		amount,
		string(expense.Category),
		timeToTimestamptz(expense.Date),
		notesToText(expense.Notes),
	).Scan(&expense.ID, &createdAt)
	r.record("create", err)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	expense.CreatedAt = createdAt.Time

	return nil
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	expense, err := scanExpense(r.pool.QueryRow(ctx, query, id))
	r.record("get", err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return expense, nil
}

// Update replaces all mutable fields in a single statement; id and
// created_at are untouched.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	query := `
		UPDATE expenses
		SET description = $2, amount = $3, category = $4, date = $5, notes = $6
		WHERE id = $1
		RETURNING ` + expenseColumns

	amount, err := decimalToNumeric(expense.Amount)
	if err != nil {
		return nil, err
	}

	updated, err := scanExpense(r.pool.QueryRow(ctx, query,
		expense.ID,
		expense.Description,
		amount,
		string(expense.Category),
		timeToTimestamptz(expense.Date),
		notesToText(expense.Notes),
	))
	r.record("update", err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}

		return nil, fmt.Errorf("updating expense: %w", err)
	}

	return updated, nil
}

// Delete removes the expense and reports whether a row was removed.
func (r *ExpenseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	r.record("delete", err)
	if err != nil {
		return false, fmt.Errorf("deleting expense: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// List returns all expenses, most recent date first. Ascending id breaks
// date ties in insertion order.
func (r *ExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY date DESC, id ASC`

	var expenses []*domain.Expense

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		expenses = expenses[:0]
		for rows.Next() {
			expense, err := scanExpense(rows)
			if err != nil {
				return err
			}
			expenses = append(expenses, expense)
		}

		return rows.Err()
	})
	r.record("list", err)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return expenses, nil
}

// scanExpense reads an expense row in expenseColumns order. A malformed
// amount fails the scan instead of degrading to zero.
func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		e         domain.Expense
		amount    pgtype.Numeric
		category  string
		date      pgtype.Timestamptz
		notes     pgtype.Text
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&e.ID, &e.Description, &amount, &category, &date, &notes, &createdAt); err != nil {
		return nil, err
	}

	value, err := numericToDecimal(amount)
	if err != nil {
		return nil, fmt.Errorf("expense %d: %w", e.ID, err)
	}

	e.Amount = value
	e.Category = domain.Category(category)
	e.Date = date.Time
	e.Notes = notes.String
	e.CreatedAt = createdAt.Time

	return &e, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric

	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("encoding amount %s: %w", d, err)
	}

	return n, nil
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.Int == nil {
		return decimal.Decimal{}, errors.New("amount is null or unreadable")
	}

	d, err := decimal.NewFromString(n.Int.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed amount: %w", err)
	}
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d, nil
}

func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func notesToText(notes string) pgtype.Text {
	return pgtype.Text{String: notes, Valid: true}
}
