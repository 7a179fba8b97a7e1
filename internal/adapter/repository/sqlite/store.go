// Package sqlite provides an embedded ExpenseRepository backed by
// modernc.org/sqlite. Amounts are stored as exact decimal strings; dates as
// RFC 3339 UTC text, so the date-descending index order matches
// chronological order.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/iho/spendlog/internal/domain"
)

// Store implements usecase.ExpenseRepository over SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database at dbPath and applies
// migrations.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// modernc sqlite serializes writes on a single connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const expenseColumns = `id, description, amount, category, date, notes, created_at`

// Create inserts the expense, assigning id and created_at.
func (s *Store) Create(ctx context.Context, expense *domain.Expense) error {
	createdAt := time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (description, amount, category, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		expense.Description,
		expense.Amount.String(),
		string(expense.Category),
		formatTime(expense.Date),
		expense.Notes,
		formatTime(createdAt),
	)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	expense.ID = id
	expense.CreatedAt = createdAt

	return nil
}

// GetByID retrieves an expense by ID.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return expense, nil
}

// Update replaces all mutable fields in a single statement.
func (s *Store) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET description = ?, amount = ?, category = ?, date = ?, notes = ?
		WHERE id = ?`,
		expense.Description,
		expense.Amount.String(),
		string(expense.Category),
		formatTime(expense.Date),
		expense.Notes,
		expense.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating expense: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrExpenseNotFound
	}

	return s.GetByID(ctx, expense.ID)
}

// Delete removes the expense and reports whether a row was removed.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting expense: %w", err)
	}

	return affected > 0, nil
}

// List returns all expenses, most recent date first, ties in insertion
// order.
func (s *Store) List(ctx context.Context) ([]*domain.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("listing expenses: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return expenses, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanExpense reads an expense row in expenseColumns order. A malformed
// stored amount or date fails the read; it never degrades to a zero value.
func scanExpense(s scanner) (*domain.Expense, error) {
	var (
		e         domain.Expense
		amount    string
		category  string
		date      string
		createdAt string
	)

	if err := s.Scan(&e.ID, &e.Description, &amount, &category, &date, &e.Notes, &createdAt); err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("expense %d: malformed amount %q: %w", e.ID, amount, err)
	}
	e.Amount = value

	e.Category = domain.Category(category)

	if e.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
		return nil, fmt.Errorf("expense %d: malformed date %q: %w", e.ID, date, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("expense %d: malformed created_at %q: %w", e.ID, createdAt, err)
	}

	return &e, nil
}

// Fixed-width nanoseconds keep lexicographic text order identical to
// chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
