package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/iho/spendlog/internal/adapter/http/dto"
	"github.com/iho/spendlog/internal/domain"
)

// ExpenseService defines the behavior needed by ExpenseHandler.
type ExpenseService interface {
	CreateExpense(ctx context.Context, input domain.ExpenseInput) (*domain.Expense, error)
	GetExpense(ctx context.Context, id int64) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, id int64, input domain.ExpenseInput) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id int64) (bool, error)
	ListExpenses(ctx context.Context, filter domain.Filter) ([]*domain.Expense, error)
}

// ExpenseHandler handles expense CRUD HTTP requests.
type ExpenseHandler struct {
	expenseUC ExpenseService
	now       func() time.Time
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseUC ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseUC: expenseUC, now: time.Now}
}

// Create records a new expense.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, errs := req.ToInput()
	if errs != nil {
		writeValidationError(w, errs)
		return
	}

	expense, err := h.expenseUC.CreateExpense(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, "failed to create expense", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExpenseFromDomain(expense))
}

// Get retrieves an expense by ID.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense ID", err.Error())
		return
	}

	expense, err := h.expenseUC.GetExpense(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// Update replaces the mutable fields of an existing expense.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense ID", err.Error())
		return
	}

	var req dto.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, errs := req.ToInput()
	if errs != nil {
		writeValidationError(w, errs)
		return
	}

	expense, err := h.expenseUC.UpdateExpense(r.Context(), id, input)
	if err != nil {
		respondUseCaseError(w, "failed to update expense", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseFromDomain(expense))
}

// Delete removes an expense. Responds 204 on success, 404 when absent.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense ID", err.Error())
		return
	}

	deleted, err := h.expenseUC.DeleteExpense(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "failed to delete expense", domain.ErrExpenseNotFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List returns expenses date-descending, narrowed by optional query filters.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	expenses, err := h.expenseUC.ListExpenses(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpensesFromDomain(expenses))
}

// respondUseCaseError distinguishes field-level validation failures from
// other domain errors so 400 payloads keep their errors array.
func respondUseCaseError(w http.ResponseWriter, message string, err error) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		writeValidationError(w, verrs)
		return
	}
	writeError(w, mapDomainError(err), message, err.Error())
}
