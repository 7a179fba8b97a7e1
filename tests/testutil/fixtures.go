package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adapterhttp "github.com/iho/spendlog/internal/adapter/http"
	"github.com/iho/spendlog/internal/adapter/http/handler"
	"github.com/iho/spendlog/internal/adapter/repository/memory"
	"github.com/iho/spendlog/internal/domain"
	"github.com/iho/spendlog/internal/usecase"
)

// NewAPIServer builds the full router over a fresh in-memory store.
// Returns the handler and the store for direct seeding.
func NewAPIServer(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	expenseUC := usecase.NewExpenseUseCase(store, nil)
	reportUC := usecase.NewReportUseCase(store, nil)

	router := adapterhttp.NewRouter(adapterhttp.RouterConfig{
		ExpenseHandler: handler.NewExpenseHandler(expenseUC),
		ReportHandler:  handler.NewReportHandler(reportUC),
		ExportHandler:  handler.NewExportHandler(expenseUC, nil),
		HealthHandler:  handler.NewHealthHandler(),
		Logger:         zerolog.Nop(),
	})

	return router, store
}

// Expense builds a valid expense for seeding stores directly.
func Expense(description, amount string, category domain.Category, date time.Time) *domain.Expense {
	return &domain.Expense{
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        date,
	}
}
