package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/domain"
	"github.com/iho/spendlog/internal/infrastructure/metrics"
)

// ReportUseCase computes summary statistics and grouped reports. Every
// report is a pure fold over a fresh snapshot of the store; nothing is
// cached between requests.
type ReportUseCase struct {
	expenseRepo ExpenseRepository
	metrics     *metrics.Metrics

	// Now supplies the reference time for summary math. Tests override it.
	Now func() time.Time
}

// NewReportUseCase creates a new ReportUseCase. A nil metrics disables
// instrumentation.
func NewReportUseCase(expenseRepo ExpenseRepository, metrics *metrics.Metrics) *ReportUseCase {
	return &ReportUseCase{
		expenseRepo: expenseRepo,
		metrics:     metrics,
		Now:         time.Now,
	}
}

// Summary computes the dashboard summary over the full record set.
func (uc *ReportUseCase) Summary(ctx context.Context) (domain.ExpenseSummary, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return domain.ExpenseSummary{}, err
	}

	if uc.metrics != nil {
		uc.metrics.SummariesComputed.Inc()
	}

	return domain.Summarize(expenses, uc.Now()), nil
}

// ByCategory maps each category with at least one expense to its total.
func (uc *ReportUseCase) ByCategory(ctx context.Context) (map[domain.Category]decimal.Decimal, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReportsComputed.WithLabelValues("by-category").Inc()
	}

	return domain.TotalsByCategory(expenses), nil
}

// ByMonth maps every month abbreviation of the given year to its total.
// Year <= 0 falls back to the current year.
func (uc *ReportUseCase) ByMonth(ctx context.Context, year int) (map[string]decimal.Decimal, error) {
	if year <= 0 {
		year = uc.Now().Year()
	}

	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReportsComputed.WithLabelValues("by-month").Inc()
	}

	return domain.TotalsByMonth(expenses, year), nil
}
