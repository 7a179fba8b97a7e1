package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/adapter/http/dto"
	"github.com/iho/spendlog/internal/domain"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Summary(ctx context.Context) (domain.ExpenseSummary, error)
	ByCategory(ctx context.Context) (map[domain.Category]decimal.Decimal, error)
	ByMonth(ctx context.Context, year int) (map[string]decimal.Decimal, error)
}

// ReportHandler handles aggregation report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
	now      func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, now: time.Now}
}

// Summary returns the dashboard summary computed over the full record set.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportUC.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}

// ByCategory returns cumulative totals per category, zero categories omitted.
func (h *ReportHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.reportUC.ByCategory(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute category totals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryTotalsFromDomain(totals))
}

// ByMonth returns monthly totals for the requested year. A missing or
// unparseable year falls back to the current one.
func (h *ReportHandler) ByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		year = h.now().Year()
	}

	months, err := h.reportUC.ByMonth(r.Context(), year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute monthly totals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlyReportResponse{
		Year:   year,
		Months: months,
	})
}
