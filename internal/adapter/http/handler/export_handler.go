package handler

import (
	"encoding/csv"
	"net/http"
	"time"

	"github.com/iho/spendlog/internal/adapter/http/dto"
	"github.com/iho/spendlog/internal/infrastructure/metrics"
)

var csvHeader = []string{"Date", "Description", "Amount", "Category", "Notes"}

// ExportHandler streams the expense set as a CSV download.
type ExportHandler struct {
	expenseUC ExpenseService
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewExportHandler creates a new ExportHandler. A nil metrics disables
// instrumentation.
func NewExportHandler(expenseUC ExpenseService, metrics *metrics.Metrics) *ExportHandler {
	return &ExportHandler{expenseUC: expenseUC, metrics: metrics, now: time.Now}
}

// Export writes every expense matching the optional query filters as CSV,
// most recent first, dates formatted as calendar days.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	expenses, err := h.expenseUC.ListExpenses(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export expenses", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=expenses.csv`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	cw.Write(csvHeader)
	for _, e := range expenses {
		cw.Write([]string{
			e.Date.Format(dto.DateLayout),
			e.Description,
			e.Amount.StringFixed(2),
			string(e.Category),
			e.Notes,
		})
	}
	cw.Flush()

	if h.metrics != nil {
		h.metrics.ExportsGenerated.Inc()
	}
}
