package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application-level Prometheus metrics. HTTP transport
// metrics live in the middleware package.
type Metrics struct {
	// Expense metrics
	ExpensesCreated prometheus.Counter
	ExpensesUpdated prometheus.Counter
	ExpensesDeleted prometheus.Counter
	ExpenseAmount   prometheus.Histogram

	// Report metrics
	SummariesComputed prometheus.Counter
	ReportsComputed   *prometheus.CounterVec
	ExportsGenerated  prometheus.Counter

	// Storage metrics
	StoreOperations *prometheus.CounterVec
	StoreErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ExpensesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spendlog_expenses_created_total",
			Help: "Total number of expenses created",
		}),
		ExpensesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spendlog_expenses_updated_total",
			Help: "Total number of expenses updated",
		}),
		ExpensesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spendlog_expenses_deleted_total",
			Help: "Total number of expenses deleted",
		}),
		ExpenseAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "spendlog_expense_amount",
			Help:    "Recorded expense amounts",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}),

		SummariesComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spendlog_summaries_computed_total",
			Help: "Total number of summary computations",
		}),
		ReportsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendlog_reports_computed_total",
				Help: "Total number of report computations by kind",
			},
			[]string{"kind"},
		),
		ExportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "spendlog_exports_generated_total",
			Help: "Total number of CSV exports generated",
		}),

		StoreOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendlog_store_operations_total",
				Help: "Total storage operations by type",
			},
			[]string{"operation"},
		),
		StoreErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spendlog_store_errors_total",
				Help: "Total storage errors by operation",
			},
			[]string{"operation"},
		),
	}
}
