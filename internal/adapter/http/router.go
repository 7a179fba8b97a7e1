package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/spendlog/internal/adapter/http/handler"
	"github.com/iho/spendlog/internal/adapter/http/middleware"
	"github.com/iho/spendlog/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ExpenseHandler   *handler.ExpenseHandler
	ReportHandler    *handler.ReportHandler
	ExportHandler    *handler.ExportHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API
	r.Route("/api", func(r chi.Router) {
		// Idempotency replay for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.ExpenseHandler.Create)
			r.Get("/", cfg.ExpenseHandler.List)
			r.Get("/export", cfg.ExportHandler.Export)
			r.Get("/{id}", cfg.ExpenseHandler.Get)
			r.Put("/{id}", cfg.ExpenseHandler.Update)
			r.Delete("/{id}", cfg.ExpenseHandler.Delete)
		})

		r.Get("/summary", cfg.ReportHandler.Summary)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/by-category", cfg.ReportHandler.ByCategory)
			r.Get("/by-month", cfg.ReportHandler.ByMonth)
		})
	})

	return r
}
