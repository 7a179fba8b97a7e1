package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/spendlog/internal/adapter/http/handler"
	"github.com/iho/spendlog/internal/domain"
)

type expenseServiceStub struct{}

func (expenseServiceStub) CreateExpense(ctx context.Context, input domain.ExpenseInput) (*domain.Expense, error) {
	return &domain.Expense{ID: 1, Description: input.Description, Amount: input.Amount, Category: domain.Category(input.Category), Date: input.Date}, nil
}

func (expenseServiceStub) GetExpense(ctx context.Context, id int64) (*domain.Expense, error) {
	return nil, domain.ErrExpenseNotFound
}

func (expenseServiceStub) UpdateExpense(ctx context.Context, id int64, input domain.ExpenseInput) (*domain.Expense, error) {
	return nil, domain.ErrExpenseNotFound
}

func (expenseServiceStub) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func (expenseServiceStub) ListExpenses(ctx context.Context, filter domain.Filter) ([]*domain.Expense, error) {
	return nil, nil
}

type reportServiceStub struct{}

func (reportServiceStub) Summary(ctx context.Context) (domain.ExpenseSummary, error) {
	return domain.ExpenseSummary{TopCategory: "Other", LastEntry: domain.NoExpensesEntry}, nil
}

func (reportServiceStub) ByCategory(ctx context.Context) (map[domain.Category]decimal.Decimal, error) {
	return nil, nil
}

func (reportServiceStub) ByMonth(ctx context.Context, year int) (map[string]decimal.Decimal, error) {
	return map[string]decimal.Decimal{}, nil
}

type stubIdempotencyStore struct {
	checkCalls int
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalls++
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		ExpenseHandler: handler.NewExpenseHandler(expenseServiceStub{}),
		ReportHandler:  handler.NewReportHandler(reportServiceStub{}),
		ExportHandler:  handler.NewExportHandler(expenseServiceStub{}, nil),
		HealthHandler:  handler.NewHealthHandler(),
		Logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_ReadyWithoutChecks(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /ready to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_CreateExpenseRouted(t *testing.T) {
	router := NewRouter(newRouterConfig())

	body := `{"description":"Groceries","amount":"42.50","category":"food","date":"2024-02-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_ExportRoutedBeforeIDParam(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/expenses/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected export route to match, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected CSV response, got %s", ct)
	}
}

func TestNewRouter_SummaryRouted(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["lastEntry"] != domain.NoExpensesEntry {
		t.Fatalf("unexpected summary payload: %v", resp)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
		cfg.IdempotencyTTL = time.Minute
	}))

	body := `{"description":"Groceries","amount":"42.50","category":"food","date":"2024-02-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if store.checkCalls != 1 {
		t.Fatalf("expected idempotency store to be consulted once, got %d", store.checkCalls)
	}
}

func TestNewRouter_RequestIDEchoed(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a generated request id header")
	}
}
