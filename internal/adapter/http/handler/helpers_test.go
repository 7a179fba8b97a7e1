package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/spendlog/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrExpenseNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", domain.ErrExpenseNotFound), http.StatusNotFound},
		{domain.ErrInvalidCategory, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrInvalidTimeRange, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestFilterFromQuery_TimeRangeResolvesBounds(t *testing.T) {
	now := time.Date(2024, 2, 28, 10, 0, 0, 0, time.UTC)
	req := httptest.NewRequest(http.MethodGet, "/api/expenses?timeRange=month", nil)

	filter, err := filterFromQuery(req, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !filter.DateFrom.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected month start, got %v", filter.DateFrom)
	}
	if filter.DateTo.Day() != 29 {
		t.Fatalf("expected leap February end, got %v", filter.DateTo)
	}
}

func TestFilterFromQuery_AllImposesNoBounds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/expenses?timeRange=all", nil)

	filter, err := filterFromQuery(req, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filter.DateFrom.IsZero() || !filter.DateTo.IsZero() {
		t.Fatalf("expected unbounded filter, got %+v", filter)
	}
}

func TestFilterFromQuery_BadDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/expenses?dateTo=2024-13-01", nil)

	if _, err := filterFromQuery(req, time.Now()); err == nil {
		t.Fatal("expected an error for an unparseable dateTo")
	}
}
