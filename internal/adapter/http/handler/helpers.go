package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/spendlog/internal/adapter/http/dto"
	"github.com/iho/spendlog/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeValidationError writes a 400 response carrying field-level detail.
func writeValidationError(w http.ResponseWriter, errs domain.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:  "validation failed",
		Errors: errs,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrExpenseNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrMissingDate),
		errors.Is(err, domain.ErrInvalidTimeRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam parses the {id} route parameter as a positive integer.
func parseIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// filterFromQuery builds a domain filter from listing query parameters.
// A timeRange shorthand, when present, resolves against now and takes
// precedence over explicit dateFrom/dateTo values.
func filterFromQuery(r *http.Request, now time.Time) (domain.Filter, error) {
	q := r.URL.Query()
	filter := domain.Filter{Category: q.Get("category")}

	if raw := q.Get("timeRange"); raw != "" {
		tr, err := domain.ParseTimeRange(raw)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.DateFrom, filter.DateTo = tr.Bounds(now)
		return filter, nil
	}

	if raw := q.Get("dateFrom"); raw != "" {
		from, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return domain.Filter{}, errors.New("dateFrom must be a date in " + dto.DateLayout + " format")
		}
		filter.DateFrom = from
	}
	if raw := q.Get("dateTo"); raw != "" {
		to, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return domain.Filter{}, errors.New("dateTo must be a date in " + dto.DateLayout + " format")
		}
		// Inclusive upper bound covers the whole day.
		filter.DateTo = to.Add(24*time.Hour - time.Nanosecond)
	}

	return filter, nil
}
