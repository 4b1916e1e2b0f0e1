package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{
		Error:     code,
		Message:   message,
		Status:    status,
		RequestID: middleware.GetReqID(ctx),
	})
}

// writeDomainError maps domain errors to HTTP statuses.
func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		writeError(ctx, w, http.StatusBadRequest, "invalid_category", "category id is required")
	case errors.Is(err, domain.ErrPricingContextRequired):
		writeError(ctx, w, http.StatusBadRequest, "pricing_context_required", "region_id and currency_code are required")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(ctx, w, http.StatusGatewayTimeout, "timeout", "request timed out")
	default:
		writeError(ctx, w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
