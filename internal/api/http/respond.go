package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/logger"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the service error taxonomy onto HTTP status codes:
// forbidden 403, not found 404, invalid input 400, unauthenticated 401,
// everything else (persistence included) 500.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	respondJSON(w, status, errorResponse{Detail: err.Error()})
}
