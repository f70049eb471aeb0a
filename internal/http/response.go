package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/matromatro/casa-pao-backend-frontend/internal/repository"
	"github.com/matromatro/casa-pao-backend-frontend/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps service and repository sentinels to HTTP statuses.
// Anything unmapped is a storage or internal failure and stays a 500 without
// leaking the wrapped detail to the client.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, service.ErrMissingCustomerField):
		respondError(w, http.StatusBadRequest, "missing_customer_field", err.Error())
	case errors.Is(err, service.ErrInvalidMode):
		respondError(w, http.StatusBadRequest, "invalid_mode", err.Error())
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
	case errors.Is(err, service.ErrUnknownProduct):
		respondError(w, http.StatusBadRequest, "unknown_product", err.Error())
	case errors.Is(err, service.ErrInactiveProduct):
		respondError(w, http.StatusBadRequest, "inactive_product", err.Error())
	case errors.Is(err, service.ErrModeMismatch):
		respondError(w, http.StatusBadRequest, "mode_mismatch", err.Error())
	case errors.Is(err, repository.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "not_found", "order not found")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
