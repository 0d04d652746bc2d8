package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/bankmatch/internal/adapter/http/dto"
	"github.com/iho/bankmatch/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAttachmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMissingID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNegativeAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidParties):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
