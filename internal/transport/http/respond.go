package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"phonedex/internal/domain"
	"phonedex/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps the error taxonomy onto HTTP statuses: validation
// to 400 with the wrapped message, not-found sentinels to 404, anything else
// to a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDeviceNotFound),
		errors.Is(err, domain.ErrBrandNotFound),
		errors.Is(err, domain.ErrComparisonNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
