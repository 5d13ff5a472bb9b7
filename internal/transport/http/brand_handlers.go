package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"phonedex/internal/dto"
	"phonedex/internal/observability/middleware"
)

func (h *handler) listBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListBrands(r.Context()))
}

func (h *handler) getBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "invalid brand ID")
	if !ok {
		return
	}
	b, err := h.svc.GetBrand(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *handler) createBrand(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	var req dto.CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("create brand decode failed", "error", err, "request_id", reqID)
		writeError(w, http.StatusBadRequest, "invalid brand data")
		return
	}
	b, err := h.svc.CreateBrand(r.Context(), req)
	if err != nil {
		slog.Warn("create brand failed", "error", err, "request_id", reqID)
		writeServiceError(w, err)
		return
	}
	slog.Info("brand created", "brand_id", b.ID, "name", b.Name, "request_id", reqID)
	writeJSON(w, http.StatusCreated, b)
}
