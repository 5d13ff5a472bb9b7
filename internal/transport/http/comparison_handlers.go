package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"phonedex/internal/dto"
	"phonedex/internal/observability/metrics"
	"phonedex/internal/observability/middleware"
)

func (h *handler) listComparisons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListComparisons(r.Context()))
}

func (h *handler) getComparison(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "invalid comparison ID")
	if !ok {
		return
	}
	c, err := h.svc.GetComparison(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *handler) createComparison(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	var req dto.CreateComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("create comparison decode failed", "error", err, "request_id", reqID)
		writeError(w, http.StatusBadRequest, "invalid comparison data")
		return
	}
	c, err := h.svc.CreateComparison(r.Context(), req)
	if err != nil {
		slog.Warn("create comparison failed", "error", err, "request_id", reqID)
		writeServiceError(w, err)
		return
	}
	slog.Info("comparison created", "comparison_id", c.ID, "name", c.Name, "request_id", reqID)
	writeJSON(w, http.StatusCreated, c)
}

func (h *handler) deleteComparison(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "invalid comparison ID")
	if !ok {
		return
	}
	if err := h.svc.DeleteComparison(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) compareDevices(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	var req dto.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ComparesTotal.WithLabelValues("failure").Inc()
		slog.Warn("compare decode failed", "error", err, "request_id", reqID)
		writeError(w, http.StatusBadRequest, "invalid compare request")
		return
	}
	devices, err := h.svc.Compare(r.Context(), req.DeviceIDs)
	if err != nil {
		metrics.ComparesTotal.WithLabelValues("failure").Inc()
		slog.Warn("compare failed", "error", err, "device_ids", req.DeviceIDs, "request_id", reqID)
		writeServiceError(w, err)
		return
	}
	metrics.ComparesTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, devices)
}

func (h *handler) compareAnalysis(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	var req dto.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ComparesTotal.WithLabelValues("failure").Inc()
		slog.Warn("compare analysis decode failed", "error", err, "request_id", reqID)
		writeError(w, http.StatusBadRequest, "invalid compare request")
		return
	}
	analysis, err := h.svc.CompareAnalysis(r.Context(), req.DeviceIDs)
	if err != nil {
		metrics.ComparesTotal.WithLabelValues("failure").Inc()
		slog.Warn("compare analysis failed", "error", err, "device_ids", req.DeviceIDs, "request_id", reqID)
		writeServiceError(w, err)
		return
	}
	metrics.ComparesTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, analysis)
}
