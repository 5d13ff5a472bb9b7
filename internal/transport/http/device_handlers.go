package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"phonedex/internal/dto"
	"phonedex/internal/observability/metrics"
	"phonedex/internal/observability/middleware"
	"phonedex/internal/store"
)

// listDevices parses the filter query string. Malformed numeric or boolean
// parameters are rejected here; the store only ever sees well-typed filters.
func (h *handler) listDevices(w http.ResponseWriter, r *http.Request) {
	filter, err := parseDeviceFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filters provided")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ListDevices(r.Context(), filter))
}

func parseDeviceFilter(r *http.Request) (store.DeviceFilter, error) {
	q := r.URL.Query()
	f := store.DeviceFilter{
		Brand:  q.Get("brand"),
		Search: q.Get("search"),
	}

	for _, p := range []struct {
		key string
		dst **int
	}{
		{"priceMin", &f.PriceMin},
		{"priceMax", &f.PriceMax},
		{"minRam", &f.MinRAM},
	} {
		if v := q.Get(p.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return store.DeviceFilter{}, err
			}
			*p.dst = &n
		}
	}

	if v := q.Get("fiveG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return store.DeviceFilter{}, err
		}
		f.FiveG = &b
	}
	return f, nil
}

func (h *handler) featuredDevices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.FeaturedDevices(r.Context()))
}

func (h *handler) getDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "invalid device ID")
	if !ok {
		return
	}
	d, err := h.svc.GetDevice(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *handler) createDevice(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	var req dto.CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.DeviceWritesTotal.WithLabelValues("create", "failure").Inc()
		slog.Warn("create device decode failed", "error", err, "request_id", reqID)
		writeError(w, http.StatusBadRequest, "invalid device data")
		return
	}
	d, err := h.svc.CreateDevice(r.Context(), req)
	if err != nil {
		metrics.DeviceWritesTotal.WithLabelValues("create", "failure").Inc()
		slog.Warn("create device failed", "error", err, "request_id", reqID)
		writeServiceError(w, err)
		return
	}
	metrics.DeviceWritesTotal.WithLabelValues("create", "success").Inc()
	slog.Info("device created", "device_id", d.ID, "name", d.Name, "brand", d.Brand, "request_id", reqID)
	writeJSON(w, http.StatusCreated, d)
}

func (h *handler) updateDevice(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	id, ok := pathID(w, r, "invalid device ID")
	if !ok {
		return
	}
	var req dto.UpdateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.DeviceWritesTotal.WithLabelValues("update", "failure").Inc()
		slog.Warn("update device decode failed", "error", err, "device_id", id, "request_id", reqID)
		writeError(w, http.StatusBadRequest, "invalid device data")
		return
	}
	d, err := h.svc.UpdateDevice(r.Context(), id, req)
	if err != nil {
		metrics.DeviceWritesTotal.WithLabelValues("update", "failure").Inc()
		slog.Warn("update device failed", "error", err, "device_id", id, "request_id", reqID)
		writeServiceError(w, err)
		return
	}
	metrics.DeviceWritesTotal.WithLabelValues("update", "success").Inc()
	slog.Info("device updated", "device_id", d.ID, "request_id", reqID)
	writeJSON(w, http.StatusOK, d)
}

func (h *handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	id, ok := pathID(w, r, "invalid device ID")
	if !ok {
		return
	}
	if err := h.svc.DeleteDevice(r.Context(), id); err != nil {
		metrics.DeviceWritesTotal.WithLabelValues("delete", "failure").Inc()
		writeServiceError(w, err)
		return
	}
	metrics.DeviceWritesTotal.WithLabelValues("delete", "success").Inc()
	slog.Info("device deleted", "device_id", id, "request_id", reqID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) devicesByBrand(w http.ResponseWriter, r *http.Request) {
	brandName := chi.URLParam(r, "brandName")
	writeJSON(w, http.StatusOK, h.svc.DevicesByBrand(r.Context(), brandName))
}

func (h *handler) searchDevices(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("q") {
		metrics.SearchesTotal.WithLabelValues("failure").Inc()
		writeError(w, http.StatusBadRequest, "search query is required")
		return
	}
	q := r.URL.Query().Get("q")
	metrics.SearchesTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, h.svc.SearchDevices(r.Context(), q))
}

// pathID parses the {id} route parameter, writing a 400 when it is not a
// well-formed integer.
func pathID(w http.ResponseWriter, r *http.Request, badMsg string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, badMsg)
		return 0, false
	}
	return id, true
}
