package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"phonedex/internal/observability/middleware"
	"phonedex/internal/service"
)

// RouterConfig carries the transport knobs the router needs; zero values get
// sensible fallbacks.
type RouterConfig struct {
	CORSOrigins     []string
	RateLimit       int
	RateLimitWindow time.Duration
	RequestTimeout  time.Duration
}

type handler struct {
	svc *service.Service
}

// NewRouter mounts the full API surface plus /healthz and /metrics.
func NewRouter(svc *service.Service, cfg RouterConfig) *chi.Mux {
	h := &handler{svc: svc}

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 100
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = time.Minute
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(httprate.LimitByIP(cfg.RateLimit, cfg.RateLimitWindow))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.WithRequestAndTrace)
	r.Use(middleware.WithMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/devices", func(r chi.Router) {
			r.Get("/", h.listDevices)
			r.Post("/", h.createDevice)
			r.Get("/featured", h.featuredDevices)
			r.Get("/brand/{brandName}", h.devicesByBrand)
			r.Get("/{id}", h.getDevice)
			r.Put("/{id}", h.updateDevice)
			r.Delete("/{id}", h.deleteDevice)
		})

		r.Get("/search", h.searchDevices)

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", h.listBrands)
			r.Post("/", h.createBrand)
			r.Get("/{id}", h.getBrand)
		})

		r.Route("/comparisons", func(r chi.Router) {
			r.Get("/", h.listComparisons)
			r.Post("/", h.createComparison)
			r.Get("/{id}", h.getComparison)
			r.Delete("/{id}", h.deleteComparison)
		})

		r.Post("/compare", h.compareDevices)
		r.Post("/compare/analysis", h.compareAnalysis)
	})

	return r
}
