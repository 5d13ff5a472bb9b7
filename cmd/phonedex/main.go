package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"phonedex/internal/config"
	"phonedex/internal/observability/logging"
	"phonedex/internal/observability/metrics"
	"phonedex/internal/service"
	"phonedex/internal/store"
	httptransport "phonedex/internal/transport/http"
)

func main() {
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "phonedex",
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	metrics.MustRegister("phonedex")

	st := store.New()
	if cfg.SeedData {
		st.Seed()
		logger.Info("loaded sample catalog")
	}

	svc := service.New(st)
	router := httptransport.NewRouter(svc, httptransport.RouterConfig{
		CORSOrigins:     cfg.CORSOrigins,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		RequestTimeout:  cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("catalog service listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
