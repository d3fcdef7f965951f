package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// routes builds the application's HTTP handler.
func (cfg *apiConfig) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/lookup", cfg.handlerLookup)
		r.Get("/state", cfg.handlerState)
		r.Get("/config", cfg.handlerConfig)
	})
	r.Handle("/metrics", promhttp.Handler())

	return otelhttp.NewHandler(r, "weatherwidget")
}
