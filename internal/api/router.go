// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/gigradar/internal/config"
	"github.com/tomtom215/gigradar/internal/middleware"
)

// Rate limit tiers. Discovery runs are expensive (provider quota and
// wall-clock time), so they get a much tighter budget than reads.
var (
	rateLimitDiscovery = rateLimit{requests: 10, window: time.Minute}
	rateLimitAdmin     = rateLimit{requests: 30, window: time.Minute}
	rateLimitHealth    = rateLimit{requests: 1000, window: time.Minute}
)

type rateLimit struct {
	requests int
	window   time.Duration
}

func (rl rateLimit) middleware() func(http.Handler) http.Handler {
	return httprate.LimitByIP(rl.requests, rl.window)
}

// Router assembles the HTTP routes.
type Router struct {
	handler *Handler
	cfg     config.ServerConfig
}

// NewRouter creates a router over the handler set.
func NewRouter(handler *Handler, cfg config.ServerConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup builds the chi handler with the full middleware stack.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(rateLimitHealth.middleware())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1/discovery", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		r.With(rateLimitDiscovery.middleware()).Get("/", router.handler.Discovery)
		r.With(rateLimitDiscovery.middleware()).Get("/demo-data", router.handler.DemoData)

		r.With(rateLimitAdmin.middleware()).Get("/status", router.handler.DiscoveryStatus)
		r.With(rateLimitAdmin.middleware()).Post("/clear-cache", router.handler.ClearCache)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
