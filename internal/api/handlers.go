// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/gigradar/internal/bandsintown"
	"github.com/tomtom215/gigradar/internal/config"
	"github.com/tomtom215/gigradar/internal/discovery"
	"github.com/tomtom215/gigradar/internal/logging"
	"github.com/tomtom215/gigradar/internal/models"
	"github.com/tomtom215/gigradar/internal/venues"
)

// demoWindowMonths is the fixed window length of the demo-data endpoint.
const demoWindowMonths = 2

// statusProbeTimeout bounds the reference-act connectivity check so the
// status endpoint stays responsive when the provider hangs.
const statusProbeTimeout = 10 * time.Second

// ProviderClient is the slice of the events client the handlers need.
type ProviderClient interface {
	IsConfigured() bool
	VerifyConnectivity(ctx context.Context) error
	ClearCache() error
	CacheStats() models.CacheStats
}

// DiscoveryRunner runs discovery; implemented by discovery.Discoverer.
type DiscoveryRunner interface {
	Discover(ctx context.Context, req discovery.Request) (*models.DiscoveryOutcome, error)
	DiscoverStream(ctx context.Context, req discovery.Request, sink discovery.Sink) error
}

// Handler holds the HTTP handlers and their collaborators.
type Handler struct {
	cfg      *config.Config
	provider ProviderClient
	runner   DiscoveryRunner
	validate *validator.Validate
}

// NewHandler creates the handler set.
func NewHandler(cfg *config.Config, provider ProviderClient, runner DiscoveryRunner) *Handler {
	return &Handler{
		cfg:      cfg,
		provider: provider,
		runner:   runner,
		validate: validator.New(),
	}
}

// Discovery handles GET /api/v1/discovery, streaming or not depending on
// the streaming query parameter.
func (h *Handler) Discovery(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if !h.cfg.Discovery.Enabled {
		rw.ServiceUnavailable("discovery is disabled")
		return
	}

	params, err := parseDiscoveryParams(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if err := h.validate.Struct(params); err != nil {
		rw.ValidationError("invalid discovery parameters", validationDetails(err))
		return
	}

	req := params.ToRequest()
	if params.Streaming {
		h.streamDiscovery(w, r, req)
		return
	}

	outcome, err := h.runner.Discover(r.Context(), req)
	if err != nil {
		writeDiscoveryError(rw, err)
		return
	}
	rw.Discovery(outcome)
}

// streamDiscovery serves the NDJSON variant. Headers are flushed before
// the run starts, so any later failure is reported as a terminal error
// frame rather than an HTTP status.
func (h *Handler) streamDiscovery(w http.ResponseWriter, r *http.Request, req discovery.Request) {
	w.Header().Set("Content-Type", "application/x-ndjson; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	sink := newNDJSONSink(w, flusher)
	if err := h.runner.DiscoverStream(r.Context(), req, sink); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("streaming discovery failed")
	}
}

// writeDiscoveryError maps a discovery failure to the HTTP status and
// public message for the non-streaming path.
func writeDiscoveryError(rw *ResponseWriter, err error) {
	msg := discovery.PublicMessage(err)
	switch {
	case errors.Is(err, venues.ErrVenueNotFound):
		rw.NotFound(msg)
	case errors.Is(err, discovery.ErrMissingCoordinates):
		rw.BadRequest(msg)
	case errors.Is(err, bandsintown.ErrNotConfigured):
		rw.Error(http.StatusServiceUnavailable, ErrCodeNotConfigured, msg)
	default:
		rw.Error(http.StatusInternalServerError, ErrCodeDiscoveryFailed, msg)
	}
}

// StatusResponse is the discovery status body.
type StatusResponse struct {
	Status           string            `json:"status"`
	APIKeyConfigured bool              `json:"apiKeyConfigured"`
	DiscoveryEnabled bool              `json:"discoveryEnabled"`
	CacheStats       models.CacheStats `json:"cacheStats"`
}

// DiscoveryStatus handles GET /api/v1/discovery/status. When a key is
// configured the provider is probed with a reference-act lookup, so
// "ok" means verified end to end, not just configured.
func (h *Handler) DiscoveryStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		APIKeyConfigured: h.provider.IsConfigured(),
		DiscoveryEnabled: h.cfg.Discovery.Enabled,
		CacheStats:       h.provider.CacheStats(),
	}

	switch {
	case !resp.APIKeyConfigured:
		resp.Status = "not-configured"
	default:
		ctx, cancel := context.WithTimeout(r.Context(), statusProbeTimeout)
		defer cancel()
		if err := h.provider.VerifyConnectivity(ctx); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("provider connectivity probe failed")
			resp.Status = "degraded"
		} else {
			resp.Status = "ok"
		}
	}

	NewResponseWriter(w, r).writeJSON(http.StatusOK, resp)
}

// ClearCache handles POST /api/v1/discovery/clear-cache.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := h.provider.ClearCache(); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("cache clear failed")
		rw.InternalError("failed to clear cache")
		return
	}
	logging.Ctx(r.Context()).Info().Msg("provider response cache cleared")
	rw.Success(map[string]bool{"cleared": true})
}

// DemoData handles GET /api/v1/discovery/demo-data: a discovery run over
// a fixed two-month window against the synthetic demo source.
func (h *Handler) DemoData(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q := r.URL.Query()
	venueID, err := parseInt64Param(q.Get("venueId"), "venueId")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	radius, err := parseFloatParam(q.Get("radius"), "radius")
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	req := discovery.Request{
		VenueID:     venueID,
		StartDate:   start,
		EndDate:     start.AddDate(0, demoWindowMonths, 0),
		RadiusMiles: radius,
		Genres:      parseCSVParam(q.Get("genres")),
		UseDemo:     true,
	}

	outcome, err := h.runner.Discover(r.Context(), req)
	if err != nil {
		writeDiscoveryError(rw, err)
		return
	}
	rw.Discovery(outcome)
}
