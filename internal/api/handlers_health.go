// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package api

import (
	"net/http"
	"time"
)

var startTime = time.Now()

// HealthResponse is the health endpoint body.
type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Version       string `json:"version,omitempty"`
}

// Version is set at build time via ldflags.
var Version = "dev"

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).writeJSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
		Version:       Version,
	})
}

// HealthLive handles GET /api/v1/health/live. Liveness means the
// process is serving requests; it never depends on the provider.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).writeJSON(http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. The server is ready as
// soon as configuration is loaded; a missing provider key degrades
// discovery but does not make the process unready.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).writeJSON(http.StatusOK, map[string]interface{}{
		"status":             "ready",
		"api_key_configured": h.provider.IsConfigured(),
	})
}
