// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package metrics registers the Prometheus instrumentation for GigRadar:
// events-provider client behavior (requests, retries, cache efficiency,
// circuit breaker state), discovery run outcomes, and HTTP endpoint
// latency/throughput.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Provider client metrics.
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total requests to the events provider by resource and outcome",
		},
		[]string{"resource", "outcome"}, // outcome: "success", "not_found", "error"
	)

	ProviderRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_retries_total",
			Help: "Total provider request retries by failure classification",
		},
		[]string{"class"}, // "rate_limited", "transient"
	)

	// Response cache metrics.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Total provider response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Total provider response cache misses",
		},
	)

	// Circuit breaker state: 0 = closed, 1 = half-open, 2 = open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Discovery pipeline metrics.
	DiscoveryRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_runs_total",
			Help: "Total discovery runs by outcome",
		},
		[]string{"outcome"}, // "success", "error"
	)

	DiscoveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_run_duration_seconds",
			Help:    "Wall-clock duration of discovery runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	DiscoveryCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_candidates_queried",
			Help:    "Number of candidate acts queried per discovery run",
			Buckets: []float64{10, 25, 50, 100, 250, 500},
		},
	)

	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the active-request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDiscoveryRun records the outcome and duration of one discovery run.
func RecordDiscoveryRun(err error, duration time.Duration, candidates int) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	DiscoveryRuns.WithLabelValues(outcome).Inc()
	DiscoveryDuration.Observe(duration.Seconds())
	DiscoveryCandidates.Observe(float64(candidates))
}

// RecordProviderRequest records one provider call outcome.
func RecordProviderRequest(resource string, statusCode int, err error) {
	outcome := "success"
	switch {
	case statusCode == 404:
		outcome = "not_found"
	case err != nil || statusCode >= 400:
		outcome = "error"
	}
	ProviderRequests.WithLabelValues(resource, outcome).Inc()
}
