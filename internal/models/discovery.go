// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package models

// DiscoveryResult is one ranked opportunity: an act whose routing
// analysis passed the distance filter for the target venue.
type DiscoveryResult struct {
	Name               string        `json:"name"`
	ImageURL           string        `json:"image_url,omitempty"`
	URL                string        `json:"url,omitempty"`
	UpcomingEventCount int           `json:"upcoming_event_count"`
	RouteAnalysis      RouteAnalysis `json:"route_analysis"`
	Events             []Event       `json:"events"`

	// Optional enrichment from the curated candidate list.
	Genre    string `json:"genre,omitempty"`
	ActID    string `json:"act_id,omitempty"`
	DrawSize string `json:"draw_size,omitempty"`
	Website  string `json:"website,omitempty"`
}

// CacheStats reports the process-wide response cache counters.
type CacheStats struct {
	Keys   int    `json:"keys"`
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// DiscoveryStats summarizes one discovery run.
type DiscoveryStats struct {
	ArtistsQueried       int        `json:"artists_queried"`
	ArtistsWithEvents    int        `json:"artists_with_events"`
	ArtistsPassingFilter int        `json:"artists_passing_filter"`
	TotalEvents          int        `json:"total_events"`
	ElapsedMs            int64      `json:"elapsed_ms"`
	Cache                CacheStats `json:"cache"`
}

// DiscoveryOutcome is the assembled output of one discovery run:
// the ranked result list, the resolved venue, and run statistics.
type DiscoveryOutcome struct {
	Results []DiscoveryResult `json:"results"`
	Venue   Venue             `json:"venue"`
	Stats   DiscoveryStats    `json:"stats"`
}

// Stream frame statuses for the NDJSON discovery stream.
const (
	StreamInProgress = "in-progress"
	StreamComplete   = "complete"
	StreamError      = "error"
)

// StreamFrame is one newline-delimited JSON object on the discovery
// stream. In-progress frames carry only Results; the terminal frame is
// either a complete frame (Results, Stats, Venue) or an error frame
// (Message).
type StreamFrame struct {
	Status  string            `json:"status"`
	Results []DiscoveryResult `json:"results,omitempty"`
	Stats   *DiscoveryStats   `json:"stats,omitempty"`
	Venue   *Venue            `json:"venue,omitempty"`
	Message string            `json:"message,omitempty"`
}
