// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package discovery orchestrates a discovery run: resolve the target
// venue, select candidate acts, batch-fetch their events, run the
// routing analysis, and rank the qualifying acts by routing score.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/gigradar/internal/bandsintown"
	"github.com/tomtom215/gigradar/internal/candidates"
	"github.com/tomtom215/gigradar/internal/config"
	"github.com/tomtom215/gigradar/internal/logging"
	"github.com/tomtom215/gigradar/internal/metrics"
	"github.com/tomtom215/gigradar/internal/models"
	"github.com/tomtom215/gigradar/internal/routing"
	"github.com/tomtom215/gigradar/internal/venues"
)

// ErrMissingCoordinates indicates the target venue has no usable
// geolocation, so no routing analysis is possible.
var ErrMissingCoordinates = errors.New("venue has no coordinates")

// EventSource fetches act profiles with events. The live implementation
// is the bandsintown client; the demo source generates synthetic tours.
type EventSource interface {
	GetMultipleArtistsWithEvents(ctx context.Context, names []string, dateFrom, dateTo time.Time, onProgress bandsintown.ProgressFunc) ([]*models.ActProfile, error)
	CacheStats() models.CacheStats
}

// Sink receives stream frames during a streaming discovery run.
// Emission is best-effort: a failing sink is logged, never fatal.
type Sink interface {
	Emit(frame *models.StreamFrame) error
}

// Request is one discovery run's parameters. Zero values fall back to
// the configured defaults.
type Request struct {
	VenueID       int64
	StartDate     time.Time
	EndDate       time.Time
	RadiusMiles   float64
	Genres        []string
	MaxBands      int
	MaxDistance   float64
	LookAheadDays int
	UseDemo       bool
}

// Discoverer runs the discovery pipeline.
type Discoverer struct {
	cfg        config.DiscoveryConfig
	candidates *candidates.Source
	venues     venues.Lookup
	live       EventSource
	demo       EventSource

	// actByName enriches results with curated pool metadata.
	actByName map[string]candidates.Act
}

// New creates a discoverer. demo may be nil when demo mode is disabled.
func New(cfg config.DiscoveryConfig, src *candidates.Source, lookup venues.Lookup, live, demo EventSource) *Discoverer {
	actByName := make(map[string]candidates.Act)
	for _, act := range src.Pool() {
		actByName[strings.ToLower(act.Name)] = act
	}
	return &Discoverer{
		cfg:        cfg,
		candidates: src,
		venues:     lookup,
		live:       live,
		demo:       demo,
		actByName:  actByName,
	}
}

// Discover runs the pipeline and returns the assembled outcome.
func (d *Discoverer) Discover(ctx context.Context, req Request) (*models.DiscoveryOutcome, error) {
	return d.run(ctx, req, nil)
}

// DiscoverStream runs the pipeline while emitting in-progress frames to
// the sink, then a terminal complete or error frame. The returned error
// mirrors the error frame for the caller's logging.
func (d *Discoverer) DiscoverStream(ctx context.Context, req Request, sink Sink) error {
	outcome, err := d.run(ctx, req, sink)
	if err != nil {
		d.emit(sink, &models.StreamFrame{
			Status:  models.StreamError,
			Message: PublicMessage(err),
		})
		return err
	}

	d.emit(sink, &models.StreamFrame{
		Status:  models.StreamComplete,
		Results: outcome.Results,
		Stats:   &outcome.Stats,
		Venue:   &outcome.Venue,
	})
	return nil
}

func (d *Discoverer) run(ctx context.Context, req Request, sink Sink) (*models.DiscoveryOutcome, error) {
	start := time.Now()

	venue, err := d.venues.VenueByID(ctx, req.VenueID)
	if err != nil {
		metrics.RecordDiscoveryRun(err, time.Since(start), 0)
		return nil, err
	}
	if !venue.HasCoordinates() {
		err := fmt.Errorf("%w: venue %d (%s)", ErrMissingCoordinates, venue.ID, venue.Name)
		metrics.RecordDiscoveryRun(err, time.Since(start), 0)
		return nil, err
	}

	radius := req.RadiusMiles
	if radius <= 0 {
		radius = d.cfg.DefaultRadius
	}
	maxBands := req.MaxBands
	if maxBands <= 0 {
		maxBands = d.cfg.MaxBands
	}
	lookAhead := req.LookAheadDays
	if lookAhead <= 0 {
		lookAhead = d.cfg.LookAheadDays
	}

	// The effective radius widens to MaxDistance when the caller accepts
	// results farther out than the base search radius.
	effectiveRadius := radius
	if req.MaxDistance > effectiveRadius {
		effectiveRadius = req.MaxDistance
	}

	// Acts touring past the requested window can still route through: a
	// show shortly after endDate anchors a gap that overlaps the window.
	extendedEnd := req.EndDate.AddDate(0, 0, lookAhead)

	names := d.candidates.Candidates(d.cfg.CandidateLimit, req.Genres)
	analyzer := routing.NewAnalyzer(venue.Latitude, venue.Longitude)

	source := d.live
	if req.UseDemo && d.demo != nil {
		source = d.demo
	}

	log := logging.Ctx(ctx)
	log.Info().
		Int64("venue_id", venue.ID).
		Str("venue", venue.Name).
		Int("candidates", len(names)).
		Float64("effective_radius", effectiveRadius).
		Bool("demo", source == d.demo && req.UseDemo).
		Msg("discovery run started")

	var (
		results []models.DiscoveryResult
		stats   = models.DiscoveryStats{ArtistsQueried: len(names)}
	)

	onProgress := func(completed, total int, fetched []*models.ActProfile) {
		var fresh []models.DiscoveryResult
		for _, profile := range fetched {
			if len(profile.Events) == 0 {
				continue
			}
			stats.ArtistsWithEvents++
			stats.TotalEvents += len(profile.Events)

			models.SortEventsByDate(profile.Events)
			analysis, ok := analyzer.Analyze(profile.Events, effectiveRadius)
			if !ok {
				continue
			}
			stats.ArtistsPassingFilter++
			fresh = append(fresh, d.buildResult(profile, analysis))
		}
		results = append(results, fresh...)

		log.Debug().
			Int("completed", completed).
			Int("total", total).
			Int("qualifying", len(fresh)).
			Msg("discovery batch processed")

		if sink != nil && len(fresh) > 0 {
			d.emit(sink, &models.StreamFrame{
				Status:  models.StreamInProgress,
				Results: fresh,
			})
		}
	}

	if _, err := source.GetMultipleArtistsWithEvents(ctx, names, req.StartDate, extendedEnd, onProgress); err != nil {
		metrics.RecordDiscoveryRun(err, time.Since(start), len(names))
		return nil, fmt.Errorf("candidate fetch failed: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RouteAnalysis.RoutingScore < results[j].RouteAnalysis.RoutingScore
	})
	if len(results) > maxBands {
		results = results[:maxBands]
	}

	elapsed := time.Since(start)
	stats.ElapsedMs = elapsed.Milliseconds()
	stats.Cache = source.CacheStats()
	metrics.RecordDiscoveryRun(nil, elapsed, len(names))

	log.Info().
		Int("results", len(results)).
		Int("artists_with_events", stats.ArtistsWithEvents).
		Int("artists_passing_filter", stats.ArtistsPassingFilter).
		Dur("elapsed", elapsed).
		Msg("discovery run complete")

	return &models.DiscoveryOutcome{
		Results: results,
		Venue:   *venue,
		Stats:   stats,
	}, nil
}

// buildResult assembles one ranked result, enriched with curated pool
// metadata when the act is in the pool.
func (d *Discoverer) buildResult(profile *models.ActProfile, analysis *models.RouteAnalysis) models.DiscoveryResult {
	result := models.DiscoveryResult{
		Name:               profile.Name,
		ImageURL:           profile.ImageURL,
		URL:                profile.URL,
		UpcomingEventCount: profile.UpcomingEventCount,
		RouteAnalysis:      *analysis,
		Events:             profile.Events,
		ActID:              profile.ID,
	}

	if act, ok := d.actByName[strings.ToLower(profile.Name)]; ok {
		result.Genre = strings.Join(act.Genres, ", ")
		result.Website = act.Website
		if act.Draw > 0 {
			result.DrawSize = "~" + strconv.Itoa(act.Draw)
		}
	}
	return result
}

func (d *Discoverer) emit(sink Sink, frame *models.StreamFrame) {
	if err := sink.Emit(frame); err != nil {
		logging.Warn().Err(err).Str("status", frame.Status).Msg("stream sink emit failed")
	}
}

// PublicMessage maps a discovery error to the message exposed to API
// clients. Venue and configuration failures are named; everything else
// collapses to a generic message so provider internals never leak.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, venues.ErrVenueNotFound):
		return "venue not found"
	case errors.Is(err, ErrMissingCoordinates):
		return "venue has no coordinates"
	case errors.Is(err, bandsintown.ErrNotConfigured):
		return "events provider API key is not configured"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "discovery canceled"
	default:
		return "discovery process failed"
	}
}
