// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package routing finds, for one act's chronologically sorted event list
// and a target venue, the single best opportunity to insert a show:
// either a lone nearby date or a gap between two consecutive shows that
// could absorb a detour to the venue.
package routing

import (
	"math"

	"github.com/tomtom215/gigradar/internal/geo"
	"github.com/tomtom215/gigradar/internal/models"
	"github.com/tomtom215/gigradar/internal/scoring"
)

// Analyzer computes route analyses against a fixed target venue.
type Analyzer struct {
	venueLat float64
	venueLon float64
}

// NewAnalyzer creates an analyzer for the given venue coordinates.
func NewAnalyzer(venueLat, venueLon float64) *Analyzer {
	return &Analyzer{venueLat: venueLat, venueLon: venueLon}
}

// Analyze returns the minimum-score opportunity across the single-event
// case and every qualifying consecutive-event pair, or ok=false when
// nothing passes the effective radius.
//
// PRECONDITION: events must be sorted ascending by datetime. The
// orchestrator sorts once per act before calling; the analyzer does not
// re-sort.
func (a *Analyzer) Analyze(events []models.Event, effectiveRadiusMiles float64) (*models.RouteAnalysis, bool) {
	if len(events) == 0 {
		return nil, false
	}

	if len(events) == 1 {
		return a.analyzeSingleEvent(&events[0], effectiveRadiusMiles)
	}

	var best *models.RouteAnalysis
	for i := 0; i < len(events)-1; i++ {
		analysis := a.analyzePair(&events[i], &events[i+1], effectiveRadiusMiles)
		if analysis == nil {
			continue
		}
		if best == nil || analysis.RoutingScore < best.RoutingScore {
			best = analysis
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

// analyzeSingleEvent handles the lone-show scenario. The detour is
// modeled as a flat round trip (2x the venue distance) because the act's
// prior and next legs are unknown. This undercounts detour cost for acts
// whose itinerary continues elsewhere; it is a deliberate modeling
// approximation, not a bug to fix locally.
func (a *Analyzer) analyzeSingleEvent(event *models.Event, effectiveRadiusMiles float64) (*models.RouteAnalysis, bool) {
	if !event.Venue.HasCoordinates() {
		return nil, false
	}

	distance := geo.MilesBetween(a.venueLat, a.venueLon, event.Venue.Latitude, event.Venue.Longitude)
	if distance > effectiveRadiusMiles {
		return nil, false
	}

	const daysAvailable = 1
	detour := 2 * distance

	return &models.RouteAnalysis{
		Origin:          stopFromEvent(event),
		Destination:     nil,
		DistanceToVenue: math.Round(distance),
		DetourDistance:  math.Round(detour),
		DaysAvailable:   daysAvailable,
		RoutingScore:    scoring.Score(distance, detour, daysAvailable),
	}, true
}

// analyzePair evaluates inserting the venue between two consecutive
// shows. Returns nil when the pair cannot host a stop: no free day,
// missing coordinates, or the venue is outside the effective radius.
func (a *Analyzer) analyzePair(from, to *models.Event, effectiveRadiusMiles float64) *models.RouteAnalysis {
	daysBetween := int(math.Floor(to.Datetime.Sub(from.Datetime).Hours() / 24))
	if daysBetween < 1 {
		return nil
	}

	if !from.Venue.HasCoordinates() || !to.Venue.HasCoordinates() {
		return nil
	}

	distFrom := geo.MilesBetween(a.venueLat, a.venueLon, from.Venue.Latitude, from.Venue.Longitude)
	distTo := geo.MilesBetween(a.venueLat, a.venueLon, to.Venue.Latitude, to.Venue.Longitude)
	distanceToVenue := math.Min(distFrom, distTo)
	if distanceToVenue > effectiveRadiusMiles {
		return nil
	}

	directDistance := geo.MilesBetween(
		from.Venue.Latitude, from.Venue.Longitude,
		to.Venue.Latitude, to.Venue.Longitude,
	)
	detourDistance := distFrom + distTo
	extraDistance := detourDistance - directDistance

	return &models.RouteAnalysis{
		Origin:          stopFromEvent(from),
		Destination:     stopFromEvent(to),
		DistanceToVenue: math.Round(distanceToVenue),
		DetourDistance:  math.Round(extraDistance),
		DaysAvailable:   daysBetween,
		RoutingScore:    scoring.Score(distanceToVenue, extraDistance, daysBetween),
	}
}

func stopFromEvent(event *models.Event) *models.RouteStop {
	return &models.RouteStop{
		City:      event.Venue.City,
		State:     event.Venue.Region,
		Date:      event.Datetime,
		Latitude:  event.Venue.Latitude,
		Longitude: event.Venue.Longitude,
	}
}
