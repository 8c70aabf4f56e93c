// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package routing

import (
	"math"
	"testing"
	"time"

	"github.com/tomtom215/gigradar/internal/geo"
	"github.com/tomtom215/gigradar/internal/models"
)

func eventAt(lat, lon float64, day int) models.Event {
	base := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	return models.Event{
		Datetime: base.AddDate(0, 0, day),
		Venue: models.EventVenue{
			Name:      "Test Hall",
			City:      "Testville",
			Region:    "IL",
			Country:   "United States",
			Latitude:  lat,
			Longitude: lon,
		},
	}
}

func TestAnalyze_WorkedPairExample(t *testing.T) {
	t.Parallel()

	// Venue at (40, -87); shows at (40, -88) on day 0 and (40, -86) on
	// day 3. The construction is symmetric: both shows are one degree of
	// longitude from the venue.
	analyzer := NewAnalyzer(40.0, -87.0)
	events := []models.Event{
		eventAt(40.0, -88.0, 0),
		eventAt(40.0, -86.0, 3),
	}

	analysis, ok := analyzer.Analyze(events, 200)
	if !ok {
		t.Fatal("Analyze() found no opportunity, want one")
	}

	if analysis.DaysAvailable != 3 {
		t.Errorf("DaysAvailable = %d, want 3", analysis.DaysAvailable)
	}
	if analysis.Destination == nil {
		t.Fatal("Destination = nil, want the day-3 show")
	}
	if analysis.Origin.Date.After(analysis.Destination.Date) {
		t.Error("origin must precede destination")
	}

	perDegree := geo.MilesBetween(40.0, -87.0, 40.0, -88.0)
	if math.Abs(analysis.DistanceToVenue-math.Round(perDegree)) > 0.5 {
		t.Errorf("DistanceToVenue = %f, want ~%f", analysis.DistanceToVenue, perDegree)
	}

	// The venue lies on the great-circle path between the two shows, so
	// the extra detour is ~0 miles.
	direct := geo.MilesBetween(40.0, -88.0, 40.0, -86.0)
	detour := geo.MilesBetween(40.0, -88.0, 40.0, -87.0) + geo.MilesBetween(40.0, -87.0, 40.0, -86.0)
	wantExtra := math.Round(detour - direct)
	if analysis.DetourDistance != wantExtra {
		t.Errorf("DetourDistance = %f, want %f", analysis.DetourDistance, wantExtra)
	}
}

func TestAnalyze_SingleEvent(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(40.0, -87.0)
	events := []models.Event{eventAt(40.0, -87.5, 0)}

	analysis, ok := analyzer.Analyze(events, 50)
	if !ok {
		t.Fatal("Analyze() found no opportunity for a nearby single show")
	}

	if analysis.Destination != nil {
		t.Errorf("Destination = %+v, want nil in the single-event case", analysis.Destination)
	}
	if analysis.DaysAvailable != 1 {
		t.Errorf("DaysAvailable = %d, want 1", analysis.DaysAvailable)
	}

	// Round trip: detour is twice the venue distance.
	if math.Abs(analysis.DetourDistance-2*analysis.DistanceToVenue) > 1 {
		t.Errorf("DetourDistance = %f, want ~2x DistanceToVenue (%f)",
			analysis.DetourDistance, analysis.DistanceToVenue)
	}
}

func TestAnalyze_SingleEventOutsideRadius(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(40.0, -87.0)
	events := []models.Event{eventAt(34.0522, -118.2437, 0)} // ~1,750 mi away

	if _, ok := analyzer.Analyze(events, 50); ok {
		t.Error("Analyze() returned an opportunity outside the radius")
	}
}

func TestAnalyze_SkipsSameDayPairs(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(40.0, -87.0)
	events := []models.Event{
		eventAt(40.0, -88.0, 0),
		eventAt(40.0, -86.0, 0), // same day: no time to insert a show
	}

	if _, ok := analyzer.Analyze(events, 200); ok {
		t.Error("Analyze() accepted a pair with zero days between shows")
	}
}

func TestAnalyze_SkipsPairsWithoutCoordinates(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(40.0, -87.0)
	noCoords := eventAt(0, 0, 0)
	events := []models.Event{
		noCoords,
		eventAt(40.0, -86.0, 3),
	}

	if _, ok := analyzer.Analyze(events, 200); ok {
		t.Error("Analyze() accepted a pair with an uncoordinated event")
	}
}

func TestAnalyze_DistanceFilterUsesNearerEnd(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(40.0, -87.0)
	events := []models.Event{
		eventAt(40.0, -87.2, 0),         // ~10 mi from venue
		eventAt(34.0522, -118.2437, 4),  // ~1,750 mi from venue
	}

	// min(10, 1750) passes a 50 mile radius even though the far end fails.
	analysis, ok := analyzer.Analyze(events, 50)
	if !ok {
		t.Fatal("Analyze() should pass the filter on the nearer end of the pair")
	}
	if analysis.DistanceToVenue > 50 {
		t.Errorf("DistanceToVenue = %f, want the nearer end (<= 50)", analysis.DistanceToVenue)
	}
}

func TestAnalyze_RetainsMinimumScore(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(40.0, -87.0)

	// Three shows make two pairs. The second pair has a 2-day gap and
	// nearly on-route geometry; the first has a 6-day gap. The 2-day pair
	// must win.
	events := []models.Event{
		eventAt(41.0, -90.0, 0),
		eventAt(40.0, -88.0, 6),
		eventAt(40.0, -86.0, 8),
	}

	analysis, ok := analyzer.Analyze(events, 300)
	if !ok {
		t.Fatal("Analyze() found no opportunity")
	}
	if analysis.DaysAvailable != 2 {
		t.Errorf("DaysAvailable = %d, want the 2-day gap to win", analysis.DaysAvailable)
	}
}

func TestAnalyze_NoEvents(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(40.0, -87.0)
	if _, ok := analyzer.Analyze(nil, 200); ok {
		t.Error("Analyze(nil) returned an opportunity")
	}
}
