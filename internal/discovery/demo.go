// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package discovery

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/tomtom215/gigradar/internal/bandsintown"
	"github.com/tomtom215/gigradar/internal/models"
)

// demoCity is a tour stop the demo source can route acts through.
type demoCity struct {
	name   string
	region string
	lat    float64
	lon    float64
}

// demoCities spans the Midwest and nearby markets so demo tours produce
// a realistic mix of qualifying and non-qualifying routes for a venue in
// that region.
var demoCities = []demoCity{
	{"Chicago", "IL", 41.8781, -87.6298},
	{"Milwaukee", "WI", 43.0389, -87.9065},
	{"Madison", "WI", 43.0731, -89.4012},
	{"Minneapolis", "MN", 44.9778, -93.2650},
	{"Detroit", "MI", 42.3314, -83.0458},
	{"Grand Rapids", "MI", 42.9634, -85.6681},
	{"Indianapolis", "IN", 39.7684, -86.1581},
	{"Columbus", "OH", 39.9612, -82.9988},
	{"Cleveland", "OH", 41.4993, -81.6944},
	{"Cincinnati", "OH", 39.1031, -84.5120},
	{"St. Louis", "MO", 38.6270, -90.1994},
	{"Kansas City", "MO", 39.0997, -94.5786},
	{"Nashville", "TN", 36.1627, -86.7816},
	{"Louisville", "KY", 38.2527, -85.7585},
	{"Pittsburgh", "PA", 40.4406, -79.9959},
	{"Des Moines", "IA", 41.5868, -93.6250},
	{"Omaha", "NE", 41.2565, -95.9345},
	{"Denver", "CO", 39.7392, -104.9903},
	{"Memphis", "TN", 35.1495, -90.0490},
	{"Buffalo", "NY", 42.8864, -78.8784},
}

// DemoSource generates deterministic synthetic tours. The same act name
// and window always produce the same tour, so demo responses are stable
// across requests without any persistence.
type DemoSource struct {
	batchSize int
}

// NewDemoSource creates a demo source batching like the live client.
func NewDemoSource(batchSize int) *DemoSource {
	if batchSize < 1 {
		batchSize = 3
	}
	return &DemoSource{batchSize: batchSize}
}

// GetMultipleArtistsWithEvents generates a tour per candidate. No
// network, no delays; only the batch cadence of the live client is kept
// so streaming consumers see the same frame rhythm.
func (s *DemoSource) GetMultipleArtistsWithEvents(ctx context.Context, names []string, dateFrom, dateTo time.Time, onProgress bandsintown.ProgressFunc) ([]*models.ActProfile, error) {
	total := len(names)
	results := make([]*models.ActProfile, 0, total)

	for start := 0; start < total; start += s.batchSize {
		end := start + s.batchSize
		if end > total {
			end = total
		}

		var fetched []*models.ActProfile
		for _, name := range names[start:end] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fetched = append(fetched, s.generateProfile(name, dateFrom, dateTo))
		}
		results = append(results, fetched...)

		if onProgress != nil {
			onProgress(end, total, fetched)
		}
	}

	return results, nil
}

// CacheStats reports zeros; the demo source performs no caching.
func (s *DemoSource) CacheStats() models.CacheStats {
	return models.CacheStats{}
}

// generateProfile builds a synthetic tour of 2 to 5 shows inside the
// window, seeded by the act name and window start.
func (s *DemoSource) generateProfile(name string, dateFrom, dateTo time.Time) *models.ActProfile {
	rng := rand.New(rand.NewSource(demoSeed(name, dateFrom)))

	windowDays := int(dateTo.Sub(dateFrom).Hours() / 24)
	if windowDays < 7 {
		windowDays = 7
	}

	// Roughly a third of demo acts are off the road in any window.
	if rng.Intn(3) == 0 {
		return &models.ActProfile{
			ID:     fmt.Sprintf("demo-%d", demoSeed(name, dateFrom)),
			Name:   name,
			Events: []models.Event{},
		}
	}

	eventCount := 2 + rng.Intn(4)
	day := 1 + rng.Intn(windowDays/2)
	cityIdx := rng.Intn(len(demoCities))

	events := make([]models.Event, 0, eventCount)
	for i := 0; i < eventCount && day < windowDays; i++ {
		city := demoCities[cityIdx]
		when := dateFrom.AddDate(0, 0, day).Add(time.Duration(19+rng.Intn(3)) * time.Hour)

		events = append(events, models.Event{
			ID:       fmt.Sprintf("demo-%s-%d", city.region, day),
			Datetime: when,
			Venue: models.EventVenue{
				Name:      city.name + " Music Hall",
				City:      city.name,
				Region:    city.region,
				Country:   "United States",
				Latitude:  city.lat,
				Longitude: city.lon,
			},
			Lineup: []string{name},
			Offers: []models.Offer{{Type: "Tickets", URL: "https://example.com/tickets", Status: "available"}},
		})

		// Hop to a nearby city index and leave 1 to 4 free days.
		cityIdx = (cityIdx + 1 + rng.Intn(3)) % len(demoCities)
		day += 1 + rng.Intn(4)
	}

	return &models.ActProfile{
		ID:                 fmt.Sprintf("demo-%d", demoSeed(name, dateFrom)),
		Name:               name,
		URL:                "https://example.com/acts/" + name,
		UpcomingEventCount: len(events),
		Events:             events,
	}
}

func demoSeed(name string, dateFrom time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	_, _ = h.Write([]byte(dateFrom.Format("2006-01-02")))
	return int64(h.Sum64())
}
