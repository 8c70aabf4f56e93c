// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package venues resolves venue records for discovery runs. The venue
// record store proper is an external system; this package defines the
// lookup seam and ships a static config-backed implementation for
// standalone operation.
package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/gigradar/internal/config"
	"github.com/tomtom215/gigradar/internal/models"
)

// ErrVenueNotFound indicates no venue exists for the requested ID.
var ErrVenueNotFound = errors.New("venue not found")

// Lookup resolves venues by ID.
type Lookup interface {
	VenueByID(ctx context.Context, id int64) (*models.Venue, error)
}

// StaticLookup serves venues from the configured venue list. The map is
// built once at construction and never mutated, so it is safe for
// concurrent use.
type StaticLookup struct {
	byID map[int64]models.Venue
}

// NewStaticLookup builds a lookup over the configured venues.
func NewStaticLookup(cfgs []config.VenueConfig) *StaticLookup {
	byID := make(map[int64]models.Venue, len(cfgs))
	for _, v := range cfgs {
		byID[v.ID] = models.Venue{
			ID:        v.ID,
			Name:      v.Name,
			City:      v.City,
			State:     v.State,
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		}
	}
	return &StaticLookup{byID: byID}
}

// VenueByID returns the venue with the given ID, or ErrVenueNotFound.
func (l *StaticLookup) VenueByID(_ context.Context, id int64) (*models.Venue, error) {
	v, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVenueNotFound, id)
	}
	venue := v
	return &venue, nil
}

// Count returns the number of configured venues.
func (l *StaticLookup) Count() int {
	return len(l.byID)
}
