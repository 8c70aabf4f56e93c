// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package venues

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/gigradar/internal/config"
)

func TestStaticLookup(t *testing.T) {
	t.Parallel()

	lookup := NewStaticLookup([]config.VenueConfig{
		{ID: 1, Name: "Thalia Hall", City: "Chicago", State: "IL", Latitude: 41.8577, Longitude: -87.6553},
		{ID: 2, Name: "The Vogue", City: "Indianapolis", State: "IN", Latitude: 39.8283, Longitude: -86.1456},
	})

	if lookup.Count() != 2 {
		t.Errorf("Count() = %d, want 2", lookup.Count())
	}

	venue, err := lookup.VenueByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("VenueByID(1) error: %v", err)
	}
	if venue.Name != "Thalia Hall" {
		t.Errorf("Name = %q, want %q", venue.Name, "Thalia Hall")
	}
	if !venue.HasCoordinates() {
		t.Error("HasCoordinates() = false, want true")
	}

	// Returned venue is a copy; mutating it must not affect the store.
	venue.Name = "changed"
	again, err := lookup.VenueByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("VenueByID(1) second call error: %v", err)
	}
	if again.Name != "Thalia Hall" {
		t.Errorf("stored venue mutated through returned pointer: %q", again.Name)
	}
}

func TestStaticLookupNotFound(t *testing.T) {
	t.Parallel()

	lookup := NewStaticLookup(nil)
	if _, err := lookup.VenueByID(context.Background(), 99); !errors.Is(err, ErrVenueNotFound) {
		t.Errorf("VenueByID(99) error = %v, want ErrVenueNotFound", err)
	}
}
