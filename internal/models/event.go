// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package models

import (
	"sort"
	"time"
)

// EventVenue is the venue sub-record attached to a provider event.
// It is distinct from Venue: these coordinates come from the events
// provider and may be absent for small or unresolved rooms.
type EventVenue struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasCoordinates reports whether the event venue carries a usable geolocation.
func (v *EventVenue) HasCoordinates() bool {
	return hasCoordinates(v.Latitude, v.Longitude)
}

// Offer is a ticket offer attached to an event.
type Offer struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

// Event is one show on an act's tour. Events are immutable once fetched
// from the provider and are always consumed sorted ascending by Datetime.
type Event struct {
	ID       string     `json:"id"`
	Datetime time.Time  `json:"datetime"`
	Venue    EventVenue `json:"venue"`
	Lineup   []string   `json:"lineup"`
	Offers   []Offer    `json:"offers"`
}

// SortEventsByDate sorts events ascending by datetime in place.
// The route analyzer requires pre-sorted input; the orchestrator calls
// this once per act before analysis.
func SortEventsByDate(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Datetime.Before(events[j].Datetime)
	})
}
