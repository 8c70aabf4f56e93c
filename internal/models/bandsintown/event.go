// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package bandsintown

// Event is the provider's event record. Datetime is a local ISO 8601
// string without zone ("2026-04-17T19:00:00"); Venue.Latitude and
// Venue.Longitude are decimal strings and may be empty.
type Event struct {
	ID             string   `json:"id"`
	ArtistID       string   `json:"artist_id"`
	URL            string   `json:"url"`
	OnSaleDatetime string   `json:"on_sale_datetime"`
	Datetime       string   `json:"datetime"`
	Venue          Venue    `json:"venue"`
	Offers         []Offer  `json:"offers"`
	Lineup         []string `json:"lineup"`
}

// Venue is the venue sub-record of a provider event.
type Venue struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Offer is a ticket offer attached to a provider event.
type Offer struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Status string `json:"status"`
}
