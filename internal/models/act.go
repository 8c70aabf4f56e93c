// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package models

// ActProfile is an act's external identity plus its fetched event
// sequence. The profile is assembled by the events-API client; the
// Events slice holds whatever fell inside the query window.
type ActProfile struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ImageURL           string  `json:"image_url,omitempty"`
	URL                string  `json:"url,omitempty"`
	UpcomingEventCount int     `json:"upcoming_event_count"`
	Events             []Event `json:"events"`
}
