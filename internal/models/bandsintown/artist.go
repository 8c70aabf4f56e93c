// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package bandsintown defines the wire-format types for the Bandsintown
// public API. These mirror the provider's JSON shapes exactly; the
// client converts them into the internal models before anything else
// sees them.
package bandsintown

// Artist is the provider's artist record.
//
// UpcomingEventCount is -1 when the provider does not know the count,
// which the client normalizes to 0.
type Artist struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	URL                string `json:"url"`
	ImageURL           string `json:"image_url"`
	ThumbURL           string `json:"thumb_url"`
	FacebookPageURL    string `json:"facebook_page_url"`
	TrackerCount       int    `json:"tracker_count"`
	UpcomingEventCount int    `json:"upcoming_event_count"`
}
