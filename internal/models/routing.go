// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package models

import "time"

// RouteStop is one anchor point of a routing opportunity: the show the
// act plays before (origin) or after (destination) a potential stop at
// the target venue.
type RouteStop struct {
	City      string    `json:"city"`
	State     string    `json:"state"`
	Date      time.Time `json:"date"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// RouteAnalysis is the best-fit opportunity found for one act.
//
// Destination is nil only in the single-event scenario, where the act has
// exactly one show in the window and the detour is modeled as a flat
// round trip from that show.
//
// DistanceToVenue and DetourDistance are miles, rounded to whole numbers.
// DaysAvailable is always >= 1 when an analysis exists. RoutingScore is
// comparable across acts; lower is better.
type RouteAnalysis struct {
	Origin          *RouteStop `json:"origin"`
	Destination     *RouteStop `json:"destination"`
	DistanceToVenue float64    `json:"distance_to_venue"`
	DetourDistance  float64    `json:"detour_distance"`
	DaysAvailable   int        `json:"days_available"`
	RoutingScore    float64    `json:"routing_score"`
}
