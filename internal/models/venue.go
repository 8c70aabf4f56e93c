// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package models

import "math"

// coordEpsilon is the tolerance for treating a coordinate as unset.
// Direct float equality with 0 is unreliable for IEEE 754 values, and
// (0, 0) is open ocean - no venue or show legitimately sits there.
const coordEpsilon = 1e-9

// Venue is the target venue a discovery run is performed for.
//
// Venues are owned by the external record store; the pipeline only reads
// them through the venues.Lookup collaborator. A venue without usable
// coordinates fails the discovery precondition check before any network
// activity happens.
type Venue struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasCoordinates reports whether the venue carries a usable geolocation.
func (v *Venue) HasCoordinates() bool {
	return hasCoordinates(v.Latitude, v.Longitude)
}

// hasCoordinates reports whether a lat/lon pair is usable.
// The epsilon check treats the (0, 0) null island sentinel as unset.
func hasCoordinates(lat, lon float64) bool {
	if math.Abs(lat) < coordEpsilon && math.Abs(lon) < coordEpsilon {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
