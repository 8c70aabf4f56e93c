// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package geo provides pure distance, bounding-box, and route-ordering
// functions over latitude/longitude coordinates.
//
// Two unit conventions exist side by side: routing math is denominated in
// miles (EarthRadiusMiles), cluster/region utilities in kilometers
// (EarthRadiusKm). The two are never mixed inside one computation; every
// function name states its unit.
package geo

import "math"

const (
	// EarthRadiusMiles is the mean Earth radius used for mile-denominated
	// routing distances.
	EarthRadiusMiles = 3958.8

	// EarthRadiusKm is the mean Earth radius used for the
	// kilometer-denominated cluster/region utilities.
	EarthRadiusKm = 6371.0

	// Degree-to-kilometer approximations for bounding boxes.
	kmPerDegreeLat = 110.574
	kmPerDegreeLon = 111.320
)

// Point is a latitude/longitude coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// haversine returns the central angle between two coordinates.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// MilesBetween returns the great-circle distance in miles between two
// coordinates using the haversine formula.
func MilesBetween(lat1, lon1, lat2, lon2 float64) float64 {
	return EarthRadiusMiles * haversine(lat1, lon1, lat2, lon2)
}

// KilometersBetween returns the great-circle distance in kilometers
// between two coordinates using the haversine formula.
func KilometersBetween(lat1, lon1, lat2, lon2 float64) float64 {
	return EarthRadiusKm * haversine(lat1, lon1, lat2, lon2)
}

// BoundingBox is a lat/lon rectangle around a center point.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundingBoxAround returns the bounding box covering radiusKm around a
// center point, using the standard 110.574 km/degree-latitude and
// 111.320*cos(lat) km/degree-longitude approximations. Near the poles the
// longitude delta degenerates; callers clamp or reject polar centers.
func BoundingBoxAround(centerLat, centerLon, radiusKm float64) BoundingBox {
	latDelta := radiusKm / kmPerDegreeLat
	lonDelta := radiusKm / (kmPerDegreeLon * math.Cos(degToRad(centerLat)))

	return BoundingBox{
		MinLat: centerLat - latDelta,
		MaxLat: centerLat + latDelta,
		MinLon: centerLon - lonDelta,
		MaxLon: centerLon + lonDelta,
	}
}

// Contains reports whether a point lies inside the box.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// NearestNeighborOrder reorders points into a route using the greedy
// nearest-neighbor heuristic: start from points[0], then repeatedly
// append the closest not-yet-visited point.
//
// This is a tour-construction heuristic, not an optimal TSP solver. It is
// O(n^2), deterministic given input order, and can be arbitrarily
// suboptimal on adversarial inputs; for the short tour legs the pipeline
// deals in it is well within tolerance. The input slice is not modified.
func NearestNeighborOrder(points []Point) []Point {
	if len(points) <= 1 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	remaining := make([]Point, len(points))
	copy(remaining, points)

	route := make([]Point, 0, len(points))
	route = append(route, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		last := route[len(route)-1]
		best := 0
		bestDist := MilesBetween(last.Lat, last.Lon, remaining[0].Lat, remaining[0].Lon)
		for i := 1; i < len(remaining); i++ {
			d := MilesBetween(last.Lat, last.Lon, remaining[i].Lat, remaining[i].Lon)
			if d < bestDist {
				best = i
				bestDist = d
			}
		}
		route = append(route, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return route
}

// TotalRouteMiles returns the sum of consecutive-pair distances in miles
// along an ordered route. Routes with fewer than 2 points have length 0.
func TotalRouteMiles(points []Point) float64 {
	return totalRoute(points, MilesBetween)
}

// TotalRouteKilometers returns the sum of consecutive-pair distances in
// kilometers along an ordered route.
func TotalRouteKilometers(points []Point) float64 {
	return totalRoute(points, KilometersBetween)
}

func totalRoute(points []Point, dist func(lat1, lon1, lat2, lon2 float64) float64) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += dist(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)
	}
	return total
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
