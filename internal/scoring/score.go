// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package scoring converts the three raw routing signals - distance to
// venue, extra detour distance, and days available between shows - into
// a single comparable score. Lower is better.
//
// The weights and the days-penalty breakpoints are product-tuned
// constants with no derivation; they are preserved verbatim and any
// change to them is a product decision, not a refactor.
package scoring

// Penalty weights.
const (
	distanceWeight = 1.5
	detourWeight   = 1.2
	daysWeight     = 0.8
)

// Penalty scale anchors.
const (
	// maxPenalty is the clamp ceiling for each penalty component.
	maxPenalty = 100.0

	// distanceFullPenaltyMiles is the distance at which the distance
	// penalty reaches its ceiling.
	distanceFullPenaltyMiles = 200.0

	// detourCapMiles bounds the acceptable-detour window regardless of
	// how far the venue is.
	detourCapMiles = 200.0
)

// Score produces the routing score for one opportunity. All three
// components are independently monotone non-decreasing in their inputs,
// so a strictly worse opportunity never outranks a better one.
//
// daysAvailable is expected to be >= 1 (the route analyzer skips pairs
// without a free day); values <= 0 take the worst-case days penalty.
func Score(distanceToVenueMiles, extraDetourMiles float64, daysAvailable int) float64 {
	return distanceWeight*distancePenalty(distanceToVenueMiles) +
		detourWeight*detourPenalty(distanceToVenueMiles, extraDetourMiles) +
		daysWeight*daysPenalty(daysAvailable)
}

// distancePenalty scales linearly from 0 at distance 0 to 100 at 200
// miles, clamped at 100 beyond.
func distancePenalty(miles float64) float64 {
	if miles <= 0 {
		return 0
	}
	p := miles / distanceFullPenaltyMiles * maxPenalty
	if p > maxPenalty {
		return maxPenalty
	}
	return p
}

// detourPenalty scales the extra detour against what is acceptable for
// this venue distance: a detour up to 2x the venue distance (capped at
// 200 miles) is graded linearly; anything beyond takes the full penalty.
func detourPenalty(distanceToVenueMiles, extraDetourMiles float64) float64 {
	if extraDetourMiles <= 0 {
		return 0
	}

	maxAcceptable := 2 * distanceToVenueMiles
	if maxAcceptable > detourCapMiles {
		maxAcceptable = detourCapMiles
	}
	if maxAcceptable <= 0 {
		return maxPenalty
	}

	p := extraDetourMiles / maxAcceptable * maxPenalty
	if p > maxPenalty {
		return maxPenalty
	}
	return p
}

// daysPenalty is a hand-tuned step function over the integer number of
// days between the surrounding shows. Two days is the sweet spot: enough
// time to travel and load in, not enough to go cold.
func daysPenalty(days int) float64 {
	switch {
	case days == 2:
		return 0
	case days == 1 || days == 3:
		return 10
	case days == 4:
		return 30
	case days == 5:
		return 50
	case days > 5:
		return 50 + 10*float64(days-5)
	default:
		// days <= 0 should not occur given the analyzer's >= 1 precondition.
		return maxPenalty
	}
}
