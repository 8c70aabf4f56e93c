// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package scoring

import (
	"math"
	"testing"
)

func TestScore_DistanceMonotone(t *testing.T) {
	t.Parallel()

	// For fixed detour and days, increasing distance never decreases score.
	prev := -1.0
	for d := 0.0; d <= 400; d += 5 {
		got := Score(d, 30, 2)
		if got < prev {
			t.Fatalf("score decreased at distance %f: %f < %f", d, got, prev)
		}
		prev = got
	}
}

func TestScore_DetourMonotone(t *testing.T) {
	t.Parallel()

	prev := -1.0
	for extra := 0.0; extra <= 500; extra += 5 {
		got := Score(80, extra, 2)
		if got < prev {
			t.Fatalf("score decreased at detour %f: %f < %f", extra, got, prev)
		}
		prev = got
	}
}

func TestScore_DaysOrdering(t *testing.T) {
	t.Parallel()

	// score(2 days) < score(1 day) == score(3 days) < score(4) < score(5) < score(6)
	s := func(days int) float64 { return Score(50, 20, days) }

	if !(s(2) < s(1)) {
		t.Errorf("score(2)=%f should beat score(1)=%f", s(2), s(1))
	}
	if math.Abs(s(1)-s(3)) > 1e-9 {
		t.Errorf("score(1)=%f and score(3)=%f should be equal", s(1), s(3))
	}
	if !(s(3) < s(4)) {
		t.Errorf("score(3)=%f should beat score(4)=%f", s(3), s(4))
	}
	if !(s(4) < s(5)) {
		t.Errorf("score(4)=%f should beat score(5)=%f", s(4), s(5))
	}
	if !(s(5) < s(6)) {
		t.Errorf("score(5)=%f should beat score(6)=%f", s(5), s(6))
	}

	// Long gaps keep growing linearly: +10 per extra day past 5.
	delta := s(7) - s(6)
	if math.Abs(delta-10*0.8) > 1e-9 {
		t.Errorf("per-day growth past 5 = %f, want %f", delta, 10*0.8)
	}
}

func TestScore_ComponentValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		distance float64
		detour   float64
		days     int
		want     float64
	}{
		{
			// All components at their floor.
			name:     "ideal opportunity",
			distance: 0, detour: 0, days: 2,
			want: 0,
		},
		{
			// distancePenalty = 50, others zero -> 1.5 * 50.
			name:     "half distance scale",
			distance: 100, detour: 0, days: 2,
			want: 75,
		},
		{
			// detour at max acceptable (2*50=100): full detour penalty.
			name:     "detour at ceiling",
			distance: 50, detour: 100, days: 2,
			want: 1.5*25 + 1.2*100,
		},
		{
			// Beyond every clamp: 1.5*100 + 1.2*100 + 0.8*100.
			name:     "everything clamped",
			distance: 1000, detour: 10000, days: 0,
			want: 350,
		},
		{
			// Zero distance with nonzero detour: nothing is acceptable.
			name:     "zero distance nonzero detour",
			distance: 0, detour: 5, days: 2,
			want: 1.2 * 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Score(tt.distance, tt.detour, tt.days)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%f, %f, %d) = %f, want %f", tt.distance, tt.detour, tt.days, got, tt.want)
			}
		})
	}
}

func TestScore_DetourCap(t *testing.T) {
	t.Parallel()

	// At distance 150, the acceptable detour window is capped at 200 mi,
	// not 300: a 200-mile detour takes the full detour penalty.
	capped := Score(150, 200, 2)
	beyond := Score(150, 300, 2)
	if math.Abs(capped-beyond) > 1e-9 {
		t.Errorf("detour penalty should be clamped at the 200mi cap: %f vs %f", capped, beyond)
	}
}
