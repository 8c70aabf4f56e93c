// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package candidates

import (
	"testing"
)

var testPool = []Act{
	{Name: "Headliner A", Genres: []string{"indie rock"}, Tier: TierHigh},
	{Name: "Headliner B", Genres: []string{"metal"}, Tier: TierHigh},
	{Name: "Club Act C", Genres: []string{"indie rock", "shoegaze"}},
	{Name: "Club Act D", Genres: []string{"metal"}},
	{Name: "Club Act E", Genres: []string{"country"}},
}

func TestCandidatesHighTierFirst(t *testing.T) {
	t.Parallel()

	src := NewSourceWithPool(1, testPool)
	names := src.Candidates(0, nil)

	if len(names) != len(testPool) {
		t.Fatalf("Candidates() returned %d names, want %d", len(names), len(testPool))
	}

	highSet := map[string]bool{"Headliner A": true, "Headliner B": true}
	for i, name := range names[:2] {
		if !highSet[name] {
			t.Errorf("names[%d] = %q, want a high-tier act first", i, name)
		}
	}
}

func TestCandidatesLimit(t *testing.T) {
	t.Parallel()

	src := NewSourceWithPool(1, testPool)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"limit below pool size", 3, 3},
		{"limit above pool size", 50, 5},
		{"zero limit means unbounded", 0, 5},
		{"negative limit means unbounded", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(src.Candidates(tt.limit, nil)); got != tt.want {
				t.Errorf("len(Candidates(%d, nil)) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestCandidatesGenreFilter(t *testing.T) {
	t.Parallel()

	src := NewSourceWithPool(1, testPool)

	tests := []struct {
		name   string
		genres []string
		want   map[string]bool
	}{
		{
			"single genre",
			[]string{"metal"},
			map[string]bool{"Headliner B": true, "Club Act D": true},
		},
		{
			"case insensitive",
			[]string{"Indie Rock"},
			map[string]bool{"Headliner A": true, "Club Act C": true},
		},
		{
			"multiple genres union",
			[]string{"country", "shoegaze"},
			map[string]bool{"Club Act C": true, "Club Act E": true},
		},
		{
			"unknown genre",
			[]string{"polka"},
			map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := src.Candidates(0, tt.genres)
			if len(names) != len(tt.want) {
				t.Fatalf("Candidates(0, %v) = %v, want %d names", tt.genres, names, len(tt.want))
			}
			for _, name := range names {
				if !tt.want[name] {
					t.Errorf("unexpected candidate %q for genres %v", name, tt.genres)
				}
			}
		})
	}
}

func TestCandidatesDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := NewSourceWithPool(42, testPool).Candidates(0, nil)
	b := NewSourceWithPool(42, testPool).Candidates(0, nil)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}
}

func TestDefaultPool(t *testing.T) {
	t.Parallel()

	src := NewSource(1)
	names := src.Candidates(0, nil)
	if len(names) < 50 {
		t.Errorf("default pool has %d acts, want a usable candidate pool", len(names))
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate candidate %q", name)
		}
		seen[name] = true
	}

	var hasHigh bool
	for _, act := range src.Pool() {
		if act.Name == "" {
			t.Error("pool entry with empty name")
		}
		if len(act.Genres) == 0 {
			t.Errorf("%s has no genres", act.Name)
		}
		if act.Tier == TierHigh {
			hasHigh = true
		}
	}
	if !hasHigh {
		t.Error("default pool has no high-tier acts")
	}
}

func TestGenres(t *testing.T) {
	t.Parallel()

	src := NewSourceWithPool(1, testPool)
	genres := src.Genres()

	want := map[string]bool{"indie rock": true, "metal": true, "shoegaze": true, "country": true}
	if len(genres) != len(want) {
		t.Fatalf("Genres() = %v, want %d distinct genres", genres, len(want))
	}
	for _, g := range genres {
		if !want[g] {
			t.Errorf("unexpected genre %q", g)
		}
	}
}
