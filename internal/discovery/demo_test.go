// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/gigradar/internal/models"
)

func TestDemoSourceDeterministic(t *testing.T) {
	t.Parallel()

	src := NewDemoSource(3)
	names := []string{"Act One", "Act Two", "Act Three"}
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 2, 0)

	first, err := src.GetMultipleArtistsWithEvents(context.Background(), names, from, to, nil)
	if err != nil {
		t.Fatalf("GetMultipleArtistsWithEvents() error: %v", err)
	}
	second, err := src.GetMultipleArtistsWithEvents(context.Background(), names, from, to, nil)
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i].Events) != len(second[i].Events) {
			t.Errorf("%s: event counts differ: %d vs %d", first[i].Name, len(first[i].Events), len(second[i].Events))
		}
		for j := range first[i].Events {
			if !first[i].Events[j].Datetime.Equal(second[i].Events[j].Datetime) {
				t.Errorf("%s event %d: datetimes differ", first[i].Name, j)
			}
		}
	}
}

func TestDemoSourceEventsInsideWindow(t *testing.T) {
	t.Parallel()

	src := NewDemoSource(3)
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 2, 0)

	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"}
	profiles, err := src.GetMultipleArtistsWithEvents(context.Background(), names, from, to, nil)
	if err != nil {
		t.Fatalf("GetMultipleArtistsWithEvents() error: %v", err)
	}
	if len(profiles) != len(names) {
		t.Fatalf("profiles = %d, want %d", len(profiles), len(names))
	}

	var withEvents int
	for _, p := range profiles {
		if len(p.Events) > 0 {
			withEvents++
		}
		for _, e := range p.Events {
			if e.Datetime.Before(from) || e.Datetime.After(to) {
				t.Errorf("%s: event at %v outside window [%v, %v]", p.Name, e.Datetime, from, to)
			}
			if !e.Venue.HasCoordinates() {
				t.Errorf("%s: demo event without coordinates", p.Name)
			}
		}
	}
	if withEvents == 0 {
		t.Error("no demo act has events; pool should produce touring acts")
	}
}

func TestDemoSourceBatchCadence(t *testing.T) {
	t.Parallel()

	src := NewDemoSource(3)
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	var progress [][2]int
	_, err := src.GetMultipleArtistsWithEvents(context.Background(), names, from, from.AddDate(0, 2, 0),
		func(completed, total int, fetched []*models.ActProfile) {
			progress = append(progress, [2]int{completed, total})
		})
	if err != nil {
		t.Fatalf("GetMultipleArtistsWithEvents() error: %v", err)
	}

	want := [][2]int{{3, 7}, {6, 7}, {7, 7}}
	if len(progress) != len(want) {
		t.Fatalf("progress = %v, want %v", progress, want)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Errorf("progress[%d] = %v, want %v", i, progress[i], want[i])
		}
	}
}
