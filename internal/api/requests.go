// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/gigradar/internal/discovery"
)

// dateLayout is the query parameter date format.
const dateLayout = "2006-01-02"

// DiscoveryParams are the parsed and validated query parameters of a
// discovery request. Validation happens before any network activity.
type DiscoveryParams struct {
	VenueID       int64     `validate:"required,gt=0"`
	StartDate     time.Time `validate:"required"`
	EndDate       time.Time `validate:"required,gtefield=StartDate"`
	Radius        float64   `validate:"gte=0,lte=500"`
	Genres        []string  `validate:"max=20,dive,min=1,max=64"`
	MaxBands      int       `validate:"gte=0,lte=100"`
	MaxDistance   float64   `validate:"gte=0,lte=3000"`
	LookAheadDays int       `validate:"gte=0,lte=365"`
	Streaming     bool
	UseDemoMode   bool
}

// ToRequest converts validated parameters to a discovery request.
// Zero-valued optionals keep their meaning: the discoverer substitutes
// configured defaults.
func (p *DiscoveryParams) ToRequest() discovery.Request {
	return discovery.Request{
		VenueID:       p.VenueID,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		RadiusMiles:   p.Radius,
		Genres:        p.Genres,
		MaxBands:      p.MaxBands,
		MaxDistance:   p.MaxDistance,
		LookAheadDays: p.LookAheadDays,
		UseDemo:       p.UseDemoMode,
	}
}

// parseDiscoveryParams extracts discovery parameters from the query
// string. Type errors are reported per parameter; range and relational
// checks are left to the validator.
func parseDiscoveryParams(r *http.Request) (*DiscoveryParams, error) {
	q := r.URL.Query()
	params := &DiscoveryParams{}

	venueID, err := parseInt64Param(q.Get("venueId"), "venueId")
	if err != nil {
		return nil, err
	}
	params.VenueID = venueID

	params.StartDate, err = parseDateParam(q.Get("startDate"), "startDate")
	if err != nil {
		return nil, err
	}
	params.EndDate, err = parseDateParam(q.Get("endDate"), "endDate")
	if err != nil {
		return nil, err
	}

	if params.Radius, err = parseFloatParam(q.Get("radius"), "radius"); err != nil {
		return nil, err
	}
	if params.MaxDistance, err = parseFloatParam(q.Get("maxDistance"), "maxDistance"); err != nil {
		return nil, err
	}
	if params.MaxBands, err = parseIntParam(q.Get("maxBands"), "maxBands"); err != nil {
		return nil, err
	}
	if params.LookAheadDays, err = parseIntParam(q.Get("lookAheadDays"), "lookAheadDays"); err != nil {
		return nil, err
	}

	params.Genres = parseCSVParam(q.Get("genres"))
	params.Streaming = parseBoolParam(q.Get("streaming"))
	params.UseDemoMode = parseBoolParam(q.Get("useDemoMode"))

	return params, nil
}

func parseInt64Param(raw, name string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func parseIntParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func parseFloatParam(raw, name string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func parseDateParam(raw, name string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return t, nil
}

func parseCSVParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseBoolParam(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

// validationDetails flattens validator errors into a field -> problem map
// for the error response details.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["request"] = err.Error()
		return details
	}
	for _, fe := range verrs {
		details[fe.Field()] = fmt.Sprintf("failed %s validation", fe.Tag())
	}
	return details
}
