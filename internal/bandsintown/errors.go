// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package bandsintown

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates the provider API key is missing. The
	// process runs without it; only discovery calls fail.
	ErrNotConfigured = errors.New("bandsintown API key is not configured")

	// ErrArtistNotFound indicates the provider has no record for an act.
	ErrArtistNotFound = errors.New("artist not found")
)

// apiError is a non-2xx provider response. It drives retry
// classification: 429/403 back off exponentially, 404 maps to not-found
// semantics, everything else is treated as transient.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
