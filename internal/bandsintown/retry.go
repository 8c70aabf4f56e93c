// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package bandsintown

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// failureClass partitions provider failures for retry purposes.
type failureClass int

const (
	// classTransient covers transport errors and unexpected statuses;
	// retried with linear backoff.
	classTransient failureClass = iota

	// classRateLimited covers HTTP 429 and 403 (the provider returns 403
	// for exhausted app quotas); retried with exponential backoff.
	classRateLimited

	// classNotFound covers HTTP 404; never retried. List-typed resources
	// convert it to a cached empty result, single resources to
	// ErrArtistNotFound.
	classNotFound
)

// classify maps an error from one request attempt to its failure class.
func classify(err error) failureClass {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests, http.StatusForbidden:
			return classRateLimited
		case http.StatusNotFound:
			return classNotFound
		}
	}
	return classTransient
}

// RetryPolicy is the retry contract for provider requests: how many
// retries, and how long to wait before each one given the failure class.
// Keeping it a value object keeps the backoff shapes unit-testable
// without any I/O.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// BaseDelay is the unit delay the backoff formulas scale.
	BaseDelay time.Duration
}

// Delay returns the wait before the given retry (1-based). Rate-limited
// failures back off exponentially (base * 3^retry) to give the provider
// room; transient failures back off linearly (base * retry).
func (p RetryPolicy) Delay(class failureClass, retry int) time.Duration {
	if retry < 1 {
		retry = 1
	}

	switch class {
	case classRateLimited:
		mult := 1
		for i := 0; i < retry; i++ {
			mult *= 3
		}
		return p.BaseDelay * time.Duration(mult)
	default:
		return p.BaseDelay * time.Duration(retry)
	}
}

// sleepCtx sleeps for d or until the context is canceled, whichever
// comes first. This is the only suspension point in the client besides
// the network calls themselves.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
