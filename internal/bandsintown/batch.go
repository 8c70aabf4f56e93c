// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package bandsintown

import (
	"context"
	"time"

	"github.com/tomtom215/gigradar/internal/logging"
	"github.com/tomtom215/gigradar/internal/models"
)

// ProgressFunc receives the candidate counts and the batch's fetched
// profiles after each finished batch. The fetched slice excludes
// candidates that failed or were skipped.
type ProgressFunc func(completed, total int, fetched []*models.ActProfile)

// GetMultipleArtistsWithEvents fetches profiles and events for a list of
// candidate acts in strictly sequential batches.
//
// Pacing is two-layered: the client's limiter spaces individual provider
// calls inside a batch, and an inter-batch delay separates batches. The
// delay is skipped after the final batch. Individual candidate failures
// are logged and omitted from the result; only context cancellation
// aborts the run.
func (c *Client) GetMultipleArtistsWithEvents(ctx context.Context, names []string, dateFrom, dateTo time.Time, onProgress ProgressFunc) ([]*models.ActProfile, error) {
	total := len(names)
	results := make([]*models.ActProfile, 0, total)

	batchSize := c.cfg.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}

		var fetched []*models.ActProfile
		for _, name := range names[start:end] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			profile, err := c.GetArtistWithEvents(ctx, name, dateFrom, dateTo)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				logging.Ctx(ctx).Warn().
					Err(err).
					Str("act", name).
					Msg("skipping candidate after fetch failure")
				continue
			}
			fetched = append(fetched, profile)
		}
		results = append(results, fetched...)

		if onProgress != nil {
			onProgress(end, total, fetched)
		}

		if end < total {
			if err := c.sleep(ctx, c.cfg.BatchDelay); err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}
