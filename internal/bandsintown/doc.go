// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package bandsintown implements the cached, rate-limited client for the
// Bandsintown events API.
//
// Client features:
//   - Per-key response caching with a fixed TTL (badger, in-memory)
//   - Classified retry with backoff: exponential for rate-limit/forbidden
//     responses, linear for transient failures, none for not-found
//   - Circuit breaker protection around the HTTP transport
//   - Strictly sequential batched querying with inter-candidate pacing
//     and inter-batch delays, to stay well under provider rate limits
//   - Context support for cancellation during every backoff sleep
//
// A missing API key degrades every call to ErrNotConfigured instead of
// failing at construction time.
package bandsintown
