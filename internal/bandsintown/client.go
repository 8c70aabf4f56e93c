// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package bandsintown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/gigradar/internal/config"
	"github.com/tomtom215/gigradar/internal/logging"
	"github.com/tomtom215/gigradar/internal/metrics"
	"github.com/tomtom215/gigradar/internal/models"
	wire "github.com/tomtom215/gigradar/internal/models/bandsintown"
)

// maxErrorBodySize limits how much of an error response body is read for
// diagnostics, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024

// eventDatetimeLayout is the provider's zone-less local timestamp format.
const eventDatetimeLayout = "2006-01-02T15:04:05"

// queryDateLayout is the provider's event window date format.
const queryDateLayout = "2006-01-02"

// Cache key prefixes per resource type.
const (
	keyPrefixArtist      = "artist"
	keyPrefixEvents      = "events"
	keyPrefixVenueEvents = "venue-events"
)

// Client talks to the Bandsintown API with per-key response caching,
// classified retry/backoff, circuit breaker protection, and pacing of
// individual calls.
//
// Thread safety: safe for concurrent use; the cache, breaker, and
// limiter are all concurrency-safe and each request builds its own
// http.Request.
type Client struct {
	cfg        config.BandsintownConfig
	httpClient *http.Client
	cache      *Cache
	policy     RetryPolicy
	breaker    *gobreaker.CircuitBreaker[[]byte]
	limiter    *rate.Limiter

	// sleep is swapped in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a client with the provided configuration and cache. A
// missing API key is not an error here: calls fail with
// ErrNotConfigured until a key is supplied.
func New(cfg config.BandsintownConfig, cache *Cache) *Client {
	cbName := "bandsintown-api"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
		IsSuccessful: func(err error) bool {
			// Not-found is a data condition, not a provider fault; it
			// must never push the breaker toward open.
			return err == nil || classify(err) == classNotFound
		},
	})

	// The limiter paces individual provider calls so even cache-miss
	// bursts inside a batch stay under the provider's per-second limits.
	interval := cfg.CandidateDelay
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		policy:     RetryPolicy{MaxRetries: cfg.MaxRetries, BaseDelay: cfg.RetryBaseDelay},
		breaker:    cb,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		sleep:      sleepCtx,
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// IsConfigured reports whether a provider API key is present.
func (c *Client) IsConfigured() bool {
	return c.cfg.APIKey != ""
}

// VerifyConnectivity checks the provider by looking up a known
// reference act. Used by the status endpoint.
func (c *Client) VerifyConnectivity(ctx context.Context) error {
	if _, err := c.GetArtist(ctx, c.cfg.ReferenceArtist); err != nil {
		return fmt.Errorf("provider connectivity check failed: %w", err)
	}
	return nil
}

// GetArtist fetches an act's profile (without events). Returns
// ErrArtistNotFound when the provider has no record for the name.
func (c *Client) GetArtist(ctx context.Context, name string) (*models.ActProfile, error) {
	key := cacheKey(keyPrefixArtist, name)
	if data, ok := c.cache.Get(key); ok {
		var profile models.ActProfile
		if err := json.Unmarshal(data, &profile); err == nil {
			return &profile, nil
		}
		// A corrupt entry falls through to a fresh fetch.
	}

	body, err := c.doRequest(ctx, keyPrefixArtist, c.artistURL(name))
	if err != nil {
		if classify(err) == classNotFound {
			return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, name)
		}
		return nil, err
	}

	var artist wire.Artist
	if err := json.Unmarshal(body, &artist); err != nil {
		return nil, fmt.Errorf("failed to decode artist response: %w", err)
	}
	if artist.Name == "" {
		// The provider answers 200 with an empty object for some unknown
		// names instead of a 404.
		return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, name)
	}

	profile := convertArtist(&artist)
	c.cacheStore(key, profile)
	return profile, nil
}

// GetArtistEvents fetches an act's events inside the window. A provider
// "not found" is success with an empty sequence, and the empty sequence
// is cached - repeat queries for acts that will never have data must not
// hammer the provider.
func (c *Client) GetArtistEvents(ctx context.Context, name string, dateFrom, dateTo time.Time) ([]models.Event, error) {
	key := cacheKey(keyPrefixEvents, name)
	if data, ok := c.cache.Get(key); ok {
		var events []models.Event
		if err := json.Unmarshal(data, &events); err == nil {
			return events, nil
		}
	}

	body, err := c.doRequest(ctx, keyPrefixEvents, c.artistEventsURL(name, dateFrom, dateTo))
	if err != nil {
		if classify(err) == classNotFound {
			events := []models.Event{}
			c.cacheStore(key, events)
			return events, nil
		}
		return nil, err
	}

	events, err := decodeEvents(body)
	if err != nil {
		return nil, err
	}

	c.cacheStore(key, events)
	return events, nil
}

// GetArtistWithEvents composes GetArtist and GetArtistEvents into one
// profile carrying its event sequence.
func (c *Client) GetArtistWithEvents(ctx context.Context, name string, dateFrom, dateTo time.Time) (*models.ActProfile, error) {
	profile, err := c.GetArtist(ctx, name)
	if err != nil {
		return nil, err
	}

	events, err := c.GetArtistEvents(ctx, name, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	profile.Events = events
	return profile, nil
}

// GetVenueEvents fetches the events booked at a named venue. Not used by
// the routing pipeline itself; exposed for venue-side tooling.
func (c *Client) GetVenueEvents(ctx context.Context, venueName, location string) ([]models.Event, error) {
	key := cacheKey(keyPrefixVenueEvents, venueName+":"+location)
	if data, ok := c.cache.Get(key); ok {
		var events []models.Event
		if err := json.Unmarshal(data, &events); err == nil {
			return events, nil
		}
	}

	body, err := c.doRequest(ctx, keyPrefixVenueEvents, c.venueEventsURL(venueName, location))
	if err != nil {
		if classify(err) == classNotFound {
			events := []models.Event{}
			c.cacheStore(key, events)
			return events, nil
		}
		return nil, err
	}

	events, err := decodeEvents(body)
	if err != nil {
		return nil, err
	}

	c.cacheStore(key, events)
	return events, nil
}

// ClearCache drops every cached provider response.
func (c *Client) ClearCache() error {
	return c.cache.Clear()
}

// CacheStats reports the shared cache counters.
func (c *Client) CacheStats() models.CacheStats {
	return c.cache.Stats()
}

// doRequest performs one provider GET with pacing, circuit breaker
// protection, and classified retry. Cache hits never reach here.
func (c *Client) doRequest(ctx context.Context, resource, reqURL string) ([]byte, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.fetch(ctx, reqURL)
		})
		if err == nil {
			metrics.RecordProviderRequest(resource, http.StatusOK, nil)
			return body, nil
		}

		class := classify(err)
		metrics.RecordProviderRequest(resource, statusOf(err), err)

		// Not-found is terminal: the caller decides whether it means an
		// empty sequence or a missing entity. Never retried, never cached
		// here.
		if class == classNotFound {
			return nil, err
		}

		lastErr = err
		if attempt >= c.policy.MaxRetries {
			break
		}

		retry := attempt + 1
		delay := c.policy.Delay(class, retry)
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("resource", resource).
			Int("retry", retry).
			Dur("delay", delay).
			Msg("provider request failed, backing off")

		metricClass := "transient"
		if class == classRateLimited {
			metricClass = "rate_limited"
		}
		metrics.ProviderRetries.WithLabelValues(metricClass).Inc()

		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("provider request failed after %d retries: %w", c.policy.MaxRetries, lastErr)
}

// fetch performs a single HTTP round trip.
func (c *Client) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apiError{
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// cacheStore marshals and stores a parsed response; storage failures are
// logged and otherwise ignored, since the response is already in hand.
func (c *Client) cacheStore(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("failed to marshal cache entry")
		return
	}
	if err := c.cache.Set(key, data); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("failed to store cache entry")
	}
}

func statusOf(err error) int {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func cacheKey(resource, identifier string) string {
	return resource + ":" + strings.ToLower(identifier)
}

// readBodyForError reads at most maxErrorBodySize of a response body for
// error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}

// URL builders.

func (c *Client) artistURL(name string) string {
	return fmt.Sprintf("%s/artists/%s?app_id=%s",
		c.cfg.BaseURL, url.PathEscape(name), url.QueryEscape(c.cfg.APIKey))
}

func (c *Client) artistEventsURL(name string, dateFrom, dateTo time.Time) string {
	params := url.Values{}
	params.Set("app_id", c.cfg.APIKey)
	if !dateFrom.IsZero() && !dateTo.IsZero() {
		params.Set("date", dateFrom.Format(queryDateLayout)+","+dateTo.Format(queryDateLayout))
	}
	return fmt.Sprintf("%s/artists/%s/events?%s",
		c.cfg.BaseURL, url.PathEscape(name), params.Encode())
}

func (c *Client) venueEventsURL(venueName, location string) string {
	params := url.Values{}
	params.Set("app_id", c.cfg.APIKey)
	params.Set("query", venueName)
	params.Set("location", location)
	return fmt.Sprintf("%s/venues/events?%s", c.cfg.BaseURL, params.Encode())
}

// Wire-to-model conversion.

func convertArtist(a *wire.Artist) *models.ActProfile {
	count := a.UpcomingEventCount
	if count < 0 {
		count = 0
	}
	return &models.ActProfile{
		ID:                 a.ID,
		Name:               a.Name,
		ImageURL:           a.ImageURL,
		URL:                a.URL,
		UpcomingEventCount: count,
	}
}

func decodeEvents(body []byte) ([]models.Event, error) {
	var wireEvents []wire.Event
	if err := json.Unmarshal(body, &wireEvents); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}

	events := make([]models.Event, 0, len(wireEvents))
	for i := range wireEvents {
		events = append(events, convertEvent(&wireEvents[i]))
	}
	return events, nil
}

func convertEvent(e *wire.Event) models.Event {
	dt, err := time.Parse(eventDatetimeLayout, e.Datetime)
	if err != nil {
		// Some feeds include a zone suffix; fall back to RFC 3339.
		dt, _ = time.Parse(time.RFC3339, e.Datetime)
	}

	lat, _ := strconv.ParseFloat(e.Venue.Latitude, 64)
	lon, _ := strconv.ParseFloat(e.Venue.Longitude, 64)

	offers := make([]models.Offer, 0, len(e.Offers))
	for _, o := range e.Offers {
		offers = append(offers, models.Offer{Type: o.Type, URL: o.URL, Status: o.Status})
	}

	return models.Event{
		ID:       e.ID,
		Datetime: dt,
		Venue: models.EventVenue{
			Name:      e.Venue.Name,
			City:      e.Venue.City,
			Region:    e.Venue.Region,
			Country:   e.Venue.Country,
			Latitude:  lat,
			Longitude: lon,
		},
		Lineup: e.Lineup,
		Offers: offers,
	}
}
