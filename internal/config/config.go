// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package config defines the GigRadar configuration and its layered
// loading: struct defaults, then an optional YAML file, then environment
// variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the GigRadar server.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Bandsintown BandsintownConfig `koanf:"bandsintown"`
	Discovery   DiscoveryConfig   `koanf:"discovery"`
	Logging     LoggingConfig     `koanf:"logging"`
	Venues      []VenueConfig     `koanf:"venues"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// BandsintownConfig holds events-provider client settings.
//
// APIKey may be empty: the process still starts, and every discovery
// call reports a "not configured" failure instead of crashing at
// construction time.
type BandsintownConfig struct {
	APIKey          string        `koanf:"api_key"`
	BaseURL         string        `koanf:"base_url"`
	Timeout         time.Duration `koanf:"timeout"`
	MaxRetries      int           `koanf:"max_retries"`
	RetryBaseDelay  time.Duration `koanf:"retry_base_delay"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	BatchSize       int           `koanf:"batch_size"`
	BatchDelay      time.Duration `koanf:"batch_delay"`
	CandidateDelay  time.Duration `koanf:"candidate_delay"`
	ReferenceArtist string        `koanf:"reference_artist"`
}

// DiscoveryConfig holds discovery pipeline defaults. Request parameters
// override these per run.
type DiscoveryConfig struct {
	Enabled        bool    `koanf:"enabled"`
	DefaultRadius  float64 `koanf:"default_radius"`
	MaxBands       int     `koanf:"max_bands"`
	LookAheadDays  int     `koanf:"look_ahead_days"`
	CandidateLimit int     `koanf:"candidate_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// VenueConfig is one venue in the static venue list. The venue record
// store proper is an external collaborator; this list backs the
// standalone lookup implementation.
type VenueConfig struct {
	ID        int64   `koanf:"id"`
	Name      string  `koanf:"name"`
	City      string  `koanf:"city"`
	State     string  `koanf:"state"`
	Latitude  float64 `koanf:"latitude"`
	Longitude float64 `koanf:"longitude"`
}

// Validate checks the configuration for values that would make the
// server misbehave at runtime. A missing API key is deliberately not an
// error here.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Bandsintown.MaxRetries < 0 {
		return fmt.Errorf("bandsintown.max_retries must be >= 0, got %d", c.Bandsintown.MaxRetries)
	}
	if c.Bandsintown.BatchSize < 1 {
		return fmt.Errorf("bandsintown.batch_size must be >= 1, got %d", c.Bandsintown.BatchSize)
	}
	if c.Bandsintown.CacheTTL <= 0 {
		return fmt.Errorf("bandsintown.cache_ttl must be positive, got %s", c.Bandsintown.CacheTTL)
	}
	if c.Discovery.DefaultRadius <= 0 {
		return fmt.Errorf("discovery.default_radius must be positive, got %f", c.Discovery.DefaultRadius)
	}
	if c.Discovery.MaxBands < 1 {
		return fmt.Errorf("discovery.max_bands must be >= 1, got %d", c.Discovery.MaxBands)
	}
	if c.Discovery.LookAheadDays < 0 {
		return fmt.Errorf("discovery.look_ahead_days must be >= 0, got %d", c.Discovery.LookAheadDays)
	}
	for i := range c.Venues {
		v := &c.Venues[i]
		if v.ID <= 0 {
			return fmt.Errorf("venues[%d].id must be positive, got %d", i, v.ID)
		}
		if v.Latitude < -90 || v.Latitude > 90 {
			return fmt.Errorf("venues[%d].latitude %f out of range", i, v.Latitude)
		}
		if v.Longitude < -180 || v.Longitude > 180 {
			return fmt.Errorf("venues[%d].longitude %f out of range", i, v.Longitude)
		}
	}
	return nil
}
