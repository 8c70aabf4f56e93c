// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v, want nil", err)
	}

	if cfg.Bandsintown.BatchSize != 3 {
		t.Errorf("default batch size = %d, want 3", cfg.Bandsintown.BatchSize)
	}
	if cfg.Bandsintown.CacheTTL != time.Hour {
		t.Errorf("default cache TTL = %s, want 1h", cfg.Bandsintown.CacheTTL)
	}
	if cfg.Discovery.LookAheadDays != 90 {
		t.Errorf("default look-ahead = %d, want 90", cfg.Discovery.LookAheadDays)
	}
	if cfg.Discovery.MaxBands != 20 {
		t.Errorf("default max bands = %d, want 20", cfg.Discovery.MaxBands)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"negative retries", func(c *Config) { c.Bandsintown.MaxRetries = -1 }},
		{"zero batch size", func(c *Config) { c.Bandsintown.BatchSize = 0 }},
		{"zero cache ttl", func(c *Config) { c.Bandsintown.CacheTTL = 0 }},
		{"zero radius", func(c *Config) { c.Discovery.DefaultRadius = 0 }},
		{"zero max bands", func(c *Config) { c.Discovery.MaxBands = 0 }},
		{"venue latitude out of range", func(c *Config) {
			c.Venues = []VenueConfig{{ID: 1, Name: "x", Latitude: 91, Longitude: 0}}
		}},
		{"venue bad id", func(c *Config) {
			c.Venues = []VenueConfig{{ID: 0, Name: "x", Latitude: 40, Longitude: -87}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"BANDSINTOWN_API_KEY", "bandsintown.api_key"},
		{"SERVER_PORT", "server.port"},
		{"DISCOVERY_MAX_BANDS", "discovery.max_bands"},
		{"LOGGING_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
		{"AWS_SECRET_ACCESS_KEY", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 4000
bandsintown:
  api_key: from-file
venues:
  - id: 7
    name: "The Hideout"
    city: "Chicago"
    state: "IL"
    latitude: 41.9073
    longitude: -87.6733
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("BANDSINTOWN_API_KEY", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("port = %d, want 4000 (from file)", cfg.Server.Port)
	}
	if cfg.Bandsintown.APIKey != "from-env" {
		t.Errorf("api key = %q, want from-env (env beats file)", cfg.Bandsintown.APIKey)
	}
	if len(cfg.Venues) != 1 || cfg.Venues[0].ID != 7 {
		t.Errorf("venues = %+v, want the single file-provided venue", cfg.Venues)
	}
	// Untouched settings keep their defaults.
	if cfg.Bandsintown.BatchDelay != 3*time.Second {
		t.Errorf("batch delay = %s, want default 3s", cfg.Bandsintown.BatchDelay)
	}
}

func TestLoad_MissingAPIKeyIsNotFatal(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/nonexistent/config.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil without an API key", err)
	}
	if cfg.Bandsintown.APIKey != "" {
		t.Errorf("api key = %q, want empty", cfg.Bandsintown.APIKey)
	}
}
