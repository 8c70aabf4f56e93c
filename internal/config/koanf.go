// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gigradar/config.yaml",
	"/etc/gigradar/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefixes maps recognized environment variable prefixes to koanf
// sections. Variables with other prefixes are ignored rather than
// polluting the config tree.
var envPrefixes = map[string]string{
	"SERVER":      "server",
	"BANDSINTOWN": "bandsintown",
	"DISCOVERY":   "discovery",
	"LOGGING":     "logging",
}

// defaultConfig returns a Config with all sensible default values.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3858,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Bandsintown: BandsintownConfig{
			APIKey:          "",
			BaseURL:         "https://rest.bandsintown.com",
			Timeout:         30 * time.Second,
			MaxRetries:      3,
			RetryBaseDelay:  time.Second,
			CacheTTL:        time.Hour,
			BatchSize:       3,
			BatchDelay:      3 * time.Second,
			CandidateDelay:  500 * time.Millisecond,
			ReferenceArtist: "Wilco", // known stable act used by the status probe
		},
		Discovery: DiscoveryConfig{
			Enabled:        true,
			DefaultRadius:  50,
			MaxBands:       20,
			LookAheadDays:  90,
			CandidateLimit: 250,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if present)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct.
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file.
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority).
	// BANDSINTOWN_API_KEY -> bandsintown.api_key
	// SERVER_PORT         -> server.port
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envTransformFunc maps an environment variable name to a koanf path.
// Only recognized prefixes are mapped; everything else is dropped.
func envTransformFunc(s string) string {
	parts := strings.SplitN(s, "_", 2)
	if len(parts) != 2 {
		return ""
	}

	section, ok := envPrefixes[parts[0]]
	if !ok {
		return ""
	}

	return section + "." + strings.ToLower(parts[1])
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exist.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
		return ""
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
