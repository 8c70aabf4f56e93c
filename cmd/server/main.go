// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Command server runs the GigRadar HTTP server: the discovery API, the
// events-provider client with its response cache, and the Prometheus
// metrics endpoint, supervised with graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tomtom215/gigradar/internal/api"
	"github.com/tomtom215/gigradar/internal/bandsintown"
	"github.com/tomtom215/gigradar/internal/candidates"
	"github.com/tomtom215/gigradar/internal/config"
	"github.com/tomtom215/gigradar/internal/discovery"
	"github.com/tomtom215/gigradar/internal/logging"
	"github.com/tomtom215/gigradar/internal/supervisor"
	"github.com/tomtom215/gigradar/internal/venues"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gigradar: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Int("port", cfg.Server.Port).
		Bool("api_key_configured", cfg.Bandsintown.APIKey != "").
		Int("venues", len(cfg.Venues)).
		Msg("starting gigradar")

	if cfg.Bandsintown.APIKey == "" {
		logging.Warn().Msg("BANDSINTOWN_API_KEY is not set; discovery will report not-configured")
	}

	cache, err := bandsintown.NewCache(cfg.Bandsintown.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to open response cache: %w", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			logging.Warn().Err(err).Msg("cache close failed")
		}
	}()

	client := bandsintown.New(cfg.Bandsintown, cache)
	source := candidates.NewSource(time.Now().UnixNano())
	lookup := venues.NewStaticLookup(cfg.Venues)
	demo := discovery.NewDemoSource(cfg.Bandsintown.BatchSize)
	discoverer := discovery.New(cfg.Discovery, source, lookup, client, demo)

	handler := api.NewHandler(cfg, client, discoverer)
	router := api.NewRouter(handler, cfg.Server)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		// No WriteTimeout: streaming discovery responses can outlive any
		// fixed deadline; per-run cancellation comes from the client
		// closing the connection.
	}

	sup := supervisor.New(logging.NewSlogLogger(), supervisor.DefaultConfig())
	sup.Add(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("http server listening")

	if err := sup.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor exited: %w", err)
	}

	logging.Info().Msg("shutdown complete")
	return nil
}
