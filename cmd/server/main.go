// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/liftlens/internal/api"
	"github.com/tomtom215/liftlens/internal/config"
	"github.com/tomtom215/liftlens/internal/dataset"
	"github.com/tomtom215/liftlens/internal/logging"
	"github.com/tomtom215/liftlens/internal/metrics"
	"github.com/tomtom215/liftlens/internal/supervisor"
	"github.com/tomtom215/liftlens/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))
	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Str("data_dir", cfg.Dataset.DataDir).
		Str("query_scaling", string(cfg.Recommend.QueryScaling)).
		Msg("Starting Liftlens")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	catalog := dataset.NewCatalog(cfg.Dataset.DataDir, logging.WithComponent("catalog"))
	if exercises, err := catalog.Exercises(); err != nil {
		logging.Warn().Err(err).Msg("Recording catalog not readable yet")
	} else {
		metrics.SetCatalogExercises(len(exercises))
		logging.Info().Strs("exercises", exercises).Msg("Recording catalog loaded")
	}

	handler, err := api.NewHandler(catalog, api.HandlerConfig{
		Recommend:      &cfg.Recommend,
		MaxUploadBytes: cfg.Dataset.MaxUploadBytes,
		CacheSize:      cfg.Dataset.CacheSize,
		CacheTTL:       cfg.Dataset.CacheTTL,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
	server := newHTTPServer(cfg, router.SetupChi())

	tree, err := buildSupervisorTree(cfg, catalog, server)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if path := config.FindConfigFile(); path != "" {
		if err := config.WatchConfigFile(path, reloadLogging); err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
		} else {
			logging.Info().Str("path", path).Msg("Watching config file for logging changes")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

func loggingConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	}
}

// newHTTPServer applies the configured address and timeouts.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}

// buildSupervisorTree wires the catalog refresh into the data layer and the
// HTTP server into the API layer. A zero refresh interval disables the
// refresh service.
func buildSupervisorTree(cfg *config.Config, catalog *dataset.Catalog, server *http.Server) (*supervisor.SupervisorTree, error) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Dataset.RefreshInterval > 0 {
		tree.AddDataService(services.NewCatalogRefreshService(
			catalog,
			cfg.Dataset.RefreshInterval,
			metrics.SetCatalogExercises,
			logging.WithComponent("catalog-refresh"),
		))
	} else {
		logging.Info().Msg("Catalog refresh disabled (DATASET_REFRESH_INTERVAL=0)")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	return tree, nil
}

// reloadLogging re-reads the configuration and applies its logging section.
func reloadLogging() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Warn().Err(err).Msg("Config reload failed; keeping current settings")
		return
	}
	logging.Init(loggingConfig(cfg))
	logging.Info().
		Str("level", cfg.Logging.Level).
		Str("format", cfg.Logging.Format).
		Msg("Logging configuration reloaded")
}
