// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package supervisor runs the long-lived Liftlens services under suture v4.

# Overview

	RootSupervisor ("liftlens")
	├── DataSupervisor ("data-layer")
	│   └── CatalogRefreshService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a catalog directory that keeps
failing to scan backs off without restarting the HTTP server.

# Logging

Supervisor events (service failures, restarts, backoff) go through
sutureslog. Pass logging.NewSlogLogger() so they land in the same zerolog
stream as the rest of the process.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    FailureThreshold: cfg.Supervisor.FailureThreshold,
	    FailureBackoff:   cfg.Supervisor.FailureBackoff,
	})
	if err != nil {
	    return err
	}

	tree.AddDataService(services.NewCatalogRefreshService(catalog, time.Minute, metrics.SetCatalogExercises, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

TreeConfig zero values fall back to suture's defaults: FailureThreshold 5,
FailureDecay 30s, FailureBackoff 15s, ShutdownTimeout 10s.
*/
package supervisor
