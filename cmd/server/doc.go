// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package main is the entry point for the Liftlens server.

Liftlens cleans MetaMotion accelerometer and gyroscope recordings and ranks
their rows against a user's preferences by cosine similarity.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("liftlens")
	├── DataSupervisor ("data-layer")
	│   └── Catalog refresh (rescans DATA_DIR, updates liftlens_catalog_exercises)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Startup order:

 1. Configuration: Koanf v2 from defaults, config.yaml and environment
 2. Logging: zerolog with JSON or console output
 3. Catalog: the recording directory (DATA_DIR)
 4. API: handlers, chi middleware and routes
 5. Supervisor tree: catalog refresh and HTTP server services

# Configuration Reload

When a config file is in use it is watched; on change the file is reloaded
and the log level and format are applied. Other settings need a restart.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP service drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT and the supervisor
reports any service that did not stop in time.

# Example Usage

	export DATA_DIR=./data/raw
	export LOG_FORMAT=console
	./liftlens

	curl localhost:8080/api/v1/exercises/available
	curl -X POST localhost:8080/api/v1/recommendations \
	  -d '{"exercise":"bench","sensor":"accelerometer","preferences":{"x-axis (g)":0.4},"n":3}'
*/
package main
