// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package middleware provides the HTTP middleware shared by every Liftlens route.

  - RequestID: accepts or mints an X-Request-ID and stores request and
    correlation IDs for logging.Ctx
  - PrometheusMetrics: counts requests and observes latency per chi route
    pattern
  - AccessLog: one structured zerolog line per request

Both are plain func(http.Handler) http.Handler values and plug into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)
*/
package middleware
