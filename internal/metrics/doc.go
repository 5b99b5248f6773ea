// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package metrics exposes Liftlens instrumentation in Prometheus format.

Metrics are package-level collectors registered with the default registry
through promauto, and are served by promhttp at /metrics.

# Preprocessing

  - liftlens_preprocess_runs_total: tables preprocessed (counter)
    Labels: source (catalog, upload), result (ok, invalid)
  - liftlens_preprocess_rows_total: rows in and out (counter)
    Labels: stage (in, out)
  - liftlens_preprocess_duplicates_removed_total (counter)
  - liftlens_preprocess_cells_filled_total (counter)
  - liftlens_preprocess_cells_missing_total: gaps with no seed value (counter)
  - liftlens_preprocess_duration_seconds (histogram)

# Recommendation

  - liftlens_recommend_requests_total (counter)
    Labels: result (ok, not_loaded, invalid, error)
  - liftlens_recommend_duration_seconds (histogram)
  - liftlens_model_fits_total (counter)
  - liftlens_model_fit_duration_seconds (histogram)
  - liftlens_model_rows: rows in the most recent model (gauge)
  - liftlens_model_features: feature columns in the most recent model (gauge)

# API

  - liftlens_api_requests_total (counter)
    Labels: method, route, status_code
  - liftlens_api_request_duration_seconds (histogram)
    Labels: method, route
  - liftlens_api_active_requests (gauge)
  - liftlens_catalog_exercises: exercises found on the last scan (gauge)
  - liftlens_table_cache_requests_total (counter)
    Labels: result (hit, miss)

Routes are chi route patterns, not raw paths, so exercise names in URLs do
not create new series.

# Usage

	table, err := dataset.Preprocess(raw, schema)
	metrics.RecordPreprocess("catalog", table, time.Since(start), err)

	engine.SetObserver(metrics.EngineObserver{})
*/
package metrics
