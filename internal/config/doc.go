// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package config loads and validates Liftlens configuration.

# Configuration Sources

Configuration is layered with koanf, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file, found through CONFIG_PATH or the DefaultConfigPaths
 3. Environment variables listed in the mapping table of envTransformFunc

Environment variables that are not in the table are ignored.

# Configuration Structure

  - ServerConfig: bind address, port and HTTP timeouts
  - LoggingConfig: zerolog level, format and caller info
  - DatasetConfig: recording directory, upload limit and table cache
  - recommend.Config: result counts, query scaling and profile thresholds
  - SecurityConfig: CORS origins and rate limiting
  - SupervisorConfig: suture failure handling

# Environment Variables

  - HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT,
    HTTP_SHUTDOWN_TIMEOUT
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - DATA_DIR, DATASET_MAX_UPLOAD_BYTES, DATASET_REFRESH_INTERVAL
  - DATASET_CACHE_SIZE, DATASET_CACHE_TTL
  - RECOMMEND_DEFAULT_N, RECOMMEND_MAX_N, RECOMMEND_QUERY_SCALING,
    RECOMMEND_BMI_UNDERWEIGHT, RECOMMEND_BMI_OVERWEIGHT, RECOMMEND_ADULT_AGE,
    RECOMMEND_SENIOR_AGE
  - CORS_ORIGINS (comma separated), RATE_LIMIT_REQS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT
  - SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_DECAY,
    SUPERVISOR_FAILURE_BACKOFF, SUPERVISOR_SHUTDOWN_TIMEOUT

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
