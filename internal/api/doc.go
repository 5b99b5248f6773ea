// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package api serves the Liftlens HTTP API on a chi router.

# Endpoints

	GET  /api/v1/health                   version and uptime
	GET  /api/v1/health/live              liveness
	GET  /api/v1/health/ready             readiness (catalog directory readable)
	GET  /api/v1/exercises/available      exercise names found in the catalog
	GET  /api/v1/exercises/{name}         processed accelerometer and gyroscope data
	POST /api/v1/recommendations          rank a catalog recording against preferences
	POST /api/v1/recommendations/upload   rank an uploaded CSV against preferences
	GET  /metrics                         Prometheus exposition

# Request Flow

Every recommendation request builds its own model: the recording is
preprocessed (dataset.Preprocess), fitted into a fresh recommend.Engine and
queried once. With HandlerConfig.CacheSize > 0, cleaned catalog recordings
are kept in an LRU keyed by path, size and modification time, so repeated
requests skip parsing and preprocessing. Uploads are never cached.

# Middleware

Applied globally, in order: request ID, panic recovery, CORS (go-chi/cors),
Prometheus request metrics and the access log. API routes add IP rate
limiting (go-chi/httprate) and security headers; uploads carry a stricter
limit of their own.

# Responses

All responses use the models.APIResponse envelope. Domain errors map to
status codes in respondServiceError:

	dataset.ErrExerciseNotFound -> 404 EXERCISE_NOT_FOUND
	dataset.ErrInput            -> 400 INVALID_DATASET
	recommend.ErrShape          -> 400 INVALID_PREFERENCES
	recommend.ErrProfile        -> 400 INVALID_PROFILE
	anything else               -> 500 INTERNAL_ERROR
*/
package api
