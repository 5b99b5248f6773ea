// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package models defines the HTTP response shapes of the Liftlens API.

Every endpoint answers with an APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "...", "message": "..."}}

Payload types:

  - HealthStatus: liveness and uptime
  - ExerciseList: exercise names discovered in the recording catalog
  - ExerciseRecording: processed accelerometer and gyroscope tables for one exercise
  - SensorTable: one processed table with its cleaning report and column summary
  - RecommendationResult: ranked recommendations plus the feature columns used

Recommendation entries themselves are recommend.Recommendation values, which
carry their own JSON encoding.
*/
package models
