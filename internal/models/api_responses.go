// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package models

import (
	"time"

	"github.com/tomtom215/liftlens/internal/dataset"
	"github.com/tomtom215/liftlens/internal/recommend"
)

// APIResponse wraps every HTTP response.
//
// Status is "success" or "error"; Error is set only for "error".
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing and tracing information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the error body of an APIResponse.
//
// Codes used by the API:
//   - VALIDATION_ERROR: request fields failed validation
//   - INVALID_REQUEST: body could not be decoded
//   - INVALID_DATASET: the table is empty, ragged or mistyped
//   - INVALID_PREFERENCES: a preference value is not finite
//   - INVALID_PROFILE: profile metrics are impossible (zero height)
//   - EXERCISE_NOT_FOUND: no recording for the exercise and sensor
//   - PAYLOAD_TOO_LARGE: upload exceeds the configured limit
//   - RATE_LIMITED: too many requests from one client
//   - NOT_FOUND, METHOD_NOT_ALLOWED: no such route
//   - NOT_READY: the recording catalog is unreadable
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	DataDir string  `json:"data_dir"`
	Uptime  float64 `json:"uptime_seconds"`
}

// ExerciseList lists the exercises found in the catalog, sorted.
type ExerciseList struct {
	Exercises []string `json:"exercises"`
	Count     int      `json:"count"`
}

// SensorTable is one processed sensor recording.
type SensorTable struct {
	Sensor  string                  `json:"sensor"`
	Columns []dataset.Column        `json:"columns"`
	Report  dataset.Report          `json:"report"`
	Summary []dataset.ColumnSummary `json:"summary"`
	Records []map[string]any        `json:"records"`
}

// ExerciseRecording is the processed data of one exercise.
type ExerciseRecording struct {
	Exercise      string       `json:"exercise"`
	Accelerometer *SensorTable `json:"accelerometer"`
	Gyroscope     *SensorTable `json:"gyroscope"`
}

// RecommendationResult is the payload of both recommendation endpoints.
type RecommendationResult struct {
	Exercise        string                     `json:"exercise,omitempty"`
	Sensor          string                     `json:"sensor,omitempty"`
	FeatureColumns  []string                   `json:"feature_columns"`
	Rows            int                        `json:"rows"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}
