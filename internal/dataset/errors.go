// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import "errors"

var (
	// ErrInput indicates an empty or malformed raw table.
	ErrInput = errors.New("invalid input data")

	// ErrExerciseNotFound indicates the catalog has no complete recording
	// pair for the requested exercise.
	ErrExerciseNotFound = errors.New("exercise recording not found")
)
