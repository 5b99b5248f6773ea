// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import "errors"

var (
	// ErrNotLoaded is returned when an Engine is queried before Load.
	ErrNotLoaded = errors.New("recommendation engine has no data loaded")

	// ErrShape is returned when preferences cannot be placed in the feature
	// space. Unknown and absent keys are not errors; only non-finite values
	// are.
	ErrShape = errors.New("preferences do not fit the feature space")

	// ErrProfile is returned when a complete profile carries impossible body
	// metrics.
	ErrProfile = errors.New("invalid user profile")
)
