// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared. Field names in errors
// are taken from the json tag, so messages name the fields a client sent.
//
// # Quick Start
//
//	type RecommendationRequest struct {
//	    Exercise string `json:"exercise" validate:"required,exercise"`
//	    N        int    `json:"n" validate:"gte=0,lte=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
//
// # Custom Validation Tags
//
//   - exercise: a lowercase exercise token as found in recording file names
//     (for example "bench" in A-bench-heavy_MetaWear_...csv)
//   - finite: a float that is neither NaN nor infinite
//
// # Error Format
//
// ToAPIError produces a VALIDATION_ERROR with the translated message. A
// single failure carries field, tag and value details; several failures
// carry a "fields" list.
package validation
