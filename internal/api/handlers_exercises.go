// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/liftlens/internal/dataset"
	"github.com/tomtom215/liftlens/internal/models"
)

// ExercisesAvailable handles GET /api/v1/exercises/available.
func (h *Handler) ExercisesAvailable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	exercises, err := h.catalog.Exercises()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, r, start, models.ExerciseList{
		Exercises: exercises,
		Count:     len(exercises),
	})
}

// ExerciseData handles GET /api/v1/exercises/{name}. It returns each sensor
// that has a recording; a sensor without one is null. An exercise with no
// recording at all is a 404.
func (h *Handler) ExerciseData(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := ExerciseParams{Name: chi.URLParam(r, "name")}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	accel, err := h.sensorTable(r.Context(), params.Name, dataset.SensorAccelerometer)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	gyro, err := h.sensorTable(r.Context(), params.Name, dataset.SensorGyroscope)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if accel == nil || gyro == nil {
		respondServiceError(w, r, fmt.Errorf("%w: %s needs accelerometer and gyroscope recordings", dataset.ErrExerciseNotFound, params.Name))
		return
	}

	respondSuccess(w, r, start, models.ExerciseRecording{
		Exercise:      params.Name,
		Accelerometer: accel,
		Gyroscope:     gyro,
	})
}

// sensorTable loads and cleans one sensor stream. A missing recording
// returns nil without error.
func (h *Handler) sensorTable(ctx context.Context, exercise string, sensor dataset.Sensor) (*models.SensorTable, error) {
	table, err := h.catalogTable(ctx, exercise, sensor)
	if errors.Is(err, dataset.ErrExerciseNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.SensorTable{
		Sensor:  string(sensor),
		Columns: table.Columns(),
		Report:  table.Report(),
		Summary: table.Describe(),
		Records: table.Records(),
	}, nil
}
