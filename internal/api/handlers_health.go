// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/liftlens/internal/models"
)

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Time{}, h.healthStatus("healthy"))
}

// HealthReady reports whether the recording catalog can be listed. It
// returns 503 while the data directory is unreadable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if _, err := h.catalog.Exercises(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     h.healthStatus("unavailable"),
			Metadata: newMetadata(r, time.Time{}),
			Error: &models.APIError{
				Code:    ErrCodeNotReady,
				Message: "Recording catalog is not readable",
			},
		})
		h.logger.Warn().Err(err).Msg("readiness check failed")
		return
	}
	respondSuccess(w, r, time.Time{}, h.healthStatus("ready"))
}

func (h *Handler) healthStatus(status string) models.HealthStatus {
	return models.HealthStatus{
		Status:  status,
		Version: Version,
		DataDir: h.catalog.Dir(),
		Uptime:  time.Since(h.startTime).Seconds(),
	}
}
