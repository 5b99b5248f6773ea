// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/liftlens/internal/dataset"
	"github.com/tomtom215/liftlens/internal/logging"
	"github.com/tomtom215/liftlens/internal/models"
)

// Preprocess sources, the "source" label of liftlens_preprocess_runs_total.
const (
	sourceCatalog = "catalog"
	sourceUpload  = "upload"
)

// multipartMemory is how much of an upload is held in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendationRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "Request body must be a JSON object", err)
		return
	}
	if apiErr := h.validateRecommendation(&req, req.N); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	table, err := h.catalogTable(r.Context(), req.Exercise, req.sensor())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	recs, columns, err := h.recommend(r.Context(), table, req.Preferences, req.Profile.toProfile(), req.N)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("exercise", req.Exercise).
		Str("sensor", req.Sensor).
		Int("returned", len(recs)).
		Dur("duration", time.Since(start)).
		Msg("recommendations served")

	respondSuccess(w, r, start, models.RecommendationResult{
		Exercise:        req.Exercise,
		Sensor:          req.Sensor,
		FeatureColumns:  columns,
		Rows:            table.Len(),
		Recommendations: recs,
	})
}

// RecommendationsUpload handles POST /api/v1/recommendations/upload, a
// multipart form with a CSV "file" part and a JSON "request" part.
func (h *Handler) RecommendationsUpload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	tooLargeMsg := fmt.Sprintf("Upload exceeds %d bytes", h.config.MaxUploadBytes)
	if r.ContentLength > h.config.MaxUploadBytes {
		respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, tooLargeMsg, nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, tooLargeMsg, err)
			return
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "Request must be multipart/form-data", err)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("failed to remove multipart temp files")
		}
	}()

	var req UploadRecommendationRequest
	if body := r.FormValue("request"); strings.TrimSpace(body) != "" {
		if err := decodeJSON(strings.NewReader(body), &req); err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "The request part must be a JSON object", err)
			return
		}
	}
	if apiErr := h.validateRecommendation(&req, req.N); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "A CSV file part named \"file\" is required", err)
		return
	}
	defer func() { _ = file.Close() }()

	raw, err := dataset.ReadCSV(file)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	schema := dataset.InferSchema(raw)
	if req.Schema == SchemaMetaMotion {
		schema = dataset.MetaMotionSchema(raw.Columns())
	}
	table, err := h.preprocess(r.Context(), sourceUpload, raw, schema)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	recs, columns, err := h.recommend(r.Context(), table, req.Preferences, req.Profile.toProfile(), req.N)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("file", sanitizeLogValue(header.Filename)).
		Int64("size", header.Size).
		Int("returned", len(recs)).
		Dur("duration", time.Since(start)).
		Msg("upload recommendations served")

	respondSuccess(w, r, start, models.RecommendationResult{
		FeatureColumns:  columns,
		Rows:            table.Len(),
		Recommendations: recs,
	})
}

// validateRecommendation runs the struct tags and the configured upper
// bound on n.
func (h *Handler) validateRecommendation(req interface{}, n int) *models.APIError {
	if apiErr := validateRequest(req); apiErr != nil {
		return apiErr
	}
	if n > h.config.Recommend.MaxN {
		return &models.APIError{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("n must be less than or equal to %d", h.config.Recommend.MaxN),
			Details: map[string]interface{}{"field": "n", "tag": "lte", "value": n},
		}
	}
	return nil
}
