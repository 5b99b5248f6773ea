// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import (
	"github.com/goccy/go-json"
)

// Preferences maps feature column names to the user's desired values.
type Preferences map[string]float64

// ProfileAdjustments is the profile summary attached to each result.
type ProfileAdjustments struct {
	// BMI is weight (kg) / height (m)^2.
	BMI float64 `json:"bmi"`

	// AgeAppropriate is true when the user is at least Config.AdultAge.
	AgeAppropriate bool `json:"age_appropriate"`

	// ExperienceLevel echoes the profile's experience.
	ExperienceLevel string `json:"experience_level"`

	// Goals echoes the profile's goals.
	Goals []string `json:"goals"`
}

// Recommendation is one ranked row of the reference table.
type Recommendation struct {
	// Exercise holds every column of the source row (float64, string, or nil).
	Exercise map[string]any

	// SimilarityScore is the cosine similarity to the query, in [-1, 1].
	SimilarityScore float64

	// Row is the index of the source row in the processed table.
	Row int

	// Adjustments is set iff a complete profile was supplied.
	Adjustments *ProfileAdjustments

	// Notes is non-nil iff Adjustments is set; it may be empty.
	Notes []string
}

// recommendationJSON is the wire form of Recommendation.
type recommendationJSON struct {
	Exercise           map[string]any      `json:"exercise"`
	SimilarityScore    float64             `json:"similarity_score"`
	ProfileAdjustments *ProfileAdjustments `json:"profile_adjustments,omitempty"`
	PersonalizedNotes  *[]string           `json:"personalized_notes,omitempty"`
}

// MarshalJSON emits profile_adjustments and personalized_notes only for
// annotated results; personalized_notes is [] when no rule matched.
//
//nolint:gocritic // value receiver so both values and pointers marshal the same
func (r Recommendation) MarshalJSON() ([]byte, error) {
	w := recommendationJSON{
		Exercise:           r.Exercise,
		SimilarityScore:    r.SimilarityScore,
		ProfileAdjustments: r.Adjustments,
	}
	if r.Adjustments != nil {
		notes := r.Notes
		if notes == nil {
			notes = []string{}
		}
		w.PersonalizedNotes = &notes
	}
	return json.Marshal(w)
}

// UnmarshalJSON is the inverse of MarshalJSON. Row is not carried on the wire.
func (r *Recommendation) UnmarshalJSON(data []byte) error {
	var w recommendationJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.Exercise = w.Exercise
	r.SimilarityScore = w.SimilarityScore
	r.Adjustments = w.ProfileAdjustments
	r.Notes = nil
	if w.PersonalizedNotes != nil {
		r.Notes = *w.PersonalizedNotes
	}
	return nil
}
