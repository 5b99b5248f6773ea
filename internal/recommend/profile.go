// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import (
	"fmt"
	"math"
	"slices"
)

// Experience levels with dedicated notes.
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

// Goals with dedicated notes.
const (
	GoalWeightLoss  = "Weight Loss"
	GoalMuscleGain  = "Muscle Gain"
	GoalFlexibility = "Flexibility"
)

// Personalized notes, in the order they are evaluated.
const (
	NoteUnderweight = "Consider focusing on strength training and muscle building exercises."
	NoteOverweight  = "Consider incorporating more cardio and endurance exercises."
	NoteSenior      = "Focus on low-impact exercises and proper form."
	NoteBeginner    = "Start with basic exercises and focus on proper form."
	NoteAdvanced    = "You can handle more intense and complex exercises."
	NoteWeightLoss  = "Include high-intensity interval training (HIIT) in your routine."
	NoteMuscleGain  = "Focus on progressive overload and compound exercises."
	NoteFlexibility = "Include stretching and mobility exercises."
)

// Profile describes the requesting user. A nil field is absent.
type Profile struct {
	// Weight in kilograms.
	Weight *float64 `json:"weight,omitempty"`

	// Height in centimeters.
	Height *float64 `json:"height,omitempty"`

	Age        *int     `json:"age,omitempty"`
	Gender     *string  `json:"gender,omitempty"`
	Goals      []string `json:"goals,omitempty"`
	Experience *string  `json:"experience,omitempty"`

	// MedicalConditions is free text, informational and never required.
	MedicalConditions *string `json:"medical_conditions,omitempty"`
}

// IsComplete reports whether every required field is present.
// An empty, non-nil Goals list counts as present.
func (p *Profile) IsComplete() bool {
	return p != nil &&
		p.Weight != nil &&
		p.Height != nil &&
		p.Age != nil &&
		p.Gender != nil &&
		p.Goals != nil &&
		p.Experience != nil
}

// BMI returns weight / (height in meters)^2.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// annotate computes the adjustments and notes for a complete profile.
// Every rule is evaluated; the BMI rules are mutually exclusive by value.
func annotate(p *Profile, cfg *Config) (*ProfileAdjustments, []string, error) {
	if *p.Height <= 0 || *p.Weight <= 0 || *p.Age < 0 {
		return nil, nil, fmt.Errorf("%w: weight %g, height %g, age %d", ErrProfile, *p.Weight, *p.Height, *p.Age)
	}

	bmi := BMI(*p.Weight, *p.Height)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return nil, nil, fmt.Errorf("%w: bmi is not finite", ErrProfile)
	}

	adj := &ProfileAdjustments{
		BMI:             bmi,
		AgeAppropriate:  *p.Age >= cfg.AdultAge,
		ExperienceLevel: *p.Experience,
		Goals:           append([]string{}, p.Goals...),
	}

	notes := []string{}
	switch {
	case bmi < cfg.BMIUnderweight:
		notes = append(notes, NoteUnderweight)
	case bmi > cfg.BMIOverweight:
		notes = append(notes, NoteOverweight)
	}

	if *p.Age > cfg.SeniorAge {
		notes = append(notes, NoteSenior)
	}

	switch *p.Experience {
	case ExperienceBeginner:
		notes = append(notes, NoteBeginner)
	case ExperienceAdvanced:
		notes = append(notes, NoteAdvanced)
	}

	if slices.Contains(p.Goals, GoalWeightLoss) {
		notes = append(notes, NoteWeightLoss)
	}
	if slices.Contains(p.Goals, GoalMuscleGain) {
		notes = append(notes, NoteMuscleGain)
	}
	if slices.Contains(p.Goals, GoalFlexibility) {
		notes = append(notes, NoteFlexibility)
	}

	return adj, notes, nil
}
