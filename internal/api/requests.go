// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package api

import (
	"github.com/tomtom215/liftlens/internal/dataset"
	"github.com/tomtom215/liftlens/internal/recommend"
)

// Upload schema modes.
const (
	SchemaInferred   = "inferred"
	SchemaMetaMotion = "metamotion"
)

// ProfileRequest is the optional user profile of a recommendation request.
// Any absent field disables profile annotation.
type ProfileRequest struct {
	Weight            *float64 `json:"weight,omitempty" validate:"omitempty,gt=0,finite"`
	Height            *float64 `json:"height,omitempty" validate:"omitempty,gt=0,finite"`
	Age               *int     `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender            *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Goals             []string `json:"goals,omitempty" validate:"omitempty,max=16,dive,min=1,max=64"`
	Experience        *string  `json:"experience,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	MedicalConditions *string  `json:"medical_conditions,omitempty" validate:"omitempty,max=1024"`
}

// toProfile converts the request into a recommend.Profile. A nil request
// yields a nil profile.
func (p *ProfileRequest) toProfile() *recommend.Profile {
	if p == nil {
		return nil
	}
	return &recommend.Profile{
		Weight:            p.Weight,
		Height:            p.Height,
		Age:               p.Age,
		Gender:            p.Gender,
		Goals:             p.Goals,
		Experience:        p.Experience,
		MedicalConditions: p.MedicalConditions,
	}
}

// RecommendationRequest is the body of POST /api/v1/recommendations.
//
//	{"exercise": "bench", "sensor": "accelerometer",
//	 "preferences": {"x-axis (g)": 0.4}, "n": 5,
//	 "profile": {"weight": 70, "height": 175, "age": 30, "gender": "female",
//	             "goals": ["Muscle Gain"], "experience": "Beginner"}}
type RecommendationRequest struct {
	Exercise    string             `json:"exercise" validate:"required,exercise"`
	Sensor      string             `json:"sensor" validate:"required,oneof=accelerometer gyroscope"`
	Preferences map[string]float64 `json:"preferences" validate:"max=256,dive,keys,min=1,max=128,endkeys,finite"`
	Profile     *ProfileRequest    `json:"profile,omitempty"`
	N           int                `json:"n" validate:"gte=0"`
}

// sensor returns the validated sensor.
func (r *RecommendationRequest) sensor() dataset.Sensor {
	s, _ := dataset.ParseSensor(r.Sensor)
	return s
}

// UploadRecommendationRequest is the "request" part of
// POST /api/v1/recommendations/upload. The table comes from the "file" part.
type UploadRecommendationRequest struct {
	Preferences map[string]float64 `json:"preferences" validate:"max=256,dive,keys,min=1,max=128,endkeys,finite"`
	Profile     *ProfileRequest    `json:"profile,omitempty"`
	N           int                `json:"n" validate:"gte=0"`
	Schema      string             `json:"schema,omitempty" validate:"omitempty,oneof=inferred metamotion"`
}

// ExerciseParams holds the {name} path parameter.
type ExerciseParams struct {
	Name string `json:"name" validate:"required,exercise"`
}
