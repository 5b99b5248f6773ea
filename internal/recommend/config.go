// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import "fmt"

// QueryScaling selects how the preference vector is compared to the
// standardized feature rows.
type QueryScaling string

const (
	// QueryScalingRaw compares the query as given.
	QueryScalingRaw QueryScaling = "raw"
	// QueryScalingScaled standardizes the query with the model's statistics.
	QueryScalingScaled QueryScaling = "scaled"
)

// Valid reports whether s is a known mode.
func (s QueryScaling) Valid() bool {
	return s == QueryScalingRaw || s == QueryScalingScaled
}

// Config contains all configuration for the recommendation engine.
type Config struct {
	// DefaultN replaces a non-positive n at the Engine boundary.
	// Default: 5.
	DefaultN int `json:"default_n" koanf:"default_n"`

	// MaxN is the largest n the API accepts. The engine itself only clamps
	// to the row count.
	// Default: 100.
	MaxN int `json:"max_n" koanf:"max_n"`

	// QueryScaling selects raw or scaled query comparison.
	// Default: raw.
	QueryScaling QueryScaling `json:"query_scaling" koanf:"query_scaling"`

	// BMIUnderweight is the BMI below which strength work is suggested.
	// Default: 18.5.
	BMIUnderweight float64 `json:"bmi_underweight" koanf:"bmi_underweight"`

	// BMIOverweight is the BMI above which cardio work is suggested.
	// Default: 25.
	BMIOverweight float64 `json:"bmi_overweight" koanf:"bmi_overweight"`

	// AdultAge is the minimum age reported as age appropriate.
	// Default: 18.
	AdultAge int `json:"adult_age" koanf:"adult_age"`

	// SeniorAge is the age above which low-impact work is suggested.
	// Default: 50.
	SeniorAge int `json:"senior_age" koanf:"senior_age"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultN:       5,
		MaxN:           100,
		QueryScaling:   QueryScalingRaw,
		BMIUnderweight: 18.5,
		BMIOverweight:  25,
		AdultAge:       18,
		SeniorAge:      50,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultN < 1 {
		return fmt.Errorf("default_n must be positive, got %d", c.DefaultN)
	}
	if c.MaxN < c.DefaultN {
		return fmt.Errorf("max_n must be >= default_n, got %d < %d", c.MaxN, c.DefaultN)
	}
	if !c.QueryScaling.Valid() {
		return fmt.Errorf("query_scaling must be %q or %q, got %q", QueryScalingRaw, QueryScalingScaled, c.QueryScaling)
	}
	if c.BMIUnderweight <= 0 || c.BMIOverweight < c.BMIUnderweight {
		return fmt.Errorf("bmi thresholds must satisfy 0 < underweight <= overweight, got %g and %g", c.BMIUnderweight, c.BMIOverweight)
	}
	if c.AdultAge < 0 || c.SeniorAge < c.AdultAge {
		return fmt.Errorf("age thresholds must satisfy 0 <= adult <= senior, got %d and %d", c.AdultAge, c.SeniorAge)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// countOrDefault substitutes DefaultN for n <= 0. Larger counts are left to
// the model, which clamps them to the row count.
func (c *Config) countOrDefault(n int) int {
	if n <= 0 {
		return c.DefaultN
	}
	return n
}
