// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/liftlens/internal/logging"
)

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks the whole configuration and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateSupervisor()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		return fmt.Errorf("HTTP timeouts must not be negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.DataDir) == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Dataset.MaxUploadBytes <= 0 {
		return fmt.Errorf("DATASET_MAX_UPLOAD_BYTES must be positive")
	}
	if c.Dataset.RefreshInterval < 0 {
		return fmt.Errorf("DATASET_REFRESH_INTERVAL must not be negative")
	}
	if c.Dataset.CacheSize < 0 || c.Dataset.CacheSize > 10000 {
		return fmt.Errorf("DATASET_CACHE_SIZE must be between 0 and 10000, got %d", c.Dataset.CacheSize)
	}
	if c.Dataset.CacheSize > 0 && c.Dataset.CacheTTL <= 0 {
		return fmt.Errorf("DATASET_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("CORS_ORIGINS must not contain empty entries")
		}
	}
	return c.validateRateLimits()
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQS must be between 1 and 100000")
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h")
	}
	return nil
}

func (c *Config) validateSupervisor() error {
	if c.Supervisor.FailureThreshold < 0 || c.Supervisor.FailureDecay < 0 {
		return fmt.Errorf("supervisor failure threshold and decay must not be negative")
	}
	if c.Supervisor.FailureBackoff < 0 || c.Supervisor.ShutdownTimeout < 0 {
		return fmt.Errorf("supervisor durations must not be negative")
	}
	return nil
}
