// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, "timeouts"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"console format", func(c *Config) { c.Logging.Format = "Console" }, ""},
		{"empty data dir", func(c *Config) { c.Dataset.DataDir = " " }, "DATA_DIR"},
		{"zero upload limit", func(c *Config) { c.Dataset.MaxUploadBytes = 0 }, "DATASET_MAX_UPLOAD_BYTES"},
		{"negative refresh", func(c *Config) { c.Dataset.RefreshInterval = -time.Minute }, "DATASET_REFRESH_INTERVAL"},
		{"zero refresh disables", func(c *Config) { c.Dataset.RefreshInterval = 0 }, ""},
		{"negative cache size", func(c *Config) { c.Dataset.CacheSize = -1 }, "DATASET_CACHE_SIZE"},
		{"zero cache ttl", func(c *Config) { c.Dataset.CacheTTL = 0 }, "DATASET_CACHE_TTL"},
		{"cache disabled ignores ttl", func(c *Config) { c.Dataset.CacheSize = 0; c.Dataset.CacheTTL = 0 }, ""},
		{"recommend invalid", func(c *Config) { c.Recommend.DefaultN = 0 }, "recommend"},
		{"empty cors entry", func(c *Config) { c.Security.CORSOrigins = []string{"https://a", ""} }, "CORS_ORIGINS"},
		{"rate limit reqs", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQS"},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"negative supervisor threshold", func(c *Config) { c.Supervisor.FailureThreshold = -1 }, "supervisor"},
		{"negative supervisor backoff", func(c *Config) { c.Supervisor.FailureBackoff = -time.Second }, "supervisor"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	t.Parallel()

	s := defaultConfig().String()
	for _, want := range []string{"server=0.0.0.0:8080", "data_dir=./data/raw", "query_scaling=raw"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
