// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/liftlens/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables (see LoadWithKoanf).
//
// Config is immutable after loading and safe for concurrent reads.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Dataset    DatasetConfig    `koanf:"dataset"`
	Recommend  recommend.Config `koanf:"recommend"`
	Security   SecurityConfig   `koanf:"security"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to every event.
	Caller bool `koanf:"caller"`
}

// DatasetConfig holds recording catalog settings.
type DatasetConfig struct {
	// DataDir holds the MetaMotion CSV recordings.
	// Default: ./data/raw
	DataDir string `koanf:"data_dir"`

	// MaxUploadBytes caps the multipart body of an upload request.
	// Default: 32 MiB
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// RefreshInterval is how often the catalog is rescanned for the
	// exercise gauge. Zero disables the periodic scan.
	// Default: 5m
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// CacheSize is how many preprocessed catalog recordings are kept in
	// memory. Zero disables the cache.
	// Default: 64
	CacheSize int `koanf:"cache_size"`

	// CacheTTL bounds how long a cached recording is served.
	// Default: 10m
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// SupervisorConfig holds suture failure handling settings.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// String summarizes the configuration for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s data_dir=%s log_level=%s query_scaling=%s",
		c.Server.Addr(), c.Dataset.DataDir, c.Logging.Level, c.Recommend.QueryScaling)
}
