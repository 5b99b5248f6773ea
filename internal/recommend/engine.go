// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/liftlens/internal/dataset"
)

// Note: This package has no dependencies on other internal packages except
// dataset. Metrics are reported through the Observer interface so the
// metrics package can be wired in without an import cycle.

// Observer receives engine events for instrumentation.
type Observer interface {
	// ObserveFit is called after every successful Load.
	ObserveFit(rows, features int, d time.Duration)

	// ObserveRecommend is called once per GetRecommendations call.
	ObserveRecommend(result string, d time.Duration)
}

// Result labels passed to Observer.ObserveRecommend.
const (
	ResultOK        = "ok"
	ResultNotLoaded = "not_loaded"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

// Metrics is a snapshot of engine activity.
type Metrics struct {
	RequestCount   int64     `json:"request_count"`
	ErrorCount     int64     `json:"error_count"`
	LoadCount      int64     `json:"load_count"`
	ModelRows      int       `json:"model_rows"`
	FeatureColumns int       `json:"feature_columns"`
	LoadedAt       time.Time `json:"loaded_at,omitempty"`
}

// Engine holds the current Model and serves recommendations from it.
// Load swaps the model under a write lock; queries hold a read lock for
// their whole computation. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	mu    sync.RWMutex
	model *Model

	observer Observer

	requestCount atomic.Int64
	errorCount   atomic.Int64
	loadCount    atomic.Int64
}

// NewEngine creates an engine with no data loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetObserver installs an instrumentation hook. Call before serving.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// Load fits a Model on table and makes it current, replacing any previous one.
func (e *Engine) Load(table *dataset.ProcessedTable) error {
	start := time.Now()

	model, err := Fit(table, e.config)
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}

	e.mu.Lock()
	e.model = model
	e.mu.Unlock()

	e.loadCount.Add(1)
	elapsed := time.Since(start)
	if e.observer != nil {
		e.observer.ObserveFit(model.Len(), model.Features().Dim(), elapsed)
	}

	e.logger.Info().
		Int("rows", model.Len()).
		Strs("features", model.FeatureColumns()).
		Dur("duration", elapsed).
		Msg("model loaded")

	return nil
}

// Model returns the current model, or ErrNotLoaded.
func (e *Engine) Model() (*Model, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.model == nil {
		return nil, ErrNotLoaded
	}
	return e.model, nil
}

// FeatureColumns returns the current feature column order, or ErrNotLoaded.
func (e *Engine) FeatureColumns() ([]string, error) {
	m, err := e.Model()
	if err != nil {
		return nil, err
	}
	return m.FeatureColumns(), nil
}

// GetRecommendations ranks the loaded rows against prefs. A non-positive n
// uses Config.DefaultN; a larger n than the table has rows returns every row.
func (e *Engine) GetRecommendations(ctx context.Context, prefs Preferences, profile *Profile, n int) ([]Recommendation, error) {
	start := time.Now()
	e.requestCount.Add(1)

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.model == nil {
		e.finish(ResultNotLoaded, start)
		return nil, ErrNotLoaded
	}

	k := e.config.countOrDefault(n)
	recs, err := e.model.RecommendContext(ctx, prefs, profile, k)
	if err != nil {
		result := ResultError
		if errors.Is(err, ErrShape) || errors.Is(err, ErrProfile) {
			result = ResultInvalid
		}
		e.finish(result, start)
		return nil, err
	}

	e.finish(ResultOK, start)
	e.logger.Debug().
		Int("requested", n).
		Int("returned", len(recs)).
		Bool("profiled", profile.IsComplete()).
		Dur("duration", time.Since(start)).
		Msg("recommendations generated")

	return recs, nil
}

func (e *Engine) finish(result string, start time.Time) {
	if result != ResultOK {
		e.errorCount.Add(1)
	}
	if e.observer != nil {
		e.observer.ObserveRecommend(result, time.Since(start))
	}
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		LoadCount:    e.loadCount.Load(),
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model != nil {
		m.ModelRows = e.model.Len()
		m.FeatureColumns = e.model.Features().Dim()
		m.LoadedAt = e.model.FittedAt()
	}
	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
