// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/liftlens/internal/cache"
	"github.com/tomtom215/liftlens/internal/dataset"
	"github.com/tomtom215/liftlens/internal/logging"
	"github.com/tomtom215/liftlens/internal/metrics"
	"github.com/tomtom215/liftlens/internal/recommend"
)

// Version is reported by the health endpoint; set at build time with
// -ldflags "-X github.com/tomtom215/liftlens/internal/api.Version=...".
var Version = "dev"

// HandlerConfig holds the settings the handlers need.
type HandlerConfig struct {
	// Recommend configures each per-request engine.
	Recommend *recommend.Config

	// MaxUploadBytes caps the multipart body of an upload.
	MaxUploadBytes int64

	// CacheSize bounds the preprocessed recording cache; 0 disables it.
	CacheSize int

	// CacheTTL is how long a cached recording stays valid.
	CacheTTL time.Duration
}

// Handler serves the Liftlens API.
type Handler struct {
	catalog   *dataset.Catalog
	config    HandlerConfig
	observer  recommend.Observer
	tables    *cache.LRUCache[*dataset.ProcessedTable]
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates the API handler. A nil cfg.Recommend uses the
// recommendation defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(catalog *dataset.Catalog, cfg HandlerConfig, logger zerolog.Logger) (*Handler, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg.Recommend == nil {
		cfg.Recommend = recommend.DefaultConfig()
	}
	if err := cfg.Recommend.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 32 << 20
	}
	cfg.Recommend = cfg.Recommend.Clone()

	h := &Handler{
		catalog:   catalog,
		config:    cfg,
		observer:  metrics.EngineObserver{},
		logger:    logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
	if cfg.CacheSize > 0 {
		h.tables = cache.NewLRUCache[*dataset.ProcessedTable](cfg.CacheSize, cfg.CacheTTL)
	}
	return h, nil
}

// catalogTable returns the cleaned newest recording for exercise and
// sensor. Cache entries are keyed by path, size and modification time, so
// a rewritten file is preprocessed again.
func (h *Handler) catalogTable(ctx context.Context, exercise string, sensor dataset.Sensor) (*dataset.ProcessedTable, error) {
	if h.tables == nil {
		raw, err := h.catalog.LoadSensor(ctx, exercise, sensor)
		if err != nil {
			return nil, err
		}
		return h.preprocess(ctx, sourceCatalog, raw, dataset.MetaMotionSchema(raw.Columns()))
	}

	path, err := h.catalog.Path(exercise, sensor)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat recording: %w", err)
	}
	key := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())

	if table, ok := h.tables.Get(key); ok {
		metrics.RecordTableCache(true)
		return table, nil
	}
	metrics.RecordTableCache(false)

	raw, err := h.catalog.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	table, err := h.preprocess(ctx, sourceCatalog, raw, dataset.MetaMotionSchema(raw.Columns()))
	if err != nil {
		return nil, err
	}
	h.tables.Add(key, table)
	return table, nil
}

// TableCacheStats reports the recording cache counters. The zero value is
// returned when the cache is disabled.
func (h *Handler) TableCacheStats() cache.Stats {
	if h.tables == nil {
		return cache.Stats{}
	}
	return h.tables.Stats()
}

// preprocess cleans raw with schema and records the run under source.
func (h *Handler) preprocess(ctx context.Context, source string, raw *dataset.RawTable, schema dataset.Schema) (*dataset.ProcessedTable, error) {
	start := time.Now()
	table, err := dataset.Preprocess(raw, schema)
	metrics.RecordPreprocess(source, table, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r := table.Report()
	logger := logging.CtxWith(ctx).Str("source", source).Logger()
	logger.Debug().
		Int("rows_in", r.RowsIn).
		Int("rows_out", r.RowsOut).
		Int("duplicates_removed", r.DuplicatesRemoved).
		Int("cells_filled", r.CellsFilled).
		Int("cells_still_missing", r.CellsStillMissing).
		Msg("recording preprocessed")

	return table, nil
}

// recommend fits a fresh engine on table and queries it once.
func (h *Handler) recommend(ctx context.Context, table *dataset.ProcessedTable, prefs recommend.Preferences, profile *recommend.Profile, n int) ([]recommend.Recommendation, []string, error) {
	engine, err := recommend.NewEngine(h.config.Recommend, logging.CtxWith(ctx).Logger())
	if err != nil {
		return nil, nil, err
	}
	engine.SetObserver(h.observer)

	if err := engine.Load(table); err != nil {
		return nil, nil, err
	}
	recs, err := engine.GetRecommendations(ctx, prefs, profile, n)
	if err != nil {
		return nil, nil, err
	}
	columns, err := engine.FeatureColumns()
	if err != nil {
		return nil, nil, err
	}
	return recs, columns, nil
}
