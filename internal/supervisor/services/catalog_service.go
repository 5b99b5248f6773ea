// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExerciseLister is satisfied by *dataset.Catalog.
type ExerciseLister interface {
	Exercises() ([]string, error)
}

// CatalogRefreshService rescans the recording catalog on an interval and
// reports the number of distinct exercises through report.
type CatalogRefreshService struct {
	catalog  ExerciseLister
	interval time.Duration
	report   func(n int)
	logger   zerolog.Logger

	// last is touched only by the Serve goroutine.
	last int
}

// NewCatalogRefreshService creates the service. A nil report is a no-op and a
// non-positive interval means 5m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogRefreshService(catalog ExerciseLister, interval time.Duration, report func(n int), logger zerolog.Logger) *CatalogRefreshService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if report == nil {
		report = func(int) {}
	}
	return &CatalogRefreshService{
		catalog:  catalog,
		interval: interval,
		report:   report,
		logger:   logger.With().Str("service", "catalog-refresh").Logger(),
		last:     -1,
	}
}

// Serve implements suture.Service. It scans once at startup and then on
// every tick. Scan failures are logged and retried on the next tick.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("catalog refresh starting")
	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog refresh shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *CatalogRefreshService) refresh() {
	start := time.Now()
	exercises, err := s.catalog.Exercises()
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog scan failed")
		return
	}

	s.report(len(exercises))
	if len(exercises) != s.last {
		s.logger.Info().
			Int("exercises", len(exercises)).
			Strs("names", exercises).
			Dur("duration", time.Since(start)).
			Msg("catalog changed")
		s.last = len(exercises)
	}
}

// String names the service in suture events.
func (s *CatalogRefreshService) String() string {
	return "catalog-refresh"
}
