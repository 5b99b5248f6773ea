// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/liftlens/internal/dataset"
)

const namespace = "liftlens"

var (
	// Preprocessing Metrics
	PreprocessRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preprocess_runs_total",
			Help:      "Total number of tables preprocessed",
		},
		[]string{"source", "result"},
	)

	PreprocessRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preprocess_rows_total",
			Help:      "Rows entering and leaving preprocessing",
		},
		[]string{"stage"},
	)

	PreprocessDuplicates = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preprocess_duplicates_removed_total",
			Help:      "Rows dropped as exact duplicates",
		},
	)

	PreprocessCellsFilled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preprocess_cells_filled_total",
			Help:      "Missing cells repaired by forward-fill",
		},
	)

	PreprocessCellsMissing = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preprocess_cells_missing_total",
			Help:      "Missing cells with no preceding value to carry forward",
		},
	)

	PreprocessDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "preprocess_duration_seconds",
			Help:      "Time spent preprocessing one table",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_requests_total",
			Help:      "Recommendation requests by outcome",
		},
		[]string{"result"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_duration_seconds",
			Help:      "Time spent ranking one request",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	ModelFits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_fits_total",
			Help:      "Feature matrices built",
		},
	)

	ModelFitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "model_fit_duration_seconds",
			Help:      "Time spent standardizing one table",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	ModelRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_rows",
			Help:      "Rows in the most recently fitted model",
		},
	)

	ModelFeatures = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_features",
			Help:      "Feature columns in the most recently fitted model",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Current number of in-flight API requests",
		},
	)

	CatalogExercises = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_exercises",
			Help:      "Exercises found on the last catalog scan",
		},
	)

	TableCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_cache_requests_total",
			Help:      "Lookups of preprocessed catalog recordings",
		},
		[]string{"result"}, // hit, miss
	)
)

// Preprocess results.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

// RecordPreprocess records one Preprocess call. table may be nil when err
// is set.
func RecordPreprocess(source string, table *dataset.ProcessedTable, duration time.Duration, err error) {
	PreprocessDuration.Observe(duration.Seconds())
	if err != nil || table == nil {
		PreprocessRuns.WithLabelValues(source, ResultInvalid).Inc()
		return
	}

	PreprocessRuns.WithLabelValues(source, ResultOK).Inc()
	r := table.Report()
	PreprocessRows.WithLabelValues("in").Add(float64(r.RowsIn))
	PreprocessRows.WithLabelValues("out").Add(float64(r.RowsOut))
	PreprocessDuplicates.Add(float64(r.DuplicatesRemoved))
	PreprocessCellsFilled.Add(float64(r.CellsFilled))
	PreprocessCellsMissing.Add(float64(r.CellsStillMissing))
}

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetCatalogExercises records the size of the latest catalog scan.
func SetCatalogExercises(n int) {
	CatalogExercises.Set(float64(n))
}

// RecordTableCache records one lookup in the preprocessed table cache.
func RecordTableCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	TableCacheRequests.WithLabelValues(result).Inc()
}

// EngineObserver forwards recommendation engine events to Prometheus.
type EngineObserver struct{}

// ObserveFit records a model fit.
func (EngineObserver) ObserveFit(rows, features int, d time.Duration) {
	ModelFits.Inc()
	ModelFitDuration.Observe(d.Seconds())
	ModelRows.Set(float64(rows))
	ModelFeatures.Set(float64(features))
}

// ObserveRecommend records a recommendation request.
func (EngineObserver) ObserveRecommend(result string, d time.Duration) {
	RecommendRequests.WithLabelValues(result).Inc()
	RecommendDuration.Observe(d.Seconds())
}
