// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/tomtom215/liftlens/internal/dataset"
	"github.com/tomtom215/liftlens/internal/recommend"
)

// The collectors are process globals, so these tests assert deltas and do
// not run in parallel.

func TestRecordPreprocess(t *testing.T) {
	raw, err := dataset.NewRawTable([]string{"x"}, [][]dataset.Value{
		{dataset.Missing()},
		{dataset.Number(1)},
		{dataset.Number(1)},
		{dataset.Missing()},
	})
	if err != nil {
		t.Fatalf("NewRawTable() error = %v", err)
	}
	table, err := dataset.PreprocessInferred(raw)
	if err != nil {
		t.Fatalf("PreprocessInferred() error = %v", err)
	}

	okBefore := testutil.ToFloat64(PreprocessRuns.WithLabelValues("upload", ResultOK))
	dupBefore := testutil.ToFloat64(PreprocessDuplicates)
	filledBefore := testutil.ToFloat64(PreprocessCellsFilled)
	missingBefore := testutil.ToFloat64(PreprocessCellsMissing)
	inBefore := testutil.ToFloat64(PreprocessRows.WithLabelValues("in"))

	RecordPreprocess("upload", table, time.Millisecond, nil)

	if got := testutil.ToFloat64(PreprocessRuns.WithLabelValues("upload", ResultOK)) - okBefore; got != 1 {
		t.Errorf("ok runs delta = %v, want 1", got)
	}
	// rows: [-], [1], [1], [-] -> dedupe drops the second [1] and the second [-]
	if got := testutil.ToFloat64(PreprocessDuplicates) - dupBefore; got != 2 {
		t.Errorf("duplicates delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(PreprocessCellsFilled) - filledBefore; got != 0 {
		t.Errorf("filled delta = %v, want 0", got)
	}
	if got := testutil.ToFloat64(PreprocessCellsMissing) - missingBefore; got != 1 {
		t.Errorf("still-missing delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PreprocessRows.WithLabelValues("in")) - inBefore; got != 4 {
		t.Errorf("rows in delta = %v, want 4", got)
	}

	invalidBefore := testutil.ToFloat64(PreprocessRuns.WithLabelValues("catalog", ResultInvalid))
	RecordPreprocess("catalog", nil, time.Millisecond, errors.New("bad"))
	if got := testutil.ToFloat64(PreprocessRuns.WithLabelValues("catalog", ResultInvalid)) - invalidBefore; got != 1 {
		t.Errorf("invalid runs delta = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	route := "/api/v1/exercises/{name}"
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", route, "404"))

	RecordAPIRequest("GET", route, "404", 3*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", route, "404")) - before; got != 1 {
		t.Errorf("requests delta = %v, want 1", got)
	}

	hist := &dto.Metric{}
	obs, ok := APIRequestDuration.WithLabelValues("GET", route).(interface{ Write(*dto.Metric) error })
	if !ok {
		t.Fatal("histogram does not expose Write")
	}
	if err := obs.Write(hist); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if hist.GetHistogram().GetSampleCount() == 0 {
		t.Error("duration histogram has no samples")
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("active delta = %v, want 1", got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}

func TestEngineObserver(t *testing.T) {
	var _ recommend.Observer = EngineObserver{}

	fitsBefore := testutil.ToFloat64(ModelFits)
	okBefore := testutil.ToFloat64(RecommendRequests.WithLabelValues(recommend.ResultOK))

	obs := EngineObserver{}
	obs.ObserveFit(42, 6, time.Millisecond)
	obs.ObserveRecommend(recommend.ResultOK, time.Millisecond)

	if got := testutil.ToFloat64(ModelFits) - fitsBefore; got != 1 {
		t.Errorf("fits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ModelRows); got != 42 {
		t.Errorf("model rows = %v, want 42", got)
	}
	if got := testutil.ToFloat64(ModelFeatures); got != 6 {
		t.Errorf("model features = %v, want 6", got)
	}
	if got := testutil.ToFloat64(RecommendRequests.WithLabelValues(recommend.ResultOK)) - okBefore; got != 1 {
		t.Errorf("ok requests delta = %v, want 1", got)
	}
}

func TestSetCatalogExercises(t *testing.T) {
	SetCatalogExercises(7)
	if got := testutil.ToFloat64(CatalogExercises); got != 7 {
		t.Errorf("catalog exercises = %v, want 7", got)
	}
}

func TestRecordTableCache(t *testing.T) {
	hits := TableCacheRequests.WithLabelValues("hit")
	misses := TableCacheRequests.WithLabelValues("miss")
	hitsBefore, missesBefore := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	RecordTableCache(true)
	RecordTableCache(false)
	RecordTableCache(false)

	if got := testutil.ToFloat64(hits) - hitsBefore; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(misses) - missesBefore; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}
