// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/liftlens/internal/dataset"
)

// Model is a fitted, immutable recommendation model over one table.
// It is safe for concurrent use.
type Model struct {
	table    *dataset.ProcessedTable
	features *FeatureMatrix
	config   *Config
	fittedAt time.Time
}

// Fit builds a Model from a processed table. A nil cfg uses DefaultConfig.
func Fit(table *dataset.ProcessedTable, cfg *Config) (*Model, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: table is nil", dataset.ErrInput)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Model{
		table:    table,
		features: NewFeatureMatrix(table),
		config:   cfg.Clone(),
		fittedAt: time.Now(),
	}, nil
}

// Table returns the source table.
func (m *Model) Table() *dataset.ProcessedTable {
	return m.table
}

// Features returns the standardized feature matrix.
func (m *Model) Features() *FeatureMatrix {
	return m.features
}

// FeatureColumns returns the feature column names in query order.
func (m *Model) FeatureColumns() []string {
	return m.features.Columns()
}

// Len returns the number of rankable rows.
func (m *Model) Len() int {
	return m.table.Len()
}

// FittedAt returns when the model was built.
func (m *Model) FittedAt() time.Time {
	return m.fittedAt
}

// Scores returns the similarity of every row to prefs, in row order.
func (m *Model) Scores(prefs Preferences) ([]float64, error) {
	q, err := m.features.Query(prefs, m.config.QueryScaling)
	if err != nil {
		return nil, err
	}
	return m.features.Similarities(q), nil
}

// Recommend returns up to n rows ranked by similarity to prefs.
// n <= 0 yields an empty result; n larger than the table returns every row.
// profile may be nil; results are annotated only for a complete profile.
func (m *Model) Recommend(prefs Preferences, profile *Profile, n int) ([]Recommendation, error) {
	return m.RecommendContext(context.Background(), prefs, profile, n)
}

// RecommendContext is Recommend with cancellation checked between phases.
func (m *Model) RecommendContext(ctx context.Context, prefs Preferences, profile *Profile, n int) ([]Recommendation, error) {
	var (
		adj   *ProfileAdjustments
		notes []string
	)
	if profile.IsComplete() {
		var err error
		if adj, notes, err = annotate(profile, m.config); err != nil {
			return nil, err
		}
	}

	scores, err := m.Scores(prefs)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selected := topN(scores, n)
	recs := make([]Recommendation, len(selected))
	for k, i := range selected {
		recs[k] = Recommendation{
			Exercise:        m.table.Record(i),
			SimilarityScore: scores[i],
			Row:             i,
		}
		if adj != nil {
			a := *adj
			a.Goals = append([]string{}, adj.Goals...)
			recs[k].Adjustments = &a
			recs[k].Notes = append([]string{}, notes...)
		}
	}
	return recs, nil
}
