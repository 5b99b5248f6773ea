// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package recommend

import (
	"fmt"
	"math"

	"github.com/tomtom215/liftlens/internal/dataset"
)

// FeatureMatrix is the standardized numeric view of a processed table.
// Row i corresponds to row i of the source table.
type FeatureMatrix struct {
	columns []string
	means   []float64
	scales  []float64
	rows    [][]float64
}

// NewFeatureMatrix selects the numeric columns of table, reads missing cells
// as 0, and standardizes each column with its mean and population standard
// deviation. Constant columns get scale 0 and scaled value 0.
func NewFeatureMatrix(table *dataset.ProcessedTable) *FeatureMatrix {
	columns := table.NumericColumns()
	n, dim := table.Len(), len(columns)

	raw := make([][]float64, n)
	for i := range raw {
		raw[i] = make([]float64, dim)
		for j, name := range columns {
			if f, ok := table.Float(i, name); ok {
				raw[i][j] = f
			}
		}
	}

	means := make([]float64, dim)
	scales := make([]float64, dim)
	for j := 0; j < dim; j++ {
		means[j], scales[j] = columnStats(raw, j)
	}

	for _, row := range raw {
		for j := range row {
			row[j] = standardize(row[j], means[j], scales[j])
		}
	}

	return &FeatureMatrix{
		columns: columns,
		means:   means,
		scales:  scales,
		rows:    raw,
	}
}

// columnStats returns the mean and population standard deviation of column
// j. A column whose values are all equal reports scale 0 exactly, even when
// rounding would leave a tiny residual variance.
func columnStats(rows [][]float64, j int) (mean, scale float64) {
	if len(rows) == 0 {
		return 0, 0
	}

	first := rows[0][j]
	constant := true
	var sum float64
	for _, row := range rows {
		sum += row[j]
		if row[j] != first {
			constant = false
		}
	}
	mean = sum / float64(len(rows))
	if constant {
		return first, 0
	}

	var ss float64
	for _, row := range rows {
		d := row[j] - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(rows)))
}

func standardize(x, mean, scale float64) float64 {
	if scale == 0 {
		return 0
	}
	return (x - mean) / scale
}

// Columns returns the feature column names in matrix order.
func (m *FeatureMatrix) Columns() []string {
	return append([]string(nil), m.columns...)
}

// Means returns the per-column means used for standardization.
func (m *FeatureMatrix) Means() []float64 {
	return append([]float64(nil), m.means...)
}

// Scales returns the per-column standard deviations; 0 marks a constant column.
func (m *FeatureMatrix) Scales() []float64 {
	return append([]float64(nil), m.scales...)
}

// Dim returns the number of feature columns.
func (m *FeatureMatrix) Dim() int {
	return len(m.columns)
}

// Len returns the number of rows.
func (m *FeatureMatrix) Len() int {
	return len(m.rows)
}

// Row returns a copy of standardized row i.
func (m *FeatureMatrix) Row(i int) []float64 {
	return append([]float64(nil), m.rows[i]...)
}

// Rows returns a copy of every standardized row.
func (m *FeatureMatrix) Rows() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i := range m.rows {
		out[i] = m.Row(i)
	}
	return out
}

// Query places prefs in the feature space. Absent keys are 0 and unknown
// keys are ignored. In scaled mode the whole vector, defaults included, is
// standardized like the rows.
func (m *FeatureMatrix) Query(prefs Preferences, mode QueryScaling) ([]float64, error) {
	q := make([]float64, len(m.columns))
	for j, name := range m.columns {
		v := prefs[name]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q is %v", ErrShape, name, v)
		}
		if mode == QueryScalingScaled {
			v = standardize(v, m.means[j], m.scales[j])
		}
		q[j] = v
	}
	return q, nil
}

// Similarities scores every row against q.
func (m *FeatureMatrix) Similarities(q []float64) []float64 {
	scores := make([]float64, len(m.rows))
	for i, row := range m.rows {
		scores[i] = CosineSimilarity(q, row)
	}
	return scores
}
