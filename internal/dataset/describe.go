// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import "math"

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Describe summarizes every numeric column, skipping missing cells.
// Std is the sample standard deviation and is 0 when Count < 2.
// Columns with no values report Count 0 and zero statistics.
func (t *ProcessedTable) Describe() []ColumnSummary {
	out := make([]ColumnSummary, 0, len(t.columns))
	for j, c := range t.columns {
		if c.Kind != KindNumeric {
			continue
		}

		s := ColumnSummary{Name: c.Name, Min: math.Inf(1), Max: math.Inf(-1)}
		var sum float64
		for _, row := range t.rows {
			f, ok := row[j].Float()
			if !ok {
				continue
			}
			s.Count++
			sum += f
			s.Min = math.Min(s.Min, f)
			s.Max = math.Max(s.Max, f)
		}

		if s.Count == 0 {
			s.Min, s.Max = 0, 0
			out = append(out, s)
			continue
		}
		s.Mean = sum / float64(s.Count)

		if s.Count > 1 {
			var ss float64
			for _, row := range t.rows {
				if f, ok := row[j].Float(); ok {
					d := f - s.Mean
					ss += d * d
				}
			}
			s.Std = math.Sqrt(ss / float64(s.Count-1))
		}
		out = append(out, s)
	}
	return out
}
