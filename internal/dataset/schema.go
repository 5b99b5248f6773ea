// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"strings"

	"github.com/goccy/go-json"
)

// ColumnKind tags a column as numeric or categorical.
type ColumnKind int

const (
	// KindNumeric columns hold float64 values and form the feature space.
	KindNumeric ColumnKind = iota
	// KindCategorical columns hold strings drawn from a small alphabet.
	KindCategorical
)

// String returns a human-readable kind name.
func (k ColumnKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind by name.
func (k ColumnKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Column describes one column of a processed table.
type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Schema declares the kind of every column by name.
type Schema map[string]ColumnKind

// Kinds returns the declared kinds for columns in order.
// ok is false if any column is undeclared; missing names the first one.
func (s Schema) Kinds(columns []string) (kinds []ColumnKind, missing string, ok bool) {
	kinds = make([]ColumnKind, len(columns))
	for i, name := range columns {
		kind, found := s[name]
		if !found {
			return nil, name, false
		}
		kinds[i] = kind
	}
	return kinds, "", true
}

// InferSchema inspects values and marks a column numeric when every
// non-missing value is numeric. All-missing columns are numeric.
func InferSchema(raw *RawTable) Schema {
	schema := make(Schema, len(raw.columns))
	for j, name := range raw.columns {
		kind := KindNumeric
		for _, row := range raw.rows {
			v := row[j]
			if v.IsMissing() || v.IsNumber() {
				continue
			}
			if _, ok := v.Float(); !ok {
				kind = KindCategorical
				break
			}
		}
		schema[name] = kind
	}
	return schema
}

// MetaMotionSchema declares the standard MetaMotion export columns.
// epoch, elapsed, and every axis column are numeric; everything else,
// including the wall-clock "time (...)" column, is categorical.
func MetaMotionSchema(columns []string) Schema {
	schema := make(Schema, len(columns))
	for _, name := range columns {
		schema[name] = metaMotionKind(name)
	}
	return schema
}

func metaMotionKind(name string) ColumnKind {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(lower, "epoch"),
		strings.HasPrefix(lower, "elapsed"),
		strings.Contains(lower, "-axis"):
		return KindNumeric
	default:
		return KindCategorical
	}
}
