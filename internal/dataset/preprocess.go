// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"fmt"
	"strings"
)

// Report summarizes what preprocessing changed.
type Report struct {
	// RowsIn is the raw row count.
	RowsIn int `json:"rows_in"`

	// RowsOut is the processed row count.
	RowsOut int `json:"rows_out"`

	// DuplicatesRemoved is the number of rows dropped as exact duplicates.
	DuplicatesRemoved int `json:"duplicates_removed"`

	// CellsFilled is the number of gaps repaired by forward-fill.
	CellsFilled int `json:"cells_filled"`

	// CellsStillMissing counts gaps with no preceding value in their column.
	CellsStillMissing int `json:"cells_still_missing"`
}

// Preprocess deduplicates, forward-fills, and type-tags a raw table.
//
// It fails with ErrInput when the table has no rows or no columns, when the
// schema does not declare every column, or when a numeric column holds a
// non-numeric value. Duplicates and gaps are repaired, never reported as
// errors.
func Preprocess(raw *RawTable, schema Schema) (*ProcessedTable, error) {
	if raw == nil || len(raw.columns) == 0 {
		return nil, fmt.Errorf("%w: table has no columns", ErrInput)
	}
	if len(raw.rows) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", ErrInput)
	}

	kinds, missing, ok := schema.Kinds(raw.columns)
	if !ok {
		return nil, fmt.Errorf("%w: schema does not declare column %q", ErrInput, missing)
	}

	report := Report{RowsIn: len(raw.rows)}

	// Cells take their declared kind before rows are compared, so 1 and "1"
	// in a categorical column are the same value.
	typed, err := coerce(raw.rows, raw.columns, kinds)
	if err != nil {
		return nil, err
	}

	rows := deduplicate(typed)
	report.DuplicatesRemoved = len(raw.rows) - len(rows)

	report.CellsFilled, report.CellsStillMissing = forwardFill(rows, len(raw.columns))
	report.RowsOut = len(rows)

	columns := make([]Column, len(raw.columns))
	index := make(map[string]int, len(raw.columns))
	for j, name := range raw.columns {
		columns[j] = Column{Name: name, Kind: kinds[j]}
		index[name] = j
	}

	return &ProcessedTable{
		columns: columns,
		index:   index,
		rows:    rows,
		report:  report,
	}, nil
}

// PreprocessInferred runs Preprocess with a schema inferred from the data.
func PreprocessInferred(raw *RawTable) (*ProcessedTable, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: table is nil", ErrInput)
	}
	return Preprocess(raw, InferSchema(raw))
}

// deduplicate returns the first occurrence of every distinct row, in
// original order.
func deduplicate(rows [][]Value) [][]Value {
	seen := make(map[string]struct{}, len(rows))
	out := make([][]Value, 0, len(rows))

	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		for _, v := range row {
			k := v.key()
			// length prefix keeps "a|b" and "a", "b" distinct
			fmt.Fprintf(&sb, "%d:%s|", len(k), k)
		}
		key := sb.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}

// forwardFill replaces each missing cell with the nearest preceding
// non-missing value in its column, in place.
func forwardFill(rows [][]Value, width int) (filled, stillMissing int) {
	for j := 0; j < width; j++ {
		var last Value
		seeded := false
		for i := range rows {
			if !rows[i][j].IsMissing() {
				last = rows[i][j]
				seeded = true
				continue
			}
			if seeded {
				rows[i][j] = last
				filled++
			} else {
				stillMissing++
			}
		}
	}
	return filled, stillMissing
}

// coerce returns copies of rows with every cell converted to its column's
// declared kind. Numbers drop their source spelling; categorical cells keep
// it.
func coerce(rows [][]Value, columns []string, kinds []ColumnKind) ([][]Value, error) {
	out := make([][]Value, len(rows))
	for i, src := range rows {
		row := make([]Value, len(src))
		for j, v := range src {
			if v.IsMissing() {
				continue
			}
			switch kinds[j] {
			case KindNumeric:
				f, ok := v.Float()
				if !ok {
					return nil, fmt.Errorf("%w: column %q row %d: %q is not numeric", ErrInput, columns[j], i, v.String())
				}
				row[j] = Number(f)
			case KindCategorical:
				row[j] = Text(v.categoryText())
			}
		}
		out[i] = row
	}
	return out, nil
}
