// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"fmt"
)

// RawTable is an uncleaned recording: a header and rows of equal width.
// Rows may contain duplicates and gaps.
type RawTable struct {
	columns []string
	rows    [][]Value
}

// NewRawTable builds a raw table, failing with ErrInput when a row's width
// differs from the header.
func NewRawTable(columns []string, rows [][]Value) (*RawTable, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrInput, i, len(row), len(columns))
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)
	data := make([][]Value, len(rows))
	for i, row := range rows {
		data[i] = append([]Value(nil), row...)
	}

	return &RawTable{columns: cols, rows: data}, nil
}

// RawTableFromRecords builds a raw table from name->value records.
// Keys absent from a record become Missing; keys not in columns are ignored.
func RawTableFromRecords(columns []string, records []map[string]any) *RawTable {
	cols := make([]string, len(columns))
	copy(cols, columns)

	rows := make([][]Value, len(records))
	for i, rec := range records {
		row := make([]Value, len(cols))
		for j, name := range cols {
			row[j] = ValueOf(rec[name])
		}
		rows[i] = row
	}

	return &RawTable{columns: cols, rows: rows}
}

// Columns returns a copy of the header.
func (t *RawTable) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows.
func (t *RawTable) Len() int {
	return len(t.rows)
}

// Row returns a copy of row i.
func (t *RawTable) Row(i int) []Value {
	return append([]Value(nil), t.rows[i]...)
}

// ProcessedTable is the cleaned, typed form of a RawTable.
// It is immutable; every accessor returns copies.
type ProcessedTable struct {
	columns []Column
	index   map[string]int
	rows    [][]Value
	report  Report
}

// Len returns the number of rows.
func (t *ProcessedTable) Len() int {
	return len(t.rows)
}

// Columns returns the column descriptors in order.
func (t *ProcessedTable) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns the column names in order.
func (t *ProcessedTable) ColumnNames() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name
	}
	return out
}

// NumericColumns returns the names of numeric columns in table order.
func (t *ProcessedTable) NumericColumns() []string {
	out := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if c.Kind == KindNumeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// Kind returns the kind of the named column.
func (t *ProcessedTable) Kind(name string) (ColumnKind, bool) {
	j, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.columns[j].Kind, true
}

// Value returns the cell at row i in the named column.
func (t *ProcessedTable) Value(i int, name string) (Value, bool) {
	j, ok := t.index[name]
	if !ok || i < 0 || i >= len(t.rows) {
		return Value{}, false
	}
	return t.rows[i][j], true
}

// Float returns the numeric cell at row i in the named column.
// ok is false for missing cells, categorical columns, and unknown names.
func (t *ProcessedTable) Float(i int, name string) (float64, bool) {
	v, ok := t.Value(i, name)
	if !ok || !v.IsNumber() {
		return 0, false
	}
	return v.Float()
}

// Record returns row i as a name->value map (float64, string, or nil).
func (t *ProcessedTable) Record(i int) map[string]any {
	rec := make(map[string]any, len(t.columns))
	for j, c := range t.columns {
		rec[c.Name] = t.rows[i][j].Interface()
	}
	return rec
}

// Records returns every row as a name->value map.
func (t *ProcessedTable) Records() []map[string]any {
	out := make([]map[string]any, len(t.rows))
	for i := range t.rows {
		out[i] = t.Record(i)
	}
	return out
}

// Report returns the statistics gathered while preprocessing.
func (t *ProcessedTable) Report() Report {
	return t.report
}
