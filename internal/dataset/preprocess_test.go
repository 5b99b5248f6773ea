// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustRaw(t *testing.T, columns []string, rows [][]Value) *RawTable {
	t.Helper()
	raw, err := NewRawTable(columns, rows)
	if err != nil {
		t.Fatalf("NewRawTable() error = %v", err)
	}
	return raw
}

func TestPreprocess_ForwardFill(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, []string{"id", "x"}, [][]Value{
		{Number(0), Number(1)},
		{Number(1), Missing()},
		{Number(2), Missing()},
		{Number(3), Number(4)},
	})

	got, err := Preprocess(raw, Schema{"id": KindNumeric, "x": KindNumeric})
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	want := []float64{1, 1, 1, 4}
	if got.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		f, ok := got.Float(i, "x")
		if !ok || f != w {
			t.Errorf("row %d = %v (ok=%v), want %v", i, f, ok, w)
		}
	}

	r := got.Report()
	if r.CellsFilled != 2 || r.CellsStillMissing != 0 {
		t.Errorf("Report() = %+v, want 2 filled and 0 missing", r)
	}
}

func TestPreprocess_UnseededGapStaysMissing(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, []string{"x", "label"}, [][]Value{
		{Missing(), Text("a")},
		{Number(2), Missing()},
	})

	got, err := Preprocess(raw, Schema{"x": KindNumeric, "label": KindCategorical})
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	if v, _ := got.Value(0, "x"); !v.IsMissing() {
		t.Errorf("row 0 x = %v, want missing", v)
	}
	if v, _ := got.Value(1, "label"); v.String() != "a" {
		t.Errorf("row 1 label = %q, want %q", v.String(), "a")
	}
	if r := got.Report(); r.CellsStillMissing != 1 || r.CellsFilled != 1 {
		t.Errorf("Report() = %+v", r)
	}
}

func TestPreprocess_Deduplicate(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, []string{"x", "label"}, [][]Value{
		{Number(1), Text("a")},
		{Number(2), Missing()},
		{Number(1), Text("a")},
		{Number(2), Missing()},
		{Number(3), Text("b")},
	})

	got, err := PreprocessInferred(raw)
	if err != nil {
		t.Fatalf("PreprocessInferred() error = %v", err)
	}

	want := []map[string]any{
		{"x": 1.0, "label": "a"},
		{"x": 2.0, "label": "a"},
		{"x": 3.0, "label": "b"},
	}
	if !reflect.DeepEqual(got.Records(), want) {
		t.Errorf("Records() = %v, want %v", got.Records(), want)
	}
	if r := got.Report(); r.DuplicatesRemoved != 2 || r.RowsIn != 5 || r.RowsOut != 3 {
		t.Errorf("Report() = %+v", r)
	}
}

func TestPreprocess_DedupeKeyIsUnambiguous(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, []string{"a", "b"}, [][]Value{
		{Text("x|"), Text("y")},
		{Text("x"), Text("|y")},
	})

	got, err := PreprocessInferred(raw)
	if err != nil {
		t.Fatalf("PreprocessInferred() error = %v", err)
	}
	if got.Len() != 2 {
		t.Errorf("Len() = %d, want 2", got.Len())
	}
}

func TestPreprocess_Idempotent(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, []string{"x", "y", "label"}, [][]Value{
		{Number(1), Missing(), Text("a")},
		{Missing(), Number(5), Missing()},
		{Number(1), Missing(), Text("a")},
		{Number(3), Number(6), Text("b")},
	})
	schema := Schema{"x": KindNumeric, "y": KindNumeric, "label": KindCategorical}

	first, err := Preprocess(raw, schema)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	rows := make([][]Value, first.Len())
	for i := range rows {
		rows[i] = append([]Value(nil), first.rows[i]...)
	}
	second, err := Preprocess(mustRaw(t, first.ColumnNames(), rows), schema)
	if err != nil {
		t.Fatalf("second Preprocess() error = %v", err)
	}

	if !reflect.DeepEqual(first.Records(), second.Records()) {
		t.Errorf("not idempotent:\nfirst  %v\nsecond %v", first.Records(), second.Records())
	}
}

func TestPreprocess_RepeatedInputCollapses(t *testing.T) {
	t.Parallel()

	rows := [][]Value{
		{Number(1), Text("a")},
		{Number(2), Text("b")},
		{Missing(), Text("c")},
	}
	schema := Schema{"x": KindNumeric, "label": KindCategorical}

	once, err := Preprocess(mustRaw(t, []string{"x", "label"}, rows), schema)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	tripled := append(append(append([][]Value{}, rows...), rows...), rows...)
	thrice, err := Preprocess(mustRaw(t, []string{"x", "label"}, tripled), schema)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	if !reflect.DeepEqual(once.Records(), thrice.Records()) {
		t.Errorf("repeated input changed the result:\n once %v\nthrice %v", once.Records(), thrice.Records())
	}
}

func TestPreprocess_TypeTagging(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, []string{"n", "c"}, [][]Value{
		{Text("2.5"), Number(7)},
	})

	got, err := Preprocess(raw, Schema{"n": KindNumeric, "c": KindCategorical})
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	if v, _ := got.Value(0, "n"); !v.IsNumber() {
		t.Errorf("n should be coerced to a number, got %#v", v)
	}
	if v, _ := got.Value(0, "c"); !v.IsText() || v.String() != "7" {
		t.Errorf("c should be rendered as text, got %#v", v)
	}
	if got := got.NumericColumns(); !reflect.DeepEqual(got, []string{"n"}) {
		t.Errorf("NumericColumns() = %v", got)
	}
	if k, ok := got.Kind("c"); !ok || k != KindCategorical {
		t.Errorf("Kind(c) = %v, %v", k, ok)
	}
}

func TestPreprocess_CategoricalKeepsSourceSpelling(t *testing.T) {
	t.Parallel()

	raw, err := ReadCSV(strings.NewReader("device,x\n007,1\nabc,2\n1e3,3.50\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	got, err := Preprocess(raw, Schema{"device": KindCategorical, "x": KindNumeric})
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	want := []map[string]any{
		{"device": "007", "x": 1.0},
		{"device": "abc", "x": 2.0},
		{"device": "1e3", "x": 3.5},
	}
	if !reflect.DeepEqual(got.Records(), want) {
		t.Errorf("Records() = %v, want %v", got.Records(), want)
	}
}

func TestPreprocess_DedupeComparesTypedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		schema  Schema
		records []map[string]any
		want    []map[string]any
	}{
		{
			name:    "number and text in categorical column",
			schema:  Schema{"a": KindCategorical},
			records: []map[string]any{{"a": 1}, {"a": "1"}},
			want:    []map[string]any{{"a": "1"}},
		},
		{
			name:    "number and numeric text in numeric column",
			schema:  Schema{"a": KindNumeric},
			records: []map[string]any{{"a": 2.5}, {"a": "2.5"}, {"a": 3}},
			want:    []map[string]any{{"a": 2.5}, {"a": 3.0}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Preprocess(RawTableFromRecords([]string{"a"}, tt.records), tt.schema)
			if err != nil {
				t.Fatalf("Preprocess() error = %v", err)
			}
			if !reflect.DeepEqual(got.Records(), tt.want) {
				t.Errorf("Records() = %v, want %v", got.Records(), tt.want)
			}
			if r := got.Report(); r.DuplicatesRemoved != 1 {
				t.Errorf("DuplicatesRemoved = %d, want 1", r.DuplicatesRemoved)
			}
		})
	}
}

func TestPreprocess_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    *RawTable
		schema Schema
	}{
		{
			name:   "nil table",
			raw:    nil,
			schema: Schema{},
		},
		{
			name:   "no columns",
			raw:    &RawTable{},
			schema: Schema{},
		},
		{
			name:   "no rows",
			raw:    &RawTable{columns: []string{"x"}},
			schema: Schema{"x": KindNumeric},
		},
		{
			name:   "undeclared column",
			raw:    &RawTable{columns: []string{"x", "y"}, rows: [][]Value{{Number(1), Number(2)}}},
			schema: Schema{"x": KindNumeric},
		},
		{
			name:   "text in numeric column",
			raw:    &RawTable{columns: []string{"x"}, rows: [][]Value{{Text("heavy")}}},
			schema: Schema{"x": KindNumeric},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Preprocess(tt.raw, tt.schema)
			if !errors.Is(err, ErrInput) {
				t.Errorf("Preprocess() error = %v, want ErrInput", err)
			}
		})
	}
}

func TestNewRawTable_WidthMismatch(t *testing.T) {
	t.Parallel()

	_, err := NewRawTable([]string{"a", "b"}, [][]Value{{Number(1)}})
	if !errors.Is(err, ErrInput) {
		t.Errorf("NewRawTable() error = %v, want ErrInput", err)
	}
}

func TestRawTableFromRecords(t *testing.T) {
	t.Parallel()

	raw := RawTableFromRecords([]string{"a", "b"}, []map[string]any{
		{"a": 1, "b": "x", "ignored": true},
		{"a": nil},
	})

	if raw.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", raw.Len())
	}
	row := raw.Row(1)
	if !row[0].IsMissing() || !row[1].IsMissing() {
		t.Errorf("Row(1) = %v, want all missing", row)
	}
	if f, ok := raw.Row(0)[0].Float(); !ok || f != 1 {
		t.Errorf("Row(0)[0] = %v", raw.Row(0)[0])
	}
}

func TestProcessedTable_AccessorsCopy(t *testing.T) {
	t.Parallel()

	raw := mustRaw(t, []string{"x"}, [][]Value{{Number(1)}})
	table, err := PreprocessInferred(raw)
	if err != nil {
		t.Fatalf("PreprocessInferred() error = %v", err)
	}

	cols := table.Columns()
	cols[0].Name = "mutated"
	if table.ColumnNames()[0] != "x" {
		t.Error("Columns() exposed internal state")
	}

	if _, ok := table.Value(5, "x"); ok {
		t.Error("Value() out of range should report !ok")
	}
	if _, ok := table.Float(0, "nope"); ok {
		t.Error("Float() on unknown column should report !ok")
	}
}
