// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleRecording = "\ufeffepoch (ms),time (01:00),elapsed (s),x-axis (g),y-axis (g),z-axis (g)\n" +
	"1547138310000,2019-01-10T17:38:30.000,0.000,0.011,0.988,0.049\n" +
	"1547138310040,2019-01-10T17:38:30.040,0.040,,0.982,0.043\n" +
	"1547138310000,2019-01-10T17:38:30.000,0.000,0.011,0.988,0.049\n" +
	"1547138310080,2019-01-10T17:38:30.080,0.080,0.016,NaN,0.050\n"

func TestReadCSV(t *testing.T) {
	t.Parallel()

	raw, err := ReadCSV(strings.NewReader(sampleRecording))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	wantCols := []string{"epoch (ms)", "time (01:00)", "elapsed (s)", "x-axis (g)", "y-axis (g)", "z-axis (g)"}
	if !reflect.DeepEqual(raw.Columns(), wantCols) {
		t.Errorf("Columns() = %v, want %v", raw.Columns(), wantCols)
	}
	if raw.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", raw.Len())
	}
	if !raw.Row(1)[3].IsMissing() {
		t.Errorf("empty field should be missing, got %v", raw.Row(1)[3])
	}
	if !raw.Row(3)[4].IsMissing() {
		t.Errorf("NaN field should be missing, got %v", raw.Row(3)[4])
	}
	if !raw.Row(0)[1].IsText() {
		t.Errorf("timestamp should be text, got %#v", raw.Row(0)[1])
	}

	table, err := Preprocess(raw, MetaMotionSchema(raw.Columns()))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Len() after dedupe = %d, want 3", table.Len())
	}
	if f, _ := table.Float(1, "x-axis (g)"); f != 0.011 {
		t.Errorf("forward-filled x = %v, want 0.011", f)
	}
	if k, _ := table.Kind("time (01:00)"); k != KindCategorical {
		t.Errorf("time column kind = %v, want categorical", k)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ragged row", "a,b\n1,2\n3\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ReadCSV(strings.NewReader(tt.input)); !errors.Is(err, ErrInput) {
				t.Errorf("ReadCSV() error = %v, want ErrInput", err)
			}
		})
	}
}

func TestReadCSV_DuplicateHeaders(t *testing.T) {
	t.Parallel()

	raw, err := ReadCSV(strings.NewReader("a,a,a.1,a\n1,2,3,4\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	want := []string{"a", "a.1", "a.1.1", "a.2"}
	if got := raw.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	raw, err := ReadCSV(strings.NewReader(sampleRecording))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	table, err := Preprocess(raw, MetaMotionSchema(raw.Columns()))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	again, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV() of written table error = %v", err)
	}
	reprocessed, err := Preprocess(again, MetaMotionSchema(again.Columns()))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	if !reflect.DeepEqual(table.Records(), reprocessed.Records()) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", reprocessed.Records(), table.Records())
	}
}
