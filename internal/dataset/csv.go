// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// utf8BOM is stripped from the first header field when present.
const utf8BOM = "\ufeff"

// ReadCSV parses a CSV recording with a header row.
//
// Empty fields and NaN/NA/null spellings become Missing, fields that parse
// as floats become Numbers, and everything else is Text. Repeated header
// names are disambiguated as "name.1", "name.2", ...
func ReadCSV(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty csv", ErrInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInput, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	columns := uniqueNames(header)

	var rows [][]Value
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row %d: %v", ErrInput, len(rows), err)
		}

		row := make([]Value, len(record))
		for j, field := range record {
			row[j] = ParseValue(field)
		}
		rows = append(rows, row)
	}

	return NewRawTable(columns, rows)
}

// uniqueNames renames repeated header fields so that every column is
// addressable by name.
func uniqueNames(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		n, dup := seen[name]
		seen[name] = n + 1
		if !dup {
			out[i] = name
			continue
		}
		candidate := name + "." + strconv.Itoa(n)
		for {
			if _, taken := seen[candidate]; !taken {
				break
			}
			n++
			candidate = name + "." + strconv.Itoa(n)
		}
		seen[candidate] = 1
		out[i] = candidate
	}
	return out
}

// WriteCSV writes the processed table with a header row.
// Missing cells are written as empty fields.
func (t *ProcessedTable) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.columns))
	for i, row := range t.rows {
		for j, v := range row {
			record[j] = v.String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
