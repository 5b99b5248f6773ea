// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// valueKind discriminates the Value union.
type valueKind uint8

const (
	kindMissing valueKind = iota
	kindNumber
	kindText
)

// Value is a single table cell: Missing, a Number, or Text.
// The zero Value is Missing.
//
// A Number parsed from a CSV field keeps the field's spelling, so a column
// declared categorical renders "007" as "007" rather than "7".
type Value struct {
	kind valueKind
	num  float64
	text string
}

// Missing returns an empty cell.
func Missing() Value {
	return Value{}
}

// Number returns a numeric cell. NaN is stored as Missing.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: kindNumber, num: f}
}

// Text returns a string cell.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// IsMissing reports whether the cell is empty.
func (v Value) IsMissing() bool {
	return v.kind == kindMissing
}

// IsNumber reports whether the cell holds a float.
func (v Value) IsNumber() bool {
	return v.kind == kindNumber
}

// IsText reports whether the cell holds a string.
func (v Value) IsText() bool {
	return v.kind == kindText
}

// Float returns the numeric value. Text cells are parsed; ok is false when
// the cell is missing or not numeric.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case kindNumber:
		return v.num, true
	case kindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String renders the cell. Missing renders as the empty string and numbers
// use the shortest representation that round-trips.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case kindText:
		return v.text
	default:
		return ""
	}
}

// categoryText renders the cell for a categorical column, preferring the
// source spelling of a parsed number.
func (v Value) categoryText() string {
	if v.kind == kindNumber && v.text != "" {
		return v.text
	}
	return v.String()
}

// Interface returns the cell as float64, string, or nil.
func (v Value) Interface() any {
	switch v.kind {
	case kindNumber:
		return v.num
	case kindText:
		return v.text
	default:
		return nil
	}
}

// key returns a stable identity used for duplicate detection.
// Missing equals Missing; Number and Text never collide.
func (v Value) key() string {
	switch v.kind {
	case kindNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case kindText:
		return "t:" + v.text
	default:
		return "-"
	}
}

// missingTokens are CSV spellings read as an empty cell.
var missingTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"none": {},
}

// ParseValue converts a raw CSV field to a Value.
func ParseValue(field string) Value {
	trimmed := strings.TrimSpace(field)
	if _, ok := missingTokens[strings.ToLower(trimmed)]; ok {
		return Missing()
	}
	// "inf" spellings stay text so numeric columns reject them
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) {
		v := Number(f)
		v.text = field
		return v
	}
	return Text(field)
}

// ValueOf converts a decoded JSON/Go value to a Value.
// Unsupported types are rendered as text.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case nil:
		return Missing()
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case bool:
		return Text(strconv.FormatBool(t))
	case string:
		return Text(t)
	default:
		return Text(fmt.Sprint(t))
	}
}
