// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

// Package dataset loads and cleans MetaMotion sensor recordings.
//
// # Overview
//
// A recording arrives as a RawTable: an ordered header plus rows of Values,
// where every Value is Missing, a Number, or Text. Preprocess turns a RawTable
// into an immutable ProcessedTable in three steps:
//
//  1. Deduplicate: exact duplicate rows are dropped, first occurrence wins
//  2. Forward-fill: gaps take the nearest preceding value in their column
//  3. Type-tag: each column becomes numeric or categorical per the Schema
//
// A cell with no preceding value in its column stays Missing. Consumers that
// need numbers (the recommend package) read such cells as 0.
//
// # Schemas
//
// Column kinds are declared, not guessed. MetaMotionSchema covers the
// standard accelerometer and gyroscope exports; InferSchema exists for ad-hoc
// uploads and treats all-missing columns as numeric.
//
// # Usage
//
//	raw, err := dataset.ReadCSV(f)
//	if err != nil {
//	    return err
//	}
//	table, err := dataset.Preprocess(raw, dataset.MetaMotionSchema(raw.Columns()))
//	if errors.Is(err, dataset.ErrInput) {
//	    // empty or malformed recording
//	}
//
// # Catalog
//
// Catalog discovers recordings on disk. File names follow the MetaMotion
// export convention, e.g. "A-bench-heavy2-rpe8_MetaWear_2019-01-11T16.10.08.270_C42732BE255C_Accelerometer_12.500Hz_1.4.4.csv",
// where the lowercase token after the participant letter names the exercise.
package dataset
