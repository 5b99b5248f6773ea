// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

// Package recommend ranks exercise recordings by cosine similarity to a
// user's preference vector.
//
// # Pipeline
//
// Fit turns a dataset.ProcessedTable into an immutable Model:
//
//  1. The numeric columns are selected in table order; they are the
//     dimensions of the similarity space
//  2. Missing numeric cells are read as 0
//  3. Each column is standardized with its mean and population standard
//     deviation; a constant column scales to 0 in every row
//
// Model.Recommend then builds a query vector in the same column order
// (absent preferences are 0, unknown keys are ignored), scores every row by
// cosine similarity, and returns the top n rows in descending order. Ties at
// the selection boundary go to the later row.
//
// # Query Scaling
//
// By default the query is compared unscaled against the standardized rows.
// Config.QueryScaling = "scaled" standardizes the query with the model's
// statistics first. Both behaviors are kept until product decides which one
// is intended.
//
// # Profiles
//
// When a complete Profile accompanies a request, every result carries
// profile_adjustments (BMI, adult check, experience, goals) and a list of
// personalized notes. Notes never change the ranking.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Load(table); err != nil {
//	    return err
//	}
//	recs, err := engine.GetRecommendations(ctx, prefs, profile, 5)
//
// # Thread Safety
//
// Models are immutable and safe to share. Engine guards its current Model
// with a read-write lock, so Load never races a query.
package recommend
