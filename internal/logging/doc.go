// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

// Package logging configures the process-wide zerolog logger for Liftlens.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("upload rejected")
//
// Components receive a zerolog.Logger by value and tag it with their name:
//
//	logger := logging.WithComponent("catalog")
//
// # Request Scoping
//
// The API middleware stores a request ID and a correlation ID on the request
// context. Ctx and CtxWith copy both onto every event so a recommendation can
// be traced from the access log through preprocessing and ranking.
//
// # slog Bridge
//
// sutureslog expects a *slog.Logger. NewSlogLogger returns one whose records
// are written through zerolog, so supervisor events share the same format
// and level as the rest of the process.
//
// # Configuration
//
// The logging section of the config file (or LOG_LEVEL, LOG_FORMAT and
// LOG_CALLER) selects the level, json or console output, and caller info.
package logging
