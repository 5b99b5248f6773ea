// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package services provides suture.Service wrappers for Liftlens components.

Each wrapper turns a component lifecycle into suture's context-aware
Serve(ctx) error and names itself through fmt.Stringer for suture events.

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Calls Shutdown with a fresh deadline when ctx is canceled

Catalog Refresh (CatalogRefreshService):
  - Scans the recording catalog at startup and on an interval
  - Reports the exercise count (the liftlens_catalog_exercises gauge)
  - Logs scan failures and retries on the next tick

# Return Values

	nil         -> component stopped by itself; suture restarts it
	error       -> component failed; suture restarts it with backoff
	ctx.Err()   -> shutdown requested
*/
package services
