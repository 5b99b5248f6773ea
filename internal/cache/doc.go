// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The API keeps preprocessed catalog recordings in an LRUCache so that
repeated requests for the same exercise skip CSV parsing and cleaning.
Keys include the file's size and modification time, so a rewritten
recording is a miss rather than a stale hit.

# Usage Example

	tables := cache.NewLRUCache[*dataset.ProcessedTable](64, 10*time.Minute)

	if t, ok := tables.Get(key); ok {
	    return t, nil
	}
	t, err := dataset.Preprocess(raw, schema)
	if err != nil {
	    return nil, err
	}
	tables.Add(key, t)

# Expiry

Entries expire lazily: an expired entry is dropped by the Get that finds
it, or evicted when the cache is full. Values must be safe to share
between goroutines; dataset.ProcessedTable is, because its accessors copy.
*/
package cache
