// Liftlens - Sensor-Driven Workout Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/liftlens

package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Sensor identifies which MetaMotion stream a recording holds.
type Sensor string

const (
	// SensorAccelerometer is linear acceleration in g.
	SensorAccelerometer Sensor = "accelerometer"
	// SensorGyroscope is angular velocity in deg/s.
	SensorGyroscope Sensor = "gyroscope"
)

// fileMarker returns the token MetaMotion puts in file names for the sensor.
func (s Sensor) fileMarker() string {
	switch s {
	case SensorAccelerometer:
		return "Accelerometer"
	case SensorGyroscope:
		return "Gyroscope"
	default:
		return ""
	}
}

// ParseSensor maps a name to a Sensor, case-insensitively.
func ParseSensor(name string) (Sensor, bool) {
	switch Sensor(strings.ToLower(strings.TrimSpace(name))) {
	case SensorAccelerometer:
		return SensorAccelerometer, true
	case SensorGyroscope:
		return SensorGyroscope, true
	default:
		return "", false
	}
}

// exercisePattern extracts the exercise token from a MetaMotion file name,
// e.g. "A-bench-heavy_..." -> "bench".
var exercisePattern = regexp.MustCompile(`[A-Z]-([a-z]+)-`)

// Recording pairs both sensor streams of one exercise.
type Recording struct {
	Exercise      string
	Accelerometer *RawTable
	Gyroscope     *RawTable
}

// Catalog discovers MetaMotion CSV exports in a directory.
type Catalog struct {
	dir    string
	logger zerolog.Logger
}

// NewCatalog creates a catalog rooted at dir.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalog(dir string, logger zerolog.Logger) *Catalog {
	return &Catalog{
		dir:    dir,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Dir returns the catalog root.
func (c *Catalog) Dir() string {
	return c.dir
}

// Exercises returns the sorted, distinct exercise names found on disk.
func (c *Catalog) Exercises() ([]string, error) {
	files, err := c.csvFiles()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, name := range files {
		if ex := ExerciseFromFileName(name); ex != "" {
			set[ex] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for ex := range set {
		out = append(out, ex)
	}
	sort.Strings(out)
	return out, nil
}

// ExerciseFromFileName returns the exercise token of a MetaMotion file name,
// or "" if the name does not follow the convention.
func ExerciseFromFileName(name string) string {
	m := exercisePattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return ""
	}
	return m[1]
}

// Path returns the newest file for the exercise and sensor. File names
// embed an ISO timestamp, so the lexically last match is the newest.
func (c *Catalog) Path(exercise string, sensor Sensor) (string, error) {
	marker := sensor.fileMarker()
	if marker == "" {
		return "", fmt.Errorf("unknown sensor %q", sensor)
	}

	files, err := c.csvFiles()
	if err != nil {
		return "", err
	}

	var match string
	for _, name := range files {
		if ExerciseFromFileName(name) != exercise || !strings.Contains(name, marker) {
			continue
		}
		match = name
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s (%s)", ErrExerciseNotFound, exercise, sensor)
	}
	return filepath.Join(c.dir, match), nil
}

// LoadSensor reads the newest recording of one sensor for the exercise.
func (c *Catalog) LoadSensor(ctx context.Context, exercise string, sensor Sensor) (*RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := c.Path(exercise, sensor)
	if err != nil {
		return nil, err
	}

	raw, err := c.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("exercise", exercise).
		Str("sensor", string(sensor)).
		Int("rows", raw.Len()).
		Msg("loaded recording")

	return raw, nil
}

// ReadFile parses one recording, typically a path returned by Path.
func (c *Catalog) ReadFile(ctx context.Context, path string) (*RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path comes from a directory listing, not user input
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			c.logger.Warn().Err(cerr).Str("path", path).Msg("failed to close recording")
		}
	}()

	raw, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return raw, nil
}

// Load reads both sensor streams. It fails with ErrExerciseNotFound unless
// an accelerometer and a gyroscope file both exist.
func (c *Catalog) Load(ctx context.Context, exercise string) (*Recording, error) {
	accel, err := c.LoadSensor(ctx, exercise, SensorAccelerometer)
	if err != nil {
		return nil, err
	}
	gyro, err := c.LoadSensor(ctx, exercise, SensorGyroscope)
	if err != nil {
		return nil, err
	}
	return &Recording{
		Exercise:      exercise,
		Accelerometer: accel,
		Gyroscope:     gyro,
	}, nil
}

// csvFiles lists CSV file names in the catalog root, sorted.
func (c *Catalog) csvFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
