// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package readinguc

import (
	"math"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Summarize computes the statistics of the temperature and humidity
// series of readings, which must be sorted by time (oldest first).
// Missing and NaN values are dropped per series. A series without any
// valid value is reported as nil and when both series are empty, the
// whole result is nil.
func Summarize(readings []model.Reading) *model.ReadingStats {
	temps := make([]float64, 0, len(readings))
	hums := make([]float64, 0, len(readings))
	for i := range readings {
		if v := readings[i].Temperature; v != nil && !math.IsNaN(*v) {
			temps = append(temps, *v)
		}
		if v := readings[i].Humidity; v != nil && !math.IsNaN(*v) {
			hums = append(hums, *v)
		}
	}
	if len(temps) == 0 && len(hums) == 0 {
		return nil
	}
	return &model.ReadingStats{
		Temperature: series(temps),
		Humidity:    series(hums),
	}
}

func series(vs []float64) *model.SeriesStats {
	n := len(vs)
	if n == 0 {
		return nil
	}
	s := &model.SeriesStats{
		Current: vs[n-1],
		Min:     vs[0],
		Max:     vs[0],
		Count:   n,
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Avg = sum / float64(n)
	if n > 1 {
		s.Trend = vs[n-1] - vs[n-2]
	}
	return s
}

// Recent returns the last n readings, newest first. The readings must
// be sorted by time (oldest first) and are not modified.
func Recent(readings []model.Reading, n int) []model.Reading {
	if n <= 0 {
		return []model.Reading{}
	}
	if n > len(readings) {
		n = len(readings)
	}
	recent := make([]model.Reading, 0, n)
	for i := len(readings) - 1; i >= len(readings)-n; i-- {
		recent = append(recent, readings[i])
	}
	return recent
}
