// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package readinguc_test

import (
	"math"
	"testing"
	"time"

	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/usecase/readinguc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

func readingsOf(temps ...*float64) []model.Reading {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rs := make([]model.Reading, 0, len(temps))
	for i, temp := range temps {
		rs = append(rs, model.Reading{
			ID:          int64(i + 1),
			Temperature: temp,
			At:          t0.Add(time.Duration(i) * time.Minute),
			SensorID:    "S1",
		})
	}
	return rs
}

func TestSummarize(t *testing.T) {
	stats := readinguc.Summarize(readingsOf(f(10), f(12), f(11)))
	require.NotNil(t, stats)
	require.NotNil(t, stats.Temperature)
	assert.Nil(t, stats.Humidity, "empty series must be absent")
	assert.Equal(t, model.SeriesStats{
		Current: 11, Avg: 11, Min: 10, Max: 12, Trend: -1, Count: 3,
	}, *stats.Temperature)
}

func TestSummarizeDropsInvalidValues(t *testing.T) {
	rs := readingsOf(f(4), nil, f(math.NaN()), f(6))
	rs[1].Humidity = f(55)
	stats := readinguc.Summarize(rs)
	require.NotNil(t, stats)
	assert.Equal(t, model.SeriesStats{
		Current: 6, Avg: 5, Min: 4, Max: 6, Trend: 2, Count: 2,
	}, *stats.Temperature)
	assert.Equal(t, model.SeriesStats{
		Current: 55, Avg: 55, Min: 55, Max: 55, Count: 1,
	}, *stats.Humidity, "trend of a single value is zero")
}

func TestSummarizeWithoutValues(t *testing.T) {
	assert.Nil(t, readinguc.Summarize(nil))
	assert.Nil(t, readinguc.Summarize(readingsOf(nil, f(math.NaN()))))
}

func TestRecent(t *testing.T) {
	rs := readingsOf(f(1), f(2), f(3), f(4))
	recent := readinguc.Recent(rs, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(4), recent[0].ID)
	assert.Equal(t, int64(3), recent[1].ID)
	assert.Equal(t, int64(1), rs[0].ID, "input must be kept intact")

	assert.Len(t, readinguc.Recent(rs, 10), 4)
	assert.Empty(t, readinguc.Recent(rs, 0))
	assert.Empty(t, readinguc.Recent(nil, 5))
}
