// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActive(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t1.Add(time.Hour)

	r := model.ResolveActive(nil)
	assert.Nil(t, r.Active)
	assert.Zero(t, r.OpenCount)

	closed := []model.Assignment{
		{ID: 1, BoxID: 1, SensorID: "S1", Start: t0, End: &t1},
	}
	r = model.ResolveActive(closed)
	assert.Nil(t, r.Active, "closed assignments are never active")

	single := append(closed, model.Assignment{
		ID: 2, BoxID: 1, SensorID: "S2", Start: t1,
	})
	r = model.ResolveActive(single)
	require.NotNil(t, r.Active)
	assert.Equal(t, "S2", r.Active.SensorID)
	assert.False(t, r.Faulty())

	faulty := append(single,
		model.Assignment{ID: 3, BoxID: 1, SensorID: "S3", Start: t2},
		model.Assignment{ID: 4, BoxID: 1, SensorID: "S4", Start: t0},
	)
	r = model.ResolveActive(faulty)
	require.NotNil(t, r.Active)
	assert.Equal(t, "S3", r.Active.SensorID, "latest start must win")
	assert.Equal(t, 3, r.OpenCount)
	assert.True(t, r.Faulty())

	r.Active.SensorID = "changed"
	assert.Equal(t, "S3", faulty[2].SensorID, "input must be kept intact")
}

func TestResolveActiveTieBreak(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	r := model.ResolveActive([]model.Assignment{
		{ID: 9, SensorID: "late", Start: t0},
		{ID: 5, SensorID: "early", Start: t0},
	})
	require.NotNil(t, r.Active)
	assert.Equal(t, "late", r.Active.SensorID)
}

func TestSortNewestFirst(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	as := []model.Assignment{
		{ID: 1, Start: t0},
		{ID: 3, Start: t0.Add(2 * time.Hour)},
		{ID: 2, Start: t0.Add(time.Hour)},
		{ID: 4, Start: t0.Add(time.Hour)},
	}
	model.SortNewestFirst(as)
	ids := make([]int64, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{3, 4, 2, 1}, ids)
}

func TestEnvBoundsValidate(t *testing.T) {
	ok := model.EnvBounds{MinTemp: 2, MaxTemp: 8, MinHum: 30, MaxHum: 60}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.MinTemp = 9
	assert.Error(t, bad.Validate())

	bad = ok
	bad.MaxHum = 120
	assert.Error(t, bad.Validate())

	r := model.Route{EnvBounds: ok}
	assert.Error(t, r.Validate(), "name is required")
	r.Name = "north"
	assert.NoError(t, r.Validate())
}
