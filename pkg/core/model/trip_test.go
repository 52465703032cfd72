// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripStatusTransitions(t *testing.T) {
	all := []model.TripStatus{
		model.TripScheduled, model.TripInTransit,
		model.TripCompleted, model.TripCanceled,
	}
	allowed := map[[2]model.TripStatus]bool{
		{model.TripScheduled, model.TripInTransit}: true,
		{model.TripScheduled, model.TripCanceled}:  true,
		{model.TripInTransit, model.TripCompleted}: true,
		{model.TripInTransit, model.TripCanceled}:  true,
	}
	for _, from := range all {
		for _, to := range all {
			ok := allowed[[2]model.TripStatus{from, to}]
			assert.Equal(
				t, ok, from.CanTransitionTo(to), "%s -> %s", from, to,
			)
			err := from.CheckTransition(to)
			if ok {
				assert.NoError(t, err)
				continue
			}
			var te *model.TransitionError
			if assert.ErrorAs(t, err, &te) {
				assert.Equal(t, from, te.From)
				assert.Equal(t, to, te.To)
			}
		}
	}
	assert.Error(t, model.TripScheduled.CheckTransition(0))
}

func TestTripStatusTerminal(t *testing.T) {
	assert.False(t, model.TripScheduled.Terminal())
	assert.False(t, model.TripInTransit.Terminal())
	assert.True(t, model.TripCompleted.Terminal())
	assert.True(t, model.TripCanceled.Terminal())

	assert.False(t, model.TripScheduled.Started())
	assert.True(t, model.TripInTransit.Started())
	assert.True(t, model.TripCanceled.Started())
}

func TestEditableFields(t *testing.T) {
	sched := model.EditableFields(model.TripScheduled)
	assert.True(t, sched.Has(model.FieldDeparture|model.FieldArrival))
	assert.True(t, sched.Has(model.FieldStatus))
	assert.Equal(t, "departure,arrival,status", sched.String())

	transit := model.EditableFields(model.TripInTransit)
	assert.True(t, transit.Has(model.FieldStatus))
	assert.False(t, transit.Has(model.FieldDeparture))
	assert.False(t, transit.Has(model.FieldArrival))

	assert.Equal(t, model.TripField(0), model.EditableFields(model.TripCompleted))
	assert.Equal(t, model.TripField(0), model.EditableFields(model.TripCanceled))
}

func TestTripPatchFields(t *testing.T) {
	now := time.Now()
	st := model.TripCanceled
	p := model.TripPatch{Arrival: &now, Status: &st}
	assert.Equal(t, model.FieldArrival|model.FieldStatus, p.Fields())
	assert.Equal(t, model.TripField(0), (&model.TripPatch{}).Fields())
}

func TestScheduleValidate(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		name     string
		dep, arr time.Time
		err      error
	}{
		{"ok", now.Add(time.Hour), now.Add(2 * time.Hour), nil},
		{"departure now", now, now.Add(time.Minute), nil},
		{
			"arrival before departure",
			now.Add(time.Hour), now.Add(30 * time.Minute),
			model.ErrArrivalNotAfterDeparture,
		},
		{
			"arrival equals departure",
			now.Add(time.Hour), now.Add(time.Hour),
			model.ErrArrivalNotAfterDeparture,
		},
		{
			"departure in the past",
			now.Add(-time.Minute), now.Add(time.Hour),
			model.ErrDepartureInPast,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := model.Schedule{Departure: tc.dep, Arrival: tc.arr}
			err := s.Validate(now)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestTripStatusJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Status model.TripStatus `json:"status"`
	}{model.TripInTransit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"in_transit"}`, string(b))

	var v struct {
		Status model.TripStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"canceled"}`), &v))
	assert.Equal(t, model.TripCanceled, v.Status)
	assert.Error(t, json.Unmarshal([]byte(`{"status":"lost"}`), &v))

	_, err = model.ParseTripStatus("paused")
	assert.ErrorIs(t, err, model.ErrUnknownEnum)
}
