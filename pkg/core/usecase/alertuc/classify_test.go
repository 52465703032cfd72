// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package alertuc_test

import (
	"math"
	"testing"
	"time"

	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/usecase/alertuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		alertType string
		expected  model.Classification
	}{
		{"Low Temperature", model.Classification{
			Category:  model.CategoryTemperature,
			Direction: model.DirectionDown,
			Severity:  model.SeverityCritical,
		}},
		{"High Temperature", model.Classification{
			Category:  model.CategoryTemperature,
			Direction: model.DirectionUp,
			Severity:  model.SeverityCritical,
		}},
		{"Low Humidity", model.Classification{
			Category:  model.CategoryHumidity,
			Direction: model.DirectionDown,
			Severity:  model.SeverityInfo,
		}},
		{"high humidity", model.Classification{
			Category:  model.CategoryHumidity,
			Direction: model.DirectionUp,
			Severity:  model.SeverityInfo,
		}},
		{"Cancellation", model.Classification{
			Category: model.CategoryGeneral,
			Severity: model.SeverityWarning,
		}},
		{"Route Started", model.Classification{
			Category: model.CategoryGeneral,
			Severity: model.SeverityInfo,
		}},
		{"Route Ended", model.Classification{
			Category: model.CategoryGeneral,
			Severity: model.SeverityInfo,
		}},
		{"Unusual Event", model.Classification{
			Category: model.CategoryGeneral,
			Severity: model.SeverityInfo,
		}},
		{"Temperature Sensor Reset", model.Classification{
			Category: model.CategoryGeneral,
			Severity: model.SeverityInfo,
		}},
		{"", model.Classification{
			Category: model.CategoryGeneral,
			Severity: model.SeverityInfo,
		}},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, alertuc.Classify(c.alertType), c.alertType)
	}
}

func TestAggregateByTripDegradesPerItem(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	defs := []model.AlertDefinition{
		{ID: 1, Type: "High Temperature", Description: "Too warm"},
		{ID: 2, Type: "Cancellation"},
	}
	alerts := []model.AlertEvent{
		{ID: 10, DefinitionID: 1, TripID: 7, At: at},
		{ID: 11, DefinitionID: 42, TripID: 7, At: at.Add(-time.Minute)},
		{ID: 12, DefinitionID: 2, TripID: 8, At: at},
	}
	byTrip := alertuc.AggregateByTrip(alerts, defs)
	require.Len(t, byTrip, 2)
	require.Len(t, byTrip[7], 2)

	first := byTrip[7][0]
	assert.Equal(t, int64(10), first.ID)
	assert.Equal(t, "High Temperature", first.Title)
	assert.Equal(t, "Too warm", first.Description)
	assert.Equal(t, model.SeverityCritical, first.Severity)

	missing := byTrip[7][1]
	assert.Equal(t, int64(11), missing.ID)
	assert.Equal(t, alertuc.UnknownTitle, missing.Title)
	assert.Equal(t, alertuc.UnknownDescription, missing.Description)
	assert.Equal(t, model.CategoryGeneral, missing.Category)

	require.Len(t, byTrip[8], 1)
	assert.Equal(t, "Cancellation", byTrip[8][0].Title)
	assert.Equal(t, alertuc.UnknownDescription, byTrip[8][0].Description)
	assert.Equal(t, model.SeverityWarning, byTrip[8][0].Severity)

	assert.Empty(t, alertuc.AggregateByTrip(nil, defs))
}

func TestExcursions(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := func(v float64) *float64 { return &v }
	bounds := model.EnvBounds{MinTemp: 2, MaxTemp: 8, MinHum: 30, MaxHum: 70}
	readings := []model.Reading{
		{ID: 1, Temperature: f(5), Humidity: f(50), At: at, SensorID: "S1"},
		{ID: 2, Temperature: f(9.5), Humidity: f(20), At: at, SensorID: "S1"},
		{ID: 3, Temperature: f(8), Humidity: f(70), At: at, SensorID: "S1"},
		{ID: 4, Temperature: f(math.NaN()), Humidity: nil, At: at},
		{ID: 5, Temperature: f(1), At: at, SensorID: "S2"},
		{ID: 6, Humidity: f(71), At: at, SensorID: "S2"},
	}
	ex := alertuc.Excursions(readings, bounds)
	require.Len(t, ex, 4)
	assert.Equal(t, int64(2), ex[0].ReadingID)
	assert.Equal(t, alertuc.TypeHighTemperature, ex[0].Type)
	assert.Equal(t, 9.5, ex[0].Value)
	assert.Equal(t, 8.0, ex[0].Bound)
	assert.Equal(t, model.DirectionUp, ex[0].Direction)
	assert.Equal(t, alertuc.TypeLowHumidity, ex[1].Type)
	assert.Equal(t, 30.0, ex[1].Bound)
	assert.Equal(t, alertuc.TypeLowTemperature, ex[2].Type)
	assert.Equal(t, "S2", ex[2].SensorID)
	assert.Equal(t, alertuc.TypeHighHumidity, ex[3].Type)
	assert.Equal(t, int64(6), ex[3].ReadingID)

	assert.Empty(t, alertuc.Excursions(nil, bounds))
}
