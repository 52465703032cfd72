// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package alertuc

import (
	"math"
	"strings"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Alert types of the seeded alert definitions catalog.
const (
	TypeHighTemperature = "High Temperature"
	TypeLowTemperature  = "Low Temperature"
	TypeHighHumidity    = "High Humidity"
	TypeLowHumidity     = "Low Humidity"
	TypeCancellation    = "Cancellation"
	TypeRouteStarted    = "Route Started"
	TypeRouteEnded      = "Route Ended"
)

// Placeholders of alerts whose definition is missing.
const (
	UnknownTitle       = "Unknown type"
	UnknownDescription = "No description recorded"
)

var severities = map[string]model.Severity{
	TypeHighTemperature: model.SeverityCritical,
	TypeLowTemperature:  model.SeverityCritical,
	TypeCancellation:    model.SeverityWarning,
	TypeRouteStarted:    model.SeverityInfo,
	TypeRouteEnded:      model.SeverityInfo,
}

// Classify maps an alert type to its category, direction, and
// severity. The category is derived from the keywords of the lower
// cased type, while the severity is looked up by the exact type name.
// Unknown types are general alerts with the info severity.
func Classify(alertType string) model.Classification {
	c := model.Classification{
		Category: model.CategoryGeneral,
		Severity: model.SeverityInfo,
	}
	if s, ok := severities[alertType]; ok {
		c.Severity = s
	}
	t := strings.ToLower(alertType)
	low, high := strings.Contains(t, "low"), strings.Contains(t, "high")
	switch {
	case strings.Contains(t, "temperature"):
		c.Category = model.CategoryTemperature
	case strings.Contains(t, "humidity"):
		c.Category = model.CategoryHumidity
	}
	if c.Category == model.CategoryGeneral {
		return c
	}
	switch {
	case low:
		c.Direction = model.DirectionDown
	case high:
		c.Direction = model.DirectionUp
	default:
		c.Category = model.CategoryGeneral
	}
	return c
}

// AggregateByTrip groups the alerts by their trip and joins each one
// with its definition. Alerts keep their relative order. An alert with
// an unknown definition gets placeholder title and description, so one
// missing definition does not hide the rest of the list.
func AggregateByTrip(
	alerts []model.AlertEvent, defs []model.AlertDefinition,
) map[int64][]model.EnrichedAlert {
	byID := make(map[int64]*model.AlertDefinition, len(defs))
	for i := range defs {
		byID[defs[i].ID] = &defs[i]
	}
	trips := make(map[int64][]model.EnrichedAlert)
	for _, a := range alerts {
		ea := model.EnrichedAlert{
			AlertEvent:  a,
			Title:       UnknownTitle,
			Description: UnknownDescription,
			Classification: model.Classification{
				Category: model.CategoryGeneral,
				Severity: model.SeverityInfo,
			},
		}
		if d, ok := byID[a.DefinitionID]; ok {
			ea.Title = d.Type
			if d.Description != "" {
				ea.Description = d.Description
			}
			ea.Classification = Classify(d.Type)
		}
		trips[a.TripID] = append(trips[a.TripID], ea)
	}
	return trips
}

// Excursions returns the readings values which fall outside of the b
// bounds, as the alerts which they would raise. Missing and NaN values
// are ignored and values equal to a bound are within it.
func Excursions(
	readings []model.Reading, b model.EnvBounds,
) []model.Excursion {
	var ex []model.Excursion
	add := func(r *model.Reading, typ string, v, bound float64) {
		ex = append(ex, model.Excursion{
			ReadingID:      r.ID,
			SensorID:       r.SensorID,
			At:             r.At,
			Type:           typ,
			Value:          v,
			Bound:          bound,
			Classification: Classify(typ),
		})
	}
	for i := range readings {
		r := &readings[i]
		if v, ok := valid(r.Temperature); ok {
			switch {
			case v > b.MaxTemp:
				add(r, TypeHighTemperature, v, b.MaxTemp)
			case v < b.MinTemp:
				add(r, TypeLowTemperature, v, b.MinTemp)
			}
		}
		if v, ok := valid(r.Humidity); ok {
			switch {
			case v > b.MaxHum:
				add(r, TypeHighHumidity, v, b.MaxHum)
			case v < b.MinHum:
				add(r, TypeLowHumidity, v, b.MinHum)
			}
		}
	}
	return ex
}

func valid(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}
