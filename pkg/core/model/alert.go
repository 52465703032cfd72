// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// AlertCategory groups alerts by the measured quantity.
type AlertCategory string

// Known alert categories.
const (
	CategoryTemperature AlertCategory = "temperature"
	CategoryHumidity    AlertCategory = "humidity"
	CategoryGeneral     AlertCategory = "general"
)

// AlertDirection shows whether a bound was exceeded from above (up) or
// from below (down). General alerts have no direction.
type AlertDirection string

const (
	DirectionNone AlertDirection = ""
	DirectionUp   AlertDirection = "up"
	DirectionDown AlertDirection = "down"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Classification is the presentation hint of an alert type.
type Classification struct {
	Category  AlertCategory  `json:"category"`
	Direction AlertDirection `json:"direction,omitempty"`
	Severity  Severity       `json:"severity"`
}

// EnrichedAlert is an alert event joined with its definition.
type EnrichedAlert struct {
	AlertEvent
	Title       string `json:"title"`
	Description string `json:"description"`
	Classification
}

// Excursion is a reading which falls outside of the route bounds.
// Type names the alert definition which such a reading would raise.
type Excursion struct {
	ReadingID int64     `json:"readingId"`
	SensorID  string    `json:"sensorId"`
	At        time.Time `json:"at"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Bound     float64   `json:"bound"`
	Classification
}
