// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Reading is a timestamped temperature/humidity sample from a sensor.
// Either value may be missing, depending on the sensor type.
type Reading struct {
	ID          int64     `json:"id"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	At          time.Time `json:"at"`
	SensorID    string    `json:"sensorId"`
	TripID      *int64    `json:"tripId"`
}

// AlertDefinition is a static catalog entry describing an alert type.
type AlertDefinition struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// AlertEvent is a firing of an AlertDefinition on a trip.
type AlertEvent struct {
	ID           int64     `json:"id"`
	DefinitionID int64     `json:"definitionId"`
	TripID       int64     `json:"tripId"`
	At           time.Time `json:"at"`
	Temperature  *float64  `json:"temperature"`
	Humidity     *float64  `json:"humidity"`
}

// SeriesStats summarizes the valid values of one reading series.
// Trend is the difference of the last two values.
type SeriesStats struct {
	Current float64 `json:"current"`
	Avg     float64 `json:"avg"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Trend   float64 `json:"trend"`
	Count   int     `json:"count"`
}

// ReadingStats contains the temperature and humidity summaries. A nil
// field means that the series had no valid value.
type ReadingStats struct {
	Temperature *SeriesStats `json:"temperature"`
	Humidity    *SeriesStats `json:"humidity"`
}

// TripReadings is the readings view of a trip.
type TripReadings struct {
	TripID int64         `json:"tripId"`
	Stats  *ReadingStats `json:"stats"`
	Recent []Reading     `json:"recent"`
	Total  int           `json:"total"`
}
