// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "errors"

// SensorType specifies which quantities a sensor measures.
type SensorType int

// Valid values for the SensorType enum.
const (
	SensorTypeInvalid SensorType = iota // zero value is invalid

	SensorTemperature
	SensorHumidity
	SensorTempAndHumidity
)

var sensorTypeNames = enumNames[SensorType]{
	enum: "sensor type",
	names: map[SensorType]string{
		SensorTemperature:     "temperature",
		SensorHumidity:        "humidity",
		SensorTempAndHumidity: "temp_and_humidity",
	},
}

func (t SensorType) Validate() error {
	return sensorTypeNames.validate(t)
}

func (t SensorType) String() string {
	return sensorTypeNames.name(t)
}

func (t SensorType) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

func (t *SensorType) UnmarshalText(text []byte) error {
	return sensorTypeNames.unmarshal(t, text)
}

func ParseSensorType(s string) (SensorType, error) {
	return sensorTypeNames.parse(s)
}

// SensorStatus specifies if a sensor may be assigned to a box.
type SensorStatus int

// Valid values for the SensorStatus enum.
const (
	SensorStatusInvalid SensorStatus = iota // zero value is invalid

	SensorActive
	SensorOutOfService
)

var sensorStatusNames = enumNames[SensorStatus]{
	enum: "sensor status",
	names: map[SensorStatus]string{
		SensorActive:       "active",
		SensorOutOfService: "out_of_service",
	},
}

func (s SensorStatus) Validate() error {
	return sensorStatusNames.validate(s)
}

func (s SensorStatus) String() string {
	return sensorStatusNames.name(s)
}

func (s SensorStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *SensorStatus) UnmarshalText(text []byte) error {
	return sensorStatusNames.unmarshal(s, text)
}

func ParseSensorStatus(s string) (SensorStatus, error) {
	return sensorStatusNames.parse(s)
}

// Sensor models a temperature and/or humidity probe. Its ID is chosen
// by an admin (e.g., the serial number which is printed on it).
type Sensor struct {
	ID     string       `json:"id"`
	Type   SensorType   `json:"type"`
	Status SensorStatus `json:"status"`
}

// Validate checks the sensor fields.
func (s *Sensor) Validate() error {
	if s.ID == "" {
		return errors.New("sensor id is required")
	}
	if err := s.Type.Validate(); err != nil {
		return err
	}
	return s.Status.Validate()
}
