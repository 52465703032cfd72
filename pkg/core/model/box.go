// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
//
// Boxes, sensors, routes, trips, and their satellite records (sensor
// assignments, readings, alert events, and tracking fixes) are defined
// here together with the pure rules which govern them, such as the
// trip status state machine and the open assignment resolution.
// Persistence specific structs are kept in the adapters layer and are
// converted to/from these models by the repository packages.
package model

import "errors"

// AssetStatus is the status of a box or a truck. Although this enum is
// numeric, it is (de)serialized as a string for readability.
type AssetStatus int

// Valid values for the AssetStatus enum.
const (
	AssetStatusInvalid AssetStatus = iota // zero value is invalid

	AssetAvailable        // may be reserved by a new trip
	AssetOnTrip           // reserved by a scheduled or moving trip
	AssetUnderMaintenance // temporarily unusable
	AssetInactive         // retired
)

var assetStatusNames = enumNames[AssetStatus]{
	enum: "asset status",
	names: map[AssetStatus]string{
		AssetAvailable:        "available",
		AssetOnTrip:           "on_trip",
		AssetUnderMaintenance: "under_maintenance",
		AssetInactive:         "inactive",
	},
}

// Validate returns nil if AssetStatus value is valid. For invalid
// values, an instance of the InvalidEnumError will be returned.
func (s AssetStatus) Validate() error {
	return assetStatusNames.validate(s)
}

// String converts the AssetStatus enum to a string. Invalid values
// cause a panic.
func (s AssetStatus) String() string {
	return assetStatusNames.name(s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s AssetStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *AssetStatus) UnmarshalText(text []byte) error {
	return assetStatusNames.unmarshal(s, text)
}

// ParseAssetStatus parses the given string and returns an AssetStatus.
// For invalid strings, AssetStatusInvalid and ErrUnknownEnum will be
// returned.
func ParseAssetStatus(s string) (AssetStatus, error) {
	return assetStatusNames.parse(s)
}

// ErrLockedOnTrip indicates that a box or truck may not be modified
// because it is reserved by a trip.
var ErrLockedOnTrip = errors.New("locked while on trip")

// Box models a refrigerated container which carries the cargo of a
// trip and hosts at most one active sensor.
type Box struct {
	ID        int64       `json:"id"`
	Length    float64     `json:"length"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	MaxWeight float64     `json:"maxWeight"`
	Status    AssetStatus `json:"status"`
	AdminID   int64       `json:"adminId"`
}

// Validate checks the box dimensions and capacity.
func (b *Box) Validate() error {
	switch {
	case b.Length <= 0, b.Width <= 0, b.Height <= 0:
		return errors.New("dimensions must be positive")
	case b.MaxWeight <= 0:
		return errors.New("max weight must be positive")
	}
	return b.Status.Validate()
}
