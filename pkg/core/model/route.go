// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "errors"

// EnvBounds are the inclusive environmental tolerance bounds of a
// route. Readings outside of them are excursions.
type EnvBounds struct {
	MinTemp float64 `json:"minTemp"`
	MaxTemp float64 `json:"maxTemp"`
	MinHum  float64 `json:"minHum"`
	MaxHum  float64 `json:"maxHum"`
}

// Validate ensures that minimum bounds do not exceed maximum bounds.
func (b EnvBounds) Validate() error {
	switch {
	case b.MinTemp > b.MaxTemp:
		return errors.New("minTemp is greater than maxTemp")
	case b.MinHum > b.MaxHum:
		return errors.New("minHum is greater than maxHum")
	case b.MinHum < 0 || b.MaxHum > 100:
		return errors.New("humidity bounds must be within [0, 100]")
	}
	return nil
}

// Route (also known as a rute) is a named origin/destination pair
// with environmental tolerance bounds. Routes are immutable once they
// are created.
type Route struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	AdminID     int64      `json:"adminId"`
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	EnvBounds
}

// Validate checks the route fields.
func (r *Route) Validate() error {
	if r.Name == "" {
		return errors.New("route name is required")
	}
	return r.EnvBounds.Validate()
}
