// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Truck is the vehicle of a trip. Similar to boxes, a truck is
// reserved (marked as on-trip) while a trip refers to it.
type Truck struct {
	ID     int64       `json:"id"`
	Plate  string      `json:"plate"`
	Status AssetStatus `json:"status"`
}

// Driver drives the truck of a trip.
type Driver struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CargoType describes the transported goods, e.g., frozen fish.
type CargoType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Admin is the owner of boxes, routes, and trips.
type Admin struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
