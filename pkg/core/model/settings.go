// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// VisibleSettings contains the effective use case settings which are
// reported to end-users. These settings are taken from the
// configuration file (and possibly environment variables) when the
// use case objects are built and can not be changed at runtime.
//
// This model layer struct is required (in addition to its version
// dependent adapters layer counterparts) because settings should be
// reported to end-users from the use cases layer, while the config
// format may change independently.
type VisibleSettings struct {
	Trips    TripSettings    `json:"trips"`
	Readings ReadingSettings `json:"readings"`

	// Logger reports if server-side REST API logging is enabled.
	Logger bool `json:"logger"`
}

// TripSettings represents the trip lifecycle related settings.
type TripSettings struct {
	// DepartureGrace is subtracted from the current time before
	// checking that a new departure time is not in the past.
	DepartureGrace time.Duration `json:"departureGrace"`
}

// ReadingSettings represents the reading aggregation settings.
type ReadingSettings struct {
	// RecentCount is the number of readings in the recency list.
	RecentCount int `json:"recentCount"`
}
