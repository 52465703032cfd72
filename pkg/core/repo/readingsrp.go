// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Readings is the sensor readings repository.
type Readings interface {
	Conn(Conn) ReadingsConnQueryer
	Tx(Tx) ReadingsTxQueryer
}

type ReadingsConnQueryer interface {
	ReadingsQueryer
}

type ReadingsTxQueryer interface {
	ReadingsQueryer
}

type ReadingsQueryer interface {
	// ByTrip returns the readings of a trip in time order, oldest
	// first. Readings with equal timestamps keep their insertion order.
	ByTrip(ctx context.Context, tripID int64) ([]model.Reading, error)
}
