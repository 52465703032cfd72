// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Sensors is the sensors repository.
type Sensors interface {
	Conn(Conn) SensorsConnQueryer
	Tx(Tx) SensorsTxQueryer
}

type SensorsConnQueryer interface {
	SensorsQueryer
}

type SensorsTxQueryer interface {
	SensorsQueryer
}

type SensorsQueryer interface {
	List(ctx context.Context) ([]model.Sensor, error)
	ListByStatus(ctx context.Context, s model.SensorStatus) ([]model.Sensor, error)

	// Get returns a cerr.NotFound error if the sensor does not exist.
	Get(ctx context.Context, id string) (*model.Sensor, error)

	// Create inserts s. A duplicate sensor id is a cerr.Conflict.
	Create(ctx context.Context, s *model.Sensor) (*model.Sensor, error)

	// Update overwrites the sensor type and status.
	Update(ctx context.Context, s *model.Sensor) (*model.Sensor, error)
}
