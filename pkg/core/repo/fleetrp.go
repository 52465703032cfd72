// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Fleet is the repository of the trip reference data, namely trucks,
// drivers, cargo types, and admins. Only the truck status may change
// through this module.
type Fleet interface {
	Conn(Conn) FleetConnQueryer
	Tx(Tx) FleetTxQueryer
}

type FleetConnQueryer interface {
	FleetQueryer
}

type FleetTxQueryer interface {
	FleetQueryer

	// LockTruck selects the id truck FOR UPDATE.
	LockTruck(ctx context.Context, id int64) (*model.Truck, error)

	// SetTruckStatus is a compare-and-set of the truck status, just
	// like the BoxesTxQueryer.SetStatus method.
	SetTruckStatus(
		ctx context.Context, id int64, from, to model.AssetStatus,
	) error
}

type FleetQueryer interface {
	Trucks(ctx context.Context) ([]model.Truck, error)
	TrucksByStatus(ctx context.Context, s model.AssetStatus) ([]model.Truck, error)
	Drivers(ctx context.Context) ([]model.Driver, error)
	CargoTypes(ctx context.Context) ([]model.CargoType, error)

	// These methods return a cerr.NotFound error for missing rows.
	Truck(ctx context.Context, id int64) (*model.Truck, error)
	Driver(ctx context.Context, id int64) (*model.Driver, error)
	CargoType(ctx context.Context, id int64) (*model.CargoType, error)
	Admin(ctx context.Context, id int64) (*model.Admin, error)
}
