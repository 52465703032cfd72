// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fleetrp provides a reification of the repo.Fleet interface,
// covering the trucks, drivers, cargo types, and admins tables.
package fleetrp

import (
	"context"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

func (fleet *Repo) Conn(c repo.Conn) repo.FleetConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (fleet *Repo) Tx(tx repo.Tx) repo.FleetTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (fq queryer[Q]) Trucks(ctx context.Context) ([]model.Truck, error) {
	return Trucks(ctx, fq.q)
}

func (fq queryer[Q]) TrucksByStatus(ctx context.Context, s model.AssetStatus) ([]model.Truck, error) {
	return TrucksByStatus(ctx, fq.q, s)
}

func (fq queryer[Q]) Truck(ctx context.Context, id int64) (*model.Truck, error) {
	return Truck(ctx, fq.q, id)
}

func (fq queryer[Q]) LockTruck(ctx context.Context, id int64) (*model.Truck, error) {
	return LockTruck(ctx, fq.q, id)
}

func (fq queryer[Q]) SetTruckStatus(ctx context.Context, id int64, from, to model.AssetStatus) error {
	return SetTruckStatus(ctx, fq.q, id, from, to)
}

func (fq queryer[Q]) Drivers(ctx context.Context) ([]model.Driver, error) {
	return Drivers(ctx, fq.q)
}

func (fq queryer[Q]) Driver(ctx context.Context, id int64) (*model.Driver, error) {
	return Driver(ctx, fq.q, id)
}

func (fq queryer[Q]) CargoTypes(ctx context.Context) ([]model.CargoType, error) {
	return CargoTypes(ctx, fq.q)
}

func (fq queryer[Q]) CargoType(ctx context.Context, id int64) (*model.CargoType, error) {
	return CargoType(ctx, fq.q, id)
}

func (fq queryer[Q]) Admin(ctx context.Context, id int64) (*model.Admin, error) {
	return Admin(ctx, fq.q, id)
}
