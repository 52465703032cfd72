// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fleetrp

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/model"
	"gorm.io/gorm/clause"
)

func Trucks[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Truck, error) {
	var rows []tables.Truck
	if err := q.GORM(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return trucks(rows)
}

func TrucksByStatus[Q postgres.Queryer](ctx context.Context, q Q, s model.AssetStatus) ([]model.Truck, error) {
	var rows []tables.Truck
	err := q.GORM(ctx).Where(
		"status = ?", s.String(),
	).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return trucks(rows)
}

func Truck[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Truck, error) {
	row := &tables.Truck{}
	if err := q.GORM(ctx).Take(row, id).Error; err != nil {
		return nil, postgres.NotFound(err, "truck", id)
	}
	return row.Model()
}

func LockTruck[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Truck, error) {
	row := &tables.Truck{}
	err := q.GORM(ctx).Clauses(
		clause.Locking{Strength: clause.LockingStrengthUpdate},
	).Take(row, id).Error
	if err != nil {
		return nil, postgres.NotFound(err, "truck", id)
	}
	return row.Model()
}

func SetTruckStatus[Q postgres.Queryer](ctx context.Context, q Q, id int64, from, to model.AssetStatus) error {
	res := q.GORM(ctx).Model(&tables.Truck{}).Where(
		"id = ? AND status = ?", id, from.String(),
	).Update("status", to.String())
	if err := res.Error; err != nil {
		return fmt.Errorf("update: %w", postgres.Translate(err))
	}
	if res.RowsAffected != 1 {
		return cerr.Conflict(fmt.Errorf(
			"truck %d is not %s anymore", id, from.String(),
		))
	}
	return nil
}

func Drivers[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Driver, error) {
	var rows []tables.Driver
	if err := q.GORM(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	dd := make([]model.Driver, 0, len(rows))
	for i := range rows {
		dd = append(dd, *rows[i].Model())
	}
	return dd, nil
}

func Driver[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Driver, error) {
	row := &tables.Driver{}
	if err := q.GORM(ctx).Take(row, id).Error; err != nil {
		return nil, postgres.NotFound(err, "driver", id)
	}
	return row.Model(), nil
}

func CargoTypes[Q postgres.Queryer](ctx context.Context, q Q) ([]model.CargoType, error) {
	var rows []tables.CargoType
	if err := q.GORM(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cc := make([]model.CargoType, 0, len(rows))
	for i := range rows {
		cc = append(cc, *rows[i].Model())
	}
	return cc, nil
}

func CargoType[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.CargoType, error) {
	row := &tables.CargoType{}
	if err := q.GORM(ctx).Take(row, id).Error; err != nil {
		return nil, postgres.NotFound(err, "cargo type", id)
	}
	return row.Model(), nil
}

func Admin[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Admin, error) {
	row := &tables.Admin{}
	if err := q.GORM(ctx).Take(row, id).Error; err != nil {
		return nil, postgres.NotFound(err, "admin", id)
	}
	return row.Model(), nil
}

func trucks(rows []tables.Truck) ([]model.Truck, error) {
	tt := make([]model.Truck, 0, len(rows))
	for i := range rows {
		t, err := rows[i].Model()
		if err != nil {
			return nil, err
		}
		tt = append(tt, *t)
	}
	return tt, nil
}
