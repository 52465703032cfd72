// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tripsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/model"
)

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Trip, error) {
	var gt []tables.Trip
	if err := q.GORM(ctx).Order("departure DESC, id DESC").Find(&gt).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	tt := make([]model.Trip, 0, len(gt))
	for i := range gt {
		t, err := gt[i].Model()
		if err != nil {
			return nil, err
		}
		tt = append(tt, *t)
	}
	return tt, nil
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Trip, error) {
	gt := &tables.Trip{}
	if err := q.GORM(ctx).Take(gt, id).Error; err != nil {
		return nil, postgres.NotFound(err, "trip", id)
	}
	return gt.Model()
}

func Tracking[Q postgres.Queryer](ctx context.Context, q Q, tripID int64) ([]model.Tracking, error) {
	var rows []tables.Tracking
	err := q.GORM(ctx).Where(
		"trip_id = ?", tripID,
	).Order("recorded_at, id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	fixes := make([]model.Tracking, 0, len(rows))
	for i := range rows {
		fixes = append(fixes, *rows[i].Model())
	}
	return fixes, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, d *model.TripDraft) (*model.Trip, error) {
	gt := &tables.Trip{
		Departure:         d.Departure.UTC(),
		Arrival:           d.Arrival.UTC(),
		EstimatedDistance: d.EstimatedDistance,
		Status:            model.TripScheduled.String(),
		DriverID:          d.DriverID,
		AdminID:           d.AdminID,
		BoxID:             d.BoxID,
		RouteID:           d.RouteID,
		TruckID:           d.TruckID,
		CargoTypeID:       d.CargoTypeID,
	}
	if err := q.GORM(ctx).Create(gt).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", postgres.Translate(err))
	}
	return gt.Model()
}

func Reschedule[Q postgres.Queryer](ctx context.Context, q Q, id int64, s model.Schedule) (*model.Trip, error) {
	res := q.GORM(ctx).Model(&tables.Trip{}).Where(
		"id = ? AND status = ?", id, model.TripScheduled.String(),
	).Updates(map[string]any{
		"departure": s.Departure.UTC(),
		"arrival":   s.Arrival.UTC(),
	})
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("update: %w", postgres.Translate(err))
	}
	if res.RowsAffected != 1 {
		return nil, cerr.Conflict(fmt.Errorf(
			"trip %d is not scheduled anymore", id,
		))
	}
	return Get(ctx, q, id)
}

func SetStatus[Q postgres.Queryer](ctx context.Context, q Q, id int64, from, to model.TripStatus, at *time.Time) (*model.Trip, error) {
	cols := map[string]any{"status": to.String()}
	if at != nil {
		switch to {
		case model.TripInTransit:
			cols["actual_departure"] = at.UTC()
		case model.TripCompleted:
			cols["actual_arrival"] = at.UTC()
		}
	}
	res := q.GORM(ctx).Model(&tables.Trip{}).Where(
		"id = ? AND status = ?", id, from.String(),
	).Updates(cols)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("update: %w", postgres.Translate(err))
	}
	if res.RowsAffected != 1 {
		return nil, cerr.Conflict(fmt.Errorf(
			"trip %d is not %s anymore", id, from.String(),
		))
	}
	return Get(ctx, q, id)
}
