// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ledgerrp

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/sensorsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/model"
	"gorm.io/gorm"
)

const newestFirst = "started_at DESC, id DESC"

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Assignment, error) {
	return find(q.GORM(ctx).Order(newestFirst))
}

func ByBox[Q postgres.Queryer](ctx context.Context, q Q, boxID int64) ([]model.Assignment, error) {
	return find(q.GORM(ctx).Where("box_id = ?", boxID).Order(newestFirst))
}

func OpenByBox[Q postgres.Queryer](ctx context.Context, q Q, boxID int64) ([]model.Assignment, error) {
	return find(q.GORM(ctx).Where(
		"box_id = ? AND ended_at IS NULL", boxID,
	).Order(newestFirst))
}

func OpenBySensor[Q postgres.Queryer](ctx context.Context, q Q, sensorID string) ([]model.Assignment, error) {
	return find(q.GORM(ctx).Where(
		"sensor_id = ? AND ended_at IS NULL", sensorID,
	).Order(newestFirst))
}

func LatestEnd[Q postgres.Queryer](ctx context.Context, q Q, boxID int64, sensorID string) (*time.Time, error) {
	as, err := find(q.GORM(ctx).Where(
		"(box_id = ? OR sensor_id = ?) AND ended_at IS NOT NULL",
		boxID, sensorID,
	).Order("ended_at DESC").Limit(1))
	if err != nil || len(as) == 0 {
		return nil, err
	}
	return as[0].End, nil
}

func AvailableSensors[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Sensor, error) {
	assigned := q.GORM(ctx).Model(&tables.SensorBox{}).Select(
		"sensor_id",
	).Where("ended_at IS NULL")
	var gs []tables.Sensor
	err := q.GORM(ctx).Where(
		"status = ?", model.SensorActive.String(),
	).Where("id NOT IN (?)", assigned).Order("id").Find(&gs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return sensorsrp.Models(gs)
}

func CloseOpen[Q postgres.Queryer](ctx context.Context, q Q, boxID int64, at time.Time) (int64, error) {
	res := q.GORM(ctx).Model(&tables.SensorBox{}).Where(
		"box_id = ? AND ended_at IS NULL", boxID,
	).Update("ended_at", at.UTC())
	if err := res.Error; err != nil {
		return 0, fmt.Errorf("update: %w", postgres.Translate(err))
	}
	return res.RowsAffected, nil
}

func Open[Q postgres.Queryer](ctx context.Context, q Q, boxID int64, sensorID string, start time.Time) (*model.Assignment, error) {
	sb := &tables.SensorBox{
		BoxID:     boxID,
		SensorID:  sensorID,
		StartedAt: start.UTC(),
	}
	if err := q.GORM(ctx).Create(sb).Error; err != nil {
		return nil, fmt.Errorf(
			"opening assignment of sensor %q on box %d: %w",
			sensorID, boxID, postgres.Translate(err),
		)
	}
	return sb.Model(), nil
}

func find(gdb *gorm.DB) ([]model.Assignment, error) {
	var rows []tables.SensorBox
	if err := gdb.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	as := make([]model.Assignment, 0, len(rows))
	for i := range rows {
		as = append(as, *rows[i].Model())
	}
	return as, nil
}
