// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sensorsrp

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/model"
)

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Sensor, error) {
	var gs []tables.Sensor
	if err := q.GORM(ctx).Order("id").Find(&gs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return Models(gs)
}

func ListByStatus[Q postgres.Queryer](ctx context.Context, q Q, s model.SensorStatus) ([]model.Sensor, error) {
	var gs []tables.Sensor
	err := q.GORM(ctx).Where(
		"status = ?", s.String(),
	).Order("id").Find(&gs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return Models(gs)
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id string) (*model.Sensor, error) {
	gs := &tables.Sensor{}
	if err := q.GORM(ctx).Where("id = ?", id).Take(gs).Error; err != nil {
		return nil, postgres.NotFound(err, "sensor", id)
	}
	return gs.Model()
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, s *model.Sensor) (*model.Sensor, error) {
	gs := tables.NewSensor(s)
	if err := q.GORM(ctx).Create(gs).Error; err != nil {
		return nil, fmt.Errorf(
			"insert sensor %q: %w", s.ID, postgres.Translate(err),
		)
	}
	return gs.Model()
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, s *model.Sensor) (*model.Sensor, error) {
	gs := tables.NewSensor(s)
	res := q.GORM(ctx).Model(&tables.Sensor{}).Where(
		"id = ?", s.ID,
	).Updates(map[string]any{
		"type":   gs.Type,
		"status": gs.Status,
	})
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("update: %w", postgres.Translate(err))
	}
	return Get(ctx, q, s.ID)
}

// Models converts sensor rows to their model counterparts.
func Models(gs []tables.Sensor) ([]model.Sensor, error) {
	ss := make([]model.Sensor, 0, len(gs))
	for i := range gs {
		s, err := gs[i].Model()
		if err != nil {
			return nil, err
		}
		ss = append(ss, *s)
	}
	return ss, nil
}
