// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package boxesrp

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/model"
	"gorm.io/gorm/clause"
)

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Box, error) {
	var gb []tables.Box
	if err := q.GORM(ctx).Order("id").Find(&gb).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gb)
}

func ListByStatus[Q postgres.Queryer](ctx context.Context, q Q, s model.AssetStatus) ([]model.Box, error) {
	var gb []tables.Box
	err := q.GORM(ctx).Where(
		"status = ?", s.String(),
	).Order("id").Find(&gb).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gb)
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Box, error) {
	gb := &tables.Box{}
	if err := q.GORM(ctx).Take(gb, id).Error; err != nil {
		return nil, postgres.NotFound(err, "box", id)
	}
	return gb.Model()
}

func Lock[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Box, error) {
	gb := &tables.Box{}
	err := q.GORM(ctx).Clauses(
		clause.Locking{Strength: clause.LockingStrengthUpdate},
	).Take(gb, id).Error
	if err != nil {
		return nil, postgres.NotFound(err, "box", id)
	}
	return gb.Model()
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, b *model.Box) (*model.Box, error) {
	gb := tables.NewBox(b)
	gb.ID = 0
	if err := q.GORM(ctx).Create(gb).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", postgres.Translate(err))
	}
	return gb.Model()
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, b *model.Box) (*model.Box, error) {
	gb := tables.NewBox(b)
	res := q.GORM(ctx).Model(&tables.Box{}).Where(
		"id = ? AND status <> ?", b.ID, model.AssetOnTrip.String(),
	).Updates(map[string]any{
		"length":     gb.Length,
		"width":      gb.Width,
		"height":     gb.Height,
		"max_weight": gb.MaxWeight,
		"status":     gb.Status,
		"admin_id":   gb.AdminID,
	})
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("update: %w", postgres.Translate(err))
	}
	if res.RowsAffected == 0 {
		// either missing or locked, Get distinguishes them
		if _, err := Get(ctx, q, b.ID); err != nil {
			return nil, err
		}
		return nil, cerr.InvalidTransition(
			fmt.Errorf("box %d: %w", b.ID, model.ErrLockedOnTrip),
		)
	}
	return Get(ctx, q, b.ID)
}

func SetStatus[Q postgres.Queryer](ctx context.Context, q Q, id int64, from, to model.AssetStatus) error {
	res := q.GORM(ctx).Model(&tables.Box{}).Where(
		"id = ? AND status = ?", id, from.String(),
	).Update("status", to.String())
	if err := res.Error; err != nil {
		return fmt.Errorf("update: %w", postgres.Translate(err))
	}
	if res.RowsAffected != 1 {
		return cerr.Conflict(fmt.Errorf(
			"box %d is not %s anymore", id, from.String(),
		))
	}
	return nil
}

func models(gb []tables.Box) ([]model.Box, error) {
	bb := make([]model.Box, 0, len(gb))
	for i := range gb {
		b, err := gb[i].Model()
		if err != nil {
			return nil, err
		}
		bb = append(bb, *b)
	}
	return bb, nil
}
