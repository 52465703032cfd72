// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package routesrp

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/model"
)

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Route, error) {
	var rows []tables.Route
	if err := q.GORM(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	rr := make([]model.Route, 0, len(rows))
	for i := range rows {
		rr = append(rr, *rows[i].Model())
	}
	return rr, nil
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Route, error) {
	row := &tables.Route{}
	if err := q.GORM(ctx).Take(row, id).Error; err != nil {
		return nil, postgres.NotFound(err, "route", id)
	}
	return row.Model(), nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, r *model.Route) (*model.Route, error) {
	row := tables.NewRoute(r)
	row.ID = 0
	if err := q.GORM(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", postgres.Translate(err))
	}
	return row.Model(), nil
}
