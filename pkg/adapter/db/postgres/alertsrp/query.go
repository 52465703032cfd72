// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package alertsrp

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/model"
)

func Definitions[Q postgres.Queryer](ctx context.Context, q Q) ([]model.AlertDefinition, error) {
	var rows []tables.AlertDefinition
	if err := q.GORM(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defs := make([]model.AlertDefinition, 0, len(rows))
	for i := range rows {
		defs = append(defs, *rows[i].Model())
	}
	return defs, nil
}

func ByTrip[Q postgres.Queryer](ctx context.Context, q Q, tripID int64) ([]model.AlertEvent, error) {
	var rows []tables.AlertEvent
	err := q.GORM(ctx).Where(
		"trip_id = ?", tripID,
	).Order("raised_at DESC, id DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	events := make([]model.AlertEvent, 0, len(rows))
	for i := range rows {
		events = append(events, *rows[i].Model())
	}
	return events, nil
}
