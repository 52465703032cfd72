// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package readingsrp

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/model"
)

func ByTrip[Q postgres.Queryer](ctx context.Context, q Q, tripID int64) ([]model.Reading, error) {
	var rows []tables.SensorReading
	err := q.GORM(ctx).Where(
		"trip_id = ?", tripID,
	).Order("recorded_at, id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	rr := make([]model.Reading, 0, len(rows))
	for i := range rows {
		rr = append(rr, *rows[i].Model())
	}
	return rr, nil
}
