// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sensorsrp provides a reification of the repo.Sensors
// interface.
package sensorsrp

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

func (sensors *Repo) Conn(c repo.Conn) repo.SensorsConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (sensors *Repo) Tx(tx repo.Tx) repo.SensorsTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (sq queryer[Q]) List(ctx context.Context) ([]model.Sensor, error) {
	return List(ctx, sq.q)
}

func (sq queryer[Q]) ListByStatus(ctx context.Context, s model.SensorStatus) ([]model.Sensor, error) {
	return ListByStatus(ctx, sq.q, s)
}

func (sq queryer[Q]) Get(ctx context.Context, id string) (*model.Sensor, error) {
	return Get(ctx, sq.q, id)
}

func (sq queryer[Q]) Create(ctx context.Context, s *model.Sensor) (*model.Sensor, error) {
	return Create(ctx, sq.q, s)
}

func (sq queryer[Q]) Update(ctx context.Context, s *model.Sensor) (*model.Sensor, error) {
	return Update(ctx, sq.q, s)
}
