// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tripsrp provides a reification of the repo.Trips interface,
// including the tracking fixes of trips.
package tripsrp

import (
	"context"
	"time"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

func (trips *Repo) Conn(c repo.Conn) repo.TripsConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (trips *Repo) Tx(tx repo.Tx) repo.TripsTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (tq queryer[Q]) List(ctx context.Context) ([]model.Trip, error) {
	return List(ctx, tq.q)
}

func (tq queryer[Q]) Get(ctx context.Context, id int64) (*model.Trip, error) {
	return Get(ctx, tq.q, id)
}

func (tq queryer[Q]) Tracking(ctx context.Context, tripID int64) ([]model.Tracking, error) {
	return Tracking(ctx, tq.q, tripID)
}

func (tq queryer[Q]) Create(ctx context.Context, d *model.TripDraft) (*model.Trip, error) {
	return Create(ctx, tq.q, d)
}

func (tq queryer[Q]) Reschedule(ctx context.Context, id int64, s model.Schedule) (*model.Trip, error) {
	return Reschedule(ctx, tq.q, id, s)
}

func (tq queryer[Q]) SetStatus(ctx context.Context, id int64, from, to model.TripStatus, at *time.Time) (*model.Trip, error) {
	return SetStatus(ctx, tq.q, id, from, to, at)
}
