// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ledgerrp provides a reification of the repo.Ledger interface
// over the sensor_box table. The open assignment invariants are kept
// by the partial unique indexes which the migration package creates,
// so a violating Open is reported as a cerr.Conflict error.
package ledgerrp

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

func (ledger *Repo) Conn(c repo.Conn) repo.LedgerConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (ledger *Repo) Tx(tx repo.Tx) repo.LedgerTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (lq queryer[Q]) List(ctx context.Context) ([]model.Assignment, error) {
	return List(ctx, lq.q)
}

func (lq queryer[Q]) ByBox(ctx context.Context, boxID int64) ([]model.Assignment, error) {
	return ByBox(ctx, lq.q, boxID)
}

func (lq queryer[Q]) OpenByBox(ctx context.Context, boxID int64) ([]model.Assignment, error) {
	return OpenByBox(ctx, lq.q, boxID)
}

func (lq queryer[Q]) OpenBySensor(ctx context.Context, sensorID string) ([]model.Assignment, error) {
	return OpenBySensor(ctx, lq.q, sensorID)
}

func (lq queryer[Q]) LatestEnd(ctx context.Context, boxID int64, sensorID string) (*time.Time, error) {
	return LatestEnd(ctx, lq.q, boxID, sensorID)
}

func (lq queryer[Q]) AvailableSensors(ctx context.Context) ([]model.Sensor, error) {
	return AvailableSensors(ctx, lq.q)
}

func (lq queryer[Q]) CloseOpen(ctx context.Context, boxID int64, at time.Time) (int64, error) {
	return CloseOpen(ctx, lq.q, boxID, at)
}

func (lq queryer[Q]) Open(ctx context.Context, boxID int64, sensorID string, start time.Time) (*model.Assignment, error) {
	return Open(ctx, lq.q, boxID, sensorID, start)
}
