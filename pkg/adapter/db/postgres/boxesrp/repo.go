// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package boxesrp provides a reification of the repo.Boxes interface.
// Queries are implemented once as generic functions which accept a
// connection or a transaction.
package boxesrp

import (
	"context"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

// Repo represents the boxes repository.
type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

// Conn unwraps the given repo.Conn which must be a *postgres.Conn
// (otherwise, it panics) and returns its boxes queryer.
func (boxes *Repo) Conn(c repo.Conn) repo.BoxesConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

// Tx unwraps the given repo.Tx which must be a *postgres.Tx
// (otherwise, it panics) and returns its boxes queryer.
func (boxes *Repo) Tx(tx repo.Tx) repo.BoxesTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (bq queryer[Q]) List(ctx context.Context) ([]model.Box, error) {
	return List(ctx, bq.q)
}

func (bq queryer[Q]) ListByStatus(ctx context.Context, s model.AssetStatus) ([]model.Box, error) {
	return ListByStatus(ctx, bq.q, s)
}

func (bq queryer[Q]) Get(ctx context.Context, id int64) (*model.Box, error) {
	return Get(ctx, bq.q, id)
}

func (bq queryer[Q]) Lock(ctx context.Context, id int64) (*model.Box, error) {
	return Lock(ctx, bq.q, id)
}

func (bq queryer[Q]) Create(ctx context.Context, b *model.Box) (*model.Box, error) {
	return Create(ctx, bq.q, b)
}

func (bq queryer[Q]) Update(ctx context.Context, b *model.Box) (*model.Box, error) {
	return Update(ctx, bq.q, b)
}

func (bq queryer[Q]) SetStatus(ctx context.Context, id int64, from, to model.AssetStatus) error {
	return SetStatus(ctx, bq.q, id, from, to)
}
