// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routesrp provides a reification of the repo.Routes interface
// over the rute table.
package routesrp

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

func (routes *Repo) Conn(c repo.Conn) repo.RoutesConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (routes *Repo) Tx(tx repo.Tx) repo.RoutesTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (rq queryer[Q]) List(ctx context.Context) ([]model.Route, error) {
	return List(ctx, rq.q)
}

func (rq queryer[Q]) Get(ctx context.Context, id int64) (*model.Route, error) {
	return Get(ctx, rq.q, id)
}

func (rq queryer[Q]) Create(ctx context.Context, r *model.Route) (*model.Route, error) {
	return Create(ctx, rq.q, r)
}
