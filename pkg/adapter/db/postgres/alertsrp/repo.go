// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package alertsrp provides a reification of the repo.Alerts interface.
package alertsrp

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

func (alerts *Repo) Conn(c repo.Conn) repo.AlertsConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (alerts *Repo) Tx(tx repo.Tx) repo.AlertsTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (aq queryer[Q]) Definitions(ctx context.Context) ([]model.AlertDefinition, error) {
	return Definitions(ctx, aq.q)
}

func (aq queryer[Q]) ByTrip(ctx context.Context, tripID int64) ([]model.AlertEvent, error) {
	return ByTrip(ctx, aq.q, tripID)
}
