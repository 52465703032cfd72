// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package readingsrp provides a reification of the repo.Readings
// interface. Readings are appended by an external telemetry ingester,
// so this package only queries them.
package readingsrp

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

func (readings *Repo) Conn(c repo.Conn) repo.ReadingsConnQueryer {
	return queryer[*postgres.Conn]{q: c.(*postgres.Conn)}
}

func (readings *Repo) Tx(tx repo.Tx) repo.ReadingsTxQueryer {
	return queryer[*postgres.Tx]{q: tx.(*postgres.Tx)}
}

type queryer[Q postgres.Queryer] struct {
	q Q
}

func (rq queryer[Q]) ByTrip(ctx context.Context, tripID int64) ([]model.Reading, error) {
	return ByTrip(ctx, rq.q, tripID)
}
