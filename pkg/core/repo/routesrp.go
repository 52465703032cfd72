// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Routes is the routes (rute) repository. Routes have no update path.
type Routes interface {
	Conn(Conn) RoutesConnQueryer
	Tx(Tx) RoutesTxQueryer
}

type RoutesConnQueryer interface {
	RoutesQueryer
}

type RoutesTxQueryer interface {
	RoutesQueryer
}

type RoutesQueryer interface {
	List(ctx context.Context) ([]model.Route, error)

	// Get returns a cerr.NotFound error if the route does not exist.
	Get(ctx context.Context, id int64) (*model.Route, error)

	Create(ctx context.Context, r *model.Route) (*model.Route, error)
}
