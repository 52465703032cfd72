// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routeuc contains the routes UseCase. Routes are immutable
// once created. Their road geometry is not stored; it is fetched from
// an external GeometryProvider whenever a client asks for it.
package routeuc

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

// GeometryProvider computes the road geometry between two points, as
// an opaque GeoJSON document. Implementations may cache results and
// must honor the ctx deadline.
type GeometryProvider interface {
	Geometry(ctx context.Context, from, to model.Coordinate) ([]byte, error)
}

// ErrNoGeometryProvider is returned by Geometry when no provider is
// configured.
var ErrNoGeometryProvider = errors.New("geometry provider is not configured")

type UseCase struct {
	pool     repo.Pool
	routes   repo.Routes
	fleet    repo.Fleet
	geometry GeometryProvider
}

// New instantiates a routes use case. The g provider may be nil, then
// the Geometry method fails.
func New(
	p repo.Pool, routes repo.Routes, fleet repo.Fleet, g GeometryProvider,
) *UseCase {
	return &UseCase{pool: p, routes: routes, fleet: fleet, geometry: g}
}

func (ru *UseCase) List(ctx context.Context) (rr []model.Route, err error) {
	err = ru.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		rr, err = ru.routes.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		rr = nil
	}
	return
}

func (ru *UseCase) Get(ctx context.Context, id int64) (r *model.Route, err error) {
	err = ru.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		r, err = ru.routes.Conn(c).Get(ctx, id)
		return err
	})
	if err != nil {
		r = nil
	}
	return
}

// Create validates and inserts r. The route admin must exist.
func (ru *UseCase) Create(
	ctx context.Context, r *model.Route,
) (route *model.Route, err error) {
	if err = r.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = ru.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := ru.fleet.Conn(c).Admin(ctx, r.AdminID); err != nil {
			return err
		}
		route, err = ru.routes.Conn(c).Create(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "route created", log.ID("route_id", route.ID))
	return route, nil
}

// Geometry returns the road geometry of the id route as GeoJSON.
func (ru *UseCase) Geometry(ctx context.Context, id int64) ([]byte, error) {
	if ru.geometry == nil {
		return nil, ErrNoGeometryProvider
	}
	r, err := ru.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := ru.geometry.Geometry(ctx, r.Origin, r.Destination)
	if err != nil {
		return nil, fmt.Errorf("route %d geometry: %w", id, err)
	}
	return g, nil
}
