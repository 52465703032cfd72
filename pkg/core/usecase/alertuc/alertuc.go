// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package alertuc contains the alerts UseCase and the pure alert
// classification functions. Alerts are derived views: nothing in this
// package mutates the store, and the alert definitions catalog is
// loaded per call and passed explicitly to the aggregation.
package alertuc

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

type UseCase struct {
	pool     repo.Pool
	trips    repo.Trips
	alerts   repo.Alerts
	readings repo.Readings
	routes   repo.Routes
}

func New(
	p repo.Pool,
	trips repo.Trips,
	alerts repo.Alerts,
	readings repo.Readings,
	routes repo.Routes,
) *UseCase {
	return &UseCase{
		pool:     p,
		trips:    trips,
		alerts:   alerts,
		readings: readings,
		routes:   routes,
	}
}

// startedTrip fetches the tripID trip and ensures that it has left the
// scheduled status.
func startedTrip(
	ctx context.Context, q repo.TripsQueryer, tripID int64,
) (*model.Trip, error) {
	trip, err := q.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err = trip.CheckStarted(); err != nil {
		return nil, cerr.InvalidTransition(err)
	}
	return trip, nil
}

// TripAlerts returns the enriched alerts of the tripID trip, newest
// first. Scheduled trips have no alerts to show, so they are rejected
// with a cerr.InvalidTransition error.
func (a *UseCase) TripAlerts(
	ctx context.Context, tripID int64,
) (alerts []model.EnrichedAlert, err error) {
	err = a.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := startedTrip(ctx, a.trips.Conn(c), tripID); err != nil {
			return err
		}
		q := a.alerts.Conn(c)
		defs, err := q.Definitions(ctx)
		if err != nil {
			return err
		}
		events, err := q.ByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		alerts = AggregateByTrip(events, defs)[tripID]
		return nil
	})
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []model.EnrichedAlert{}
	}
	return alerts, nil
}

// Definitions lists the alert definitions catalog.
func (a *UseCase) Definitions(
	ctx context.Context,
) (defs []model.AlertDefinition, err error) {
	err = a.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		defs, err = a.alerts.Conn(c).Definitions(ctx)
		return err
	})
	if err != nil {
		defs = nil
	}
	return
}

// TripExcursions compares the readings of the tripID trip with the
// bounds of its route and returns the out of bound values in time
// order. The trip must have started, like for TripAlerts.
func (a *UseCase) TripExcursions(
	ctx context.Context, tripID int64,
) (ex []model.Excursion, err error) {
	err = a.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		trip, err := startedTrip(ctx, a.trips.Conn(c), tripID)
		if err != nil {
			return err
		}
		route, err := a.routes.Conn(c).Get(ctx, trip.RouteID)
		if err != nil {
			return err
		}
		readings, err := a.readings.Conn(c).ByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		ex = Excursions(readings, route.EnvBounds)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ex == nil {
		ex = []model.Excursion{}
	}
	return ex, nil
}
