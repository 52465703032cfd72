// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tripsuc contains the trips UseCase which drives the trip
// lifecycle state machine:
//
//	scheduled ──> in_transit ──> completed
//	    │              │
//	    └──> canceled <┘
//
// Creating a trip reserves its box and truck (marking them as on-trip)
// and reaching a terminal status releases them again. Reservations and
// the trip status change are written in one transaction, so a box is
// never left on-trip without a live trip or vice versa.
package tripsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

// ErrNotAvailable is reported when a trip asks for a box or truck
// which is not in the available status.
var ErrNotAvailable = errors.New("not available")

// UseCase represents the trips use case. Besides the trips repository,
// it needs the boxes and fleet repositories for the reservations and
// the routes repository for checking the trip references.
type UseCase struct {
	pool   repo.Pool
	trips  repo.Trips
	boxes  repo.Boxes
	fleet  repo.Fleet
	routes repo.Routes

	departureGrace time.Duration
	now            func() time.Time
}

// New instantiates a trips use case.
func New(
	p repo.Pool,
	trips repo.Trips,
	boxes repo.Boxes,
	fleet repo.Fleet,
	routes repo.Routes,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:   p,
		trips:  trips,
		boxes:  boxes,
		fleet:  fleet,
		routes: routes,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// DepartureGrace returns the effective departure grace duration.
func (t *UseCase) DepartureGrace() time.Duration {
	return t.departureGrace
}

// earliestDeparture returns the earliest acceptable departure time of
// a new or rescheduled trip.
func (t *UseCase) earliestDeparture() time.Time {
	return t.now().Add(-t.departureGrace)
}

// Create inserts a scheduled trip and reserves its box and truck.
func (t *UseCase) Create(
	ctx context.Context, d *model.TripDraft,
) (trip *model.Trip, err error) {
	if err = d.Validate(t.earliestDeparture()); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = repo.WithTx(ctx, t.pool, func(ctx context.Context, tx repo.Tx) error {
		trip, err = t.create(ctx, tx, d)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (t *UseCase) create(
	ctx context.Context, tx repo.Tx, d *model.TripDraft,
) (*model.Trip, error) {
	fq := t.fleet.Tx(tx)
	if _, err := fq.Admin(ctx, d.AdminID); err != nil {
		return nil, err
	}
	if _, err := fq.Driver(ctx, d.DriverID); err != nil {
		return nil, err
	}
	if _, err := fq.CargoType(ctx, d.CargoTypeID); err != nil {
		return nil, err
	}
	if _, err := t.routes.Tx(tx).Get(ctx, d.RouteID); err != nil {
		return nil, err
	}
	bq := t.boxes.Tx(tx)
	box, err := bq.Lock(ctx, d.BoxID)
	if err != nil {
		return nil, err
	}
	if box.Status != model.AssetAvailable {
		return nil, cerr.InvalidTransition(fmt.Errorf(
			"box %d is %s: %w", box.ID, box.Status, ErrNotAvailable,
		))
	}
	truck, err := fq.LockTruck(ctx, d.TruckID)
	if err != nil {
		return nil, err
	}
	if truck.Status != model.AssetAvailable {
		return nil, cerr.InvalidTransition(fmt.Errorf(
			"truck %d is %s: %w", truck.ID, truck.Status, ErrNotAvailable,
		))
	}
	err = bq.SetStatus(ctx, box.ID, model.AssetAvailable, model.AssetOnTrip)
	if err != nil {
		return nil, fmt.Errorf("reserving box: %w", err)
	}
	err = fq.SetTruckStatus(
		ctx, truck.ID, model.AssetAvailable, model.AssetOnTrip,
	)
	if err != nil {
		return nil, fmt.Errorf("reserving truck: %w", err)
	}
	trip, err := t.trips.Tx(tx).Create(ctx, d)
	if err != nil {
		return nil, err
	}
	log.Info(
		ctx, "trip created",
		log.ID("trip_id", trip.ID),
		log.ID("box_id", trip.BoxID),
		log.ID("truck_id", trip.TruckID),
		log.Time("departure", trip.Departure),
	)
	return trip, nil
}

// Reschedule replaces the departure/arrival window of the id trip.
// Only scheduled trips may be rescheduled.
func (t *UseCase) Reschedule(
	ctx context.Context, id int64, s model.Schedule,
) (trip *model.Trip, err error) {
	if err = s.Validate(t.earliestDeparture()); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = repo.WithTx(ctx, t.pool, func(ctx context.Context, tx repo.Tx) error {
		q := t.trips.Tx(tx)
		trip, err = q.Get(ctx, id)
		if err != nil {
			return err
		}
		if trip.Status != model.TripScheduled {
			return cerr.InvalidTransition(fmt.Errorf(
				"trip %d is %s, only scheduled trips may be rescheduled",
				id, trip.Status,
			))
		}
		trip, err = q.Reschedule(ctx, id, s)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// Cancel cancels a scheduled or in-transit trip and releases its box
// and truck.
func (t *UseCase) Cancel(
	ctx context.Context, id int64,
) (*model.Trip, error) {
	return t.moveTo(ctx, id, model.TripCanceled)
}

// Advance moves the id trip forward along its normal path, i.e., from
// scheduled to in_transit (recording the actual departure) or from
// in_transit to completed (recording the actual arrival and releasing
// the box and truck). Cancellation is not an advance, see Cancel.
func (t *UseCase) Advance(
	ctx context.Context, id int64, to model.TripStatus,
) (*model.Trip, error) {
	if err := to.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	if to != model.TripInTransit && to != model.TripCompleted {
		return nil, cerr.InvalidTransition(fmt.Errorf(
			"trip may not advance to %s", to,
		))
	}
	return t.moveTo(ctx, id, to)
}

func (t *UseCase) moveTo(
	ctx context.Context, id int64, to model.TripStatus,
) (trip *model.Trip, err error) {
	err = repo.WithTx(ctx, t.pool, func(ctx context.Context, tx repo.Tx) error {
		trip, err = t.trips.Tx(tx).Get(ctx, id)
		if err != nil {
			return err
		}
		trip, err = t.transition(ctx, tx, trip, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// transition changes the trip status to the to status if the state
// machine permits it. Terminal statuses release the box and truck.
func (t *UseCase) transition(
	ctx context.Context, tx repo.Tx, trip *model.Trip, to model.TripStatus,
) (*model.Trip, error) {
	if err := trip.Status.CheckTransition(to); err != nil {
		var te *model.TransitionError
		if errors.As(err, &te) {
			return nil, cerr.InvalidTransition(
				fmt.Errorf("trip %d: %w", trip.ID, err),
			)
		}
		return nil, cerr.BadRequest(err)
	}
	var at *time.Time
	if to == model.TripInTransit || to == model.TripCompleted {
		now := t.now().UTC()
		at = &now
	}
	from := trip.Status
	updated, err := t.trips.Tx(tx).SetStatus(ctx, trip.ID, from, to, at)
	if err != nil {
		return nil, err
	}
	if to.Terminal() {
		err = t.boxes.Tx(tx).SetStatus(
			ctx, trip.BoxID, model.AssetOnTrip, model.AssetAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("releasing box: %w", err)
		}
		err = t.fleet.Tx(tx).SetTruckStatus(
			ctx, trip.TruckID, model.AssetOnTrip, model.AssetAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("releasing truck: %w", err)
		}
	}
	log.Info(
		ctx, "trip status changed",
		log.ID("trip_id", trip.ID),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	return updated, nil
}

// Update applies the p patch on the id trip in one transaction. Patch
// fields which equal the current trip fields are ignored, and each of
// the remaining fields must be editable in the current trip status
// (see model.EditableFields). A changed status is applied after the
// schedule window, following the state machine edges.
func (t *UseCase) Update(
	ctx context.Context, id int64, p *model.TripPatch,
) (trip *model.Trip, err error) {
	if p.Status != nil {
		if err = p.Status.Validate(); err != nil {
			return nil, cerr.BadRequest(err)
		}
	}
	err = repo.WithTx(ctx, t.pool, func(ctx context.Context, tx repo.Tx) error {
		trip, err = t.update(ctx, tx, id, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

func (t *UseCase) update(
	ctx context.Context, tx repo.Tx, id int64, p *model.TripPatch,
) (*model.Trip, error) {
	q := t.trips.Tx(tx)
	trip, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := changedFields(trip, p)
	if changes.Fields() == 0 {
		return trip, nil
	}
	editable := model.EditableFields(trip.Status)
	if f := changes.Fields(); !editable.Has(f) {
		return nil, cerr.InvalidTransition(fmt.Errorf(
			"trip %d is %s, %s may not change",
			id, trip.Status, f&^editable,
		))
	}
	if changes.Departure != nil || changes.Arrival != nil {
		s := trip.Schedule
		earliest := time.Time{}
		if changes.Departure != nil {
			s.Departure = changes.Departure.UTC()
			earliest = t.earliestDeparture()
		}
		if changes.Arrival != nil {
			s.Arrival = changes.Arrival.UTC()
		}
		if err := s.Validate(earliest); err != nil {
			return nil, cerr.BadRequest(err)
		}
		trip, err = q.Reschedule(ctx, id, s)
		if err != nil {
			return nil, err
		}
	}
	if changes.Status != nil {
		trip, err = t.transition(ctx, tx, trip, *changes.Status)
		if err != nil {
			return nil, err
		}
	}
	return trip, nil
}

// changedFields returns the fields of p which differ from trip.
func changedFields(trip *model.Trip, p *model.TripPatch) model.TripPatch {
	var c model.TripPatch
	if p.Departure != nil && !p.Departure.Equal(trip.Departure) {
		c.Departure = p.Departure
	}
	if p.Arrival != nil && !p.Arrival.Equal(trip.Arrival) {
		c.Arrival = p.Arrival
	}
	if p.Status != nil && *p.Status != trip.Status {
		c.Status = p.Status
	}
	return c
}

// List returns all trips, latest departure first.
func (t *UseCase) List(ctx context.Context) (trips []model.Trip, err error) {
	err = t.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		trips, err = t.trips.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		trips = nil
	}
	return
}

func (t *UseCase) Get(ctx context.Context, id int64) (trip *model.Trip, err error) {
	err = t.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		trip, err = t.trips.Conn(c).Get(ctx, id)
		return err
	})
	if err != nil {
		trip = nil
	}
	return
}

// Tracking returns the GPS fixes of the id trip, oldest first.
func (t *UseCase) Tracking(
	ctx context.Context, id int64,
) (fixes []model.Tracking, err error) {
	err = t.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := t.trips.Conn(c)
		if _, err := q.Get(ctx, id); err != nil {
			return err
		}
		fixes, err = q.Tracking(ctx, id)
		return err
	})
	if err != nil {
		fixes = nil
	}
	return
}
