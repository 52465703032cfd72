// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"time"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Trips is the trips repository.
type Trips interface {
	Conn(Conn) TripsConnQueryer
	Tx(Tx) TripsTxQueryer
}

type TripsConnQueryer interface {
	TripsQueryer
}

// TripsTxQueryer contains the trip mutations. Status changes are
// compare-and-set operations, so a trip which was changed by a
// concurrent transaction is reported as a cerr.Conflict.
type TripsTxQueryer interface {
	TripsQueryer

	// Create inserts a scheduled trip.
	Create(ctx context.Context, d *model.TripDraft) (*model.Trip, error)

	// Reschedule replaces the schedule window of a trip which is
	// still in the scheduled status.
	Reschedule(ctx context.Context, id int64, s model.Schedule) (*model.Trip, error)

	// SetStatus moves a trip from the from status to the to status.
	// A non-nil at value is recorded as the actual departure when
	// moving to InTransit or as the actual arrival when moving to
	// Completed.
	SetStatus(
		ctx context.Context, id int64, from, to model.TripStatus,
		at *time.Time,
	) (*model.Trip, error)
}

type TripsQueryer interface {
	List(ctx context.Context) ([]model.Trip, error)

	// Get returns a cerr.NotFound error if the trip does not exist.
	Get(ctx context.Context, id int64) (*model.Trip, error)

	// Tracking returns the GPS fixes of a trip, oldest first.
	Tracking(ctx context.Context, tripID int64) ([]model.Tracking, error)
}
