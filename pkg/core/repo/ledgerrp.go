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

// Ledger is the sensor assignments (sensor_box) repository. The store
// guarantees that at most one open assignment exists per box and per
// sensor, so inserting a second open row fails with cerr.Conflict.
type Ledger interface {
	Conn(Conn) LedgerConnQueryer
	Tx(Tx) LedgerTxQueryer
}

type LedgerConnQueryer interface {
	LedgerQueryer
}

// LedgerTxQueryer contains the mutating ledger queries. Closing and
// opening assignments must happen in one transaction, otherwise a box
// may be left without its sensor.
type LedgerTxQueryer interface {
	LedgerQueryer

	// CloseOpen sets the end of all open assignments of the box to at
	// and returns the number of closed rows.
	CloseOpen(ctx context.Context, boxID int64, at time.Time) (int64, error)

	// Open inserts a new open assignment.
	Open(
		ctx context.Context, boxID int64, sensorID string, start time.Time,
	) (*model.Assignment, error)
}

type LedgerQueryer interface {
	// List returns all assignments, newest first.
	List(ctx context.Context) ([]model.Assignment, error)

	// ByBox returns all assignments of a box, newest first.
	ByBox(ctx context.Context, boxID int64) ([]model.Assignment, error)

	// OpenByBox returns open assignments of a box. More than one row
	// indicates a data-integrity fault.
	OpenByBox(ctx context.Context, boxID int64) ([]model.Assignment, error)

	// OpenBySensor returns open assignments of a sensor.
	OpenBySensor(ctx context.Context, sensorID string) ([]model.Assignment, error)

	// LatestEnd returns the latest end time among the closed
	// assignments of the box or the sensor, or nil if neither of them
	// has a closed assignment.
	LatestEnd(
		ctx context.Context, boxID int64, sensorID string,
	) (*time.Time, error)

	// AvailableSensors lists the active sensors which have no open
	// assignment.
	AvailableSensors(ctx context.Context) ([]model.Sensor, error)
}
