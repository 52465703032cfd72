// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ledgeruc contains the sensor assignment ledger UseCase.
// The ledger is an append-mostly history of which sensor was attached
// to which box and during which interval. At any time, each box has at
// most one open (active) assignment and each sensor is open on at most
// one box. Mutations lock the box row and run in one transaction, while
// the partial unique indexes of the store reject the concurrent writers
// which slip through (reported as cerr.Conflict errors).
package ledgeruc

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

// Scopes which are reported to a FaultObserver.
const (
	ScopeBox    = "box"
	ScopeSensor = "sensor"
)

// FaultObserver is notified whenever more than one open assignment is
// found for a box (ScopeBox) or a sensor (ScopeSensor).
type FaultObserver interface {
	MultipleOpenAssignments(ctx context.Context, scope string, open int)
}

// UseCase represents the assignment ledger use case. It holds the
// database connection pool and the boxes, sensors, and ledger
// repositories.
type UseCase struct {
	pool    repo.Pool
	boxes   repo.Boxes
	sensors repo.Sensors
	ledger  repo.Ledger

	observer FaultObserver
	now      func() time.Time
}

// New instantiates a ledger use case.
func New(
	p repo.Pool,
	boxes repo.Boxes,
	sensors repo.Sensors,
	ledger repo.Ledger,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, boxes: boxes, sensors: sensors, ledger: ledger}
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

// ActiveSensor returns the active assignment of the boxID box or nil
// if no sensor is attached to it right now. A missing box is reported
// as a cerr.NotFound error.
func (l *UseCase) ActiveSensor(
	ctx context.Context, boxID int64,
) (a *model.Assignment, err error) {
	err = l.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := l.boxes.Conn(c).Get(ctx, boxID); err != nil {
			return err
		}
		open, err := l.ledger.Conn(c).OpenByBox(ctx, boxID)
		if err != nil {
			return err
		}
		a = l.resolve(ctx, ScopeBox, log.ID("box_id", boxID), open)
		return nil
	})
	if err != nil {
		a = nil
	}
	return
}

// ActiveBox returns the active assignment of the sensorID sensor or
// nil if it is not attached to any box right now.
func (l *UseCase) ActiveBox(
	ctx context.Context, sensorID string,
) (a *model.Assignment, err error) {
	err = l.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := l.sensors.Conn(c).Get(ctx, sensorID); err != nil {
			return err
		}
		open, err := l.ledger.Conn(c).OpenBySensor(ctx, sensorID)
		if err != nil {
			return err
		}
		a = l.resolve(
			ctx, ScopeSensor, slog.String("sensor_id", sensorID), open,
		)
		return nil
	})
	if err != nil {
		a = nil
	}
	return
}

// Errors of the Assign and Release use cases.
var (
	ErrSensorRequired     = errors.New("sensor id is required")
	ErrSensorOutOfService = errors.New("sensor is out of service")
	ErrStartBeforeActive  = errors.New(
		"start is before the start of the active assignment",
	)
	ErrStartBeforeHistory = errors.New(
		"start overlaps a closed assignment of the box or sensor",
	)
	ErrReleaseBeforeStart = errors.New(
		"release time is before the start of the active assignment",
	)
)

// Assign attaches the sensorID sensor to the boxID box from the start
// time (or now, if start is zero). The active assignment of the box is
// closed at start, so the box history has no gap. The start may not
// precede the end of any closed assignment of the box or the sensor,
// so their histories never overlap. Assigning a sensor
// which is already active on the same box returns the existing
// assignment without writing anything.
func (l *UseCase) Assign(
	ctx context.Context, boxID int64, sensorID string, start time.Time,
) (a *model.Assignment, err error) {
	if sensorID == "" {
		return nil, cerr.BadRequest(ErrSensorRequired)
	}
	if start.IsZero() {
		start = l.now()
	}
	start = start.UTC()
	err = repo.WithTx(ctx, l.pool, func(ctx context.Context, tx repo.Tx) error {
		a, err = l.assign(ctx, tx, boxID, sensorID, start)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (l *UseCase) assign(
	ctx context.Context,
	tx repo.Tx,
	boxID int64,
	sensorID string,
	start time.Time,
) (*model.Assignment, error) {
	box, err := l.boxes.Tx(tx).Lock(ctx, boxID)
	if err != nil {
		return nil, err
	}
	if box.Status == model.AssetOnTrip {
		return nil, cerr.InvalidTransition(
			fmt.Errorf("box %d: %w", boxID, model.ErrLockedOnTrip),
		)
	}
	sensor, err := l.sensors.Tx(tx).Get(ctx, sensorID)
	if err != nil {
		return nil, err
	}
	if sensor.Status == model.SensorOutOfService {
		return nil, cerr.InvalidTransition(
			fmt.Errorf("sensor %q: %w", sensorID, ErrSensorOutOfService),
		)
	}
	q := l.ledger.Tx(tx)
	open, err := q.OpenBySensor(ctx, sensorID)
	if err != nil {
		return nil, err
	}
	other := l.resolve(
		ctx, ScopeSensor, slog.String("sensor_id", sensorID), open,
	)
	if other != nil && other.BoxID != boxID {
		return nil, cerr.Conflict(fmt.Errorf(
			"sensor %q is attached to box %d", sensorID, other.BoxID,
		))
	}
	open, err = q.OpenByBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	active := l.resolve(ctx, ScopeBox, log.ID("box_id", boxID), open)
	if active != nil {
		if active.SensorID == sensorID {
			return active, nil
		}
		if start.Before(active.Start) {
			return nil, cerr.BadRequest(ErrStartBeforeActive)
		}
	}
	end, err := q.LatestEnd(ctx, boxID, sensorID)
	if err != nil {
		return nil, err
	}
	if end != nil && start.Before(*end) {
		return nil, cerr.BadRequest(fmt.Errorf(
			"%w: closed at %s", ErrStartBeforeHistory,
			end.UTC().Format(time.RFC3339),
		))
	}
	closed, err := q.CloseOpen(ctx, boxID, start)
	if err != nil {
		return nil, fmt.Errorf("closing active assignment: %w", err)
	}
	a, err := q.Open(ctx, boxID, sensorID, start)
	if err != nil {
		return nil, fmt.Errorf("opening assignment: %w", err)
	}
	log.Info(
		ctx, "sensor assigned",
		log.ID("box_id", boxID),
		slog.String("sensor_id", sensorID),
		log.Time("start", start),
		slog.Int64("closed", closed),
	)
	return a, nil
}

// Release detaches whatever sensor is attached to the boxID box by
// closing its open assignments at the at time (or now, if at is zero).
// Releasing a box without any open assignment is a no-op.
func (l *UseCase) Release(
	ctx context.Context, boxID int64, at time.Time,
) error {
	if at.IsZero() {
		at = l.now()
	}
	at = at.UTC()
	return repo.WithTx(ctx, l.pool, func(ctx context.Context, tx repo.Tx) error {
		box, err := l.boxes.Tx(tx).Lock(ctx, boxID)
		if err != nil {
			return err
		}
		if box.Status == model.AssetOnTrip {
			return cerr.InvalidTransition(
				fmt.Errorf("box %d: %w", boxID, model.ErrLockedOnTrip),
			)
		}
		q := l.ledger.Tx(tx)
		open, err := q.OpenByBox(ctx, boxID)
		if err != nil {
			return err
		}
		if len(open) == 0 {
			return nil
		}
		for _, a := range open {
			if at.Before(a.Start) {
				return cerr.BadRequest(ErrReleaseBeforeStart)
			}
		}
		closed, err := q.CloseOpen(ctx, boxID, at)
		if err != nil {
			return fmt.Errorf("closing active assignment: %w", err)
		}
		log.Info(
			ctx, "box released",
			log.ID("box_id", boxID),
			log.Time("at", at),
			slog.Int64("closed", closed),
		)
		return nil
	})
}

// List returns all assignments, newest first.
func (l *UseCase) List(
	ctx context.Context,
) (as []model.Assignment, err error) {
	err = l.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		as, err = l.ledger.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		as = nil
	}
	return
}

// History returns the assignments of the boxID box (newest first) and
// its currently active sensor, if any.
func (l *UseCase) History(
	ctx context.Context, boxID int64,
) (v *model.BoxSensorView, err error) {
	err = l.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := l.boxes.Conn(c).Get(ctx, boxID); err != nil {
			return err
		}
		as, err := l.ledger.Conn(c).ByBox(ctx, boxID)
		if err != nil {
			return err
		}
		model.SortNewestFirst(as)
		v = &model.BoxSensorView{BoxID: boxID, History: as}
		if a := l.resolve(ctx, ScopeBox, log.ID("box_id", boxID), as); a != nil {
			v.ActiveSensor = &a.SensorID
		}
		return nil
	})
	if err != nil {
		v = nil
	}
	return
}

// AvailableSensors lists the active sensors which may be assigned,
// because they are not attached to any box right now.
func (l *UseCase) AvailableSensors(
	ctx context.Context,
) (ss []model.Sensor, err error) {
	err = l.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ss, err = l.ledger.Conn(c).AvailableSensors(ctx)
		return err
	})
	if err != nil {
		ss = nil
	}
	return
}

// resolve picks the active assignment among as. Multiple open rows are
// a data-integrity fault which is logged and reported to the observer,
// while the most recent one is still returned.
func (l *UseCase) resolve(
	ctx context.Context, scope string, key slog.Attr, as []model.Assignment,
) *model.Assignment {
	r := model.ResolveActive(as)
	if r.Faulty() {
		log.Error(
			ctx, "multiple open sensor assignments",
			key,
			slog.Int("open", r.OpenCount),
			log.ID("chosen_id", r.Active.ID),
		)
		if l.observer != nil {
			l.observer.MultipleOpenAssignments(ctx, scope, r.OpenCount)
		}
	}
	return r.Active
}
