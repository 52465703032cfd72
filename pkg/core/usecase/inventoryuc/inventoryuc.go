// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package inventoryuc contains the inventory UseCase which manages the
// boxes and sensors and lists the fleet reference data (trucks,
// drivers, and cargo types) which trips refer to.
//
// The on_trip status of boxes is owned by the trips use case. Admins
// may not set it and may not edit a box while it is on a trip.
package inventoryuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

// ErrOnTripReserved is reported when an admin tries to set the on_trip
// status of a box directly.
var ErrOnTripReserved = errors.New("on_trip status is managed by trips")

type UseCase struct {
	pool    repo.Pool
	boxes   repo.Boxes
	sensors repo.Sensors
	fleet   repo.Fleet
}

func New(
	p repo.Pool, boxes repo.Boxes, sensors repo.Sensors, fleet repo.Fleet,
) *UseCase {
	return &UseCase{pool: p, boxes: boxes, sensors: sensors, fleet: fleet}
}

// Boxes lists all boxes.
func (inv *UseCase) Boxes(ctx context.Context) (bb []model.Box, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		bb, err = inv.boxes.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		bb = nil
	}
	return
}

// AvailableBoxes lists the boxes which may be reserved by a new trip.
func (inv *UseCase) AvailableBoxes(
	ctx context.Context,
) (bb []model.Box, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		bb, err = inv.boxes.Conn(c).ListByStatus(ctx, model.AssetAvailable)
		return err
	})
	if err != nil {
		bb = nil
	}
	return
}

// CreateBox inserts b. A zero status defaults to available.
func (inv *UseCase) CreateBox(
	ctx context.Context, b *model.Box,
) (box *model.Box, err error) {
	nb := *b
	if nb.Status == model.AssetStatusInvalid {
		nb.Status = model.AssetAvailable
	}
	if err = validateBox(&nb); err != nil {
		return nil, err
	}
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := inv.fleet.Conn(c).Admin(ctx, nb.AdminID); err != nil {
			return err
		}
		box, err = inv.boxes.Conn(c).Create(ctx, &nb)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "box created", log.ID("box_id", box.ID))
	return box, nil
}

// UpdateBox overwrites the b.ID box fields. Boxes which are on a trip
// may not be updated.
func (inv *UseCase) UpdateBox(
	ctx context.Context, b *model.Box,
) (box *model.Box, err error) {
	if err = validateBox(b); err != nil {
		return nil, err
	}
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if _, err := inv.fleet.Conn(c).Admin(ctx, b.AdminID); err != nil {
			return err
		}
		box, err = inv.boxes.Conn(c).Update(ctx, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return box, nil
}

func validateBox(b *model.Box) error {
	if err := b.Validate(); err != nil {
		return cerr.BadRequest(err)
	}
	if b.Status == model.AssetOnTrip {
		return cerr.BadRequest(ErrOnTripReserved)
	}
	return nil
}

// Sensors lists all sensors.
func (inv *UseCase) Sensors(
	ctx context.Context,
) (ss []model.Sensor, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ss, err = inv.sensors.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		ss = nil
	}
	return
}

// ActiveSensors lists the sensors which are in service, regardless of
// their assignments.
func (inv *UseCase) ActiveSensors(
	ctx context.Context,
) (ss []model.Sensor, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ss, err = inv.sensors.Conn(c).ListByStatus(ctx, model.SensorActive)
		return err
	})
	if err != nil {
		ss = nil
	}
	return
}

// CreateSensor inserts s. A zero status defaults to active.
func (inv *UseCase) CreateSensor(
	ctx context.Context, s *model.Sensor,
) (sensor *model.Sensor, err error) {
	ns := *s
	if ns.Status == model.SensorStatusInvalid {
		ns.Status = model.SensorActive
	}
	if err = ns.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		sensor, err = inv.sensors.Conn(c).Create(ctx, &ns)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating sensor %q: %w", ns.ID, err)
	}
	log.Info(ctx, "sensor created", slog.String("sensor_id", ns.ID))
	return sensor, nil
}

// UpdateSensor overwrites the type and status of the s.ID sensor.
func (inv *UseCase) UpdateSensor(
	ctx context.Context, s *model.Sensor,
) (sensor *model.Sensor, err error) {
	if err = s.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		sensor, err = inv.sensors.Conn(c).Update(ctx, s)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sensor, nil
}

// Trucks lists all trucks.
func (inv *UseCase) Trucks(
	ctx context.Context,
) (tt []model.Truck, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		tt, err = inv.fleet.Conn(c).Trucks(ctx)
		return err
	})
	if err != nil {
		tt = nil
	}
	return
}

// AvailableTrucks lists the trucks which may be reserved by a new trip.
func (inv *UseCase) AvailableTrucks(
	ctx context.Context,
) (tt []model.Truck, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		tt, err = inv.fleet.Conn(c).TrucksByStatus(ctx, model.AssetAvailable)
		return err
	})
	if err != nil {
		tt = nil
	}
	return
}

func (inv *UseCase) Drivers(
	ctx context.Context,
) (dd []model.Driver, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		dd, err = inv.fleet.Conn(c).Drivers(ctx)
		return err
	})
	if err != nil {
		dd = nil
	}
	return
}

func (inv *UseCase) CargoTypes(
	ctx context.Context,
) (cc []model.CargoType, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cc, err = inv.fleet.Conn(c).CargoTypes(ctx)
		return err
	})
	if err != nil {
		cc = nil
	}
	return
}
