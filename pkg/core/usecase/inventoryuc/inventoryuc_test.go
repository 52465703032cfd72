// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package inventoryuc_test

import (
	"context"
	"testing"

	"github.com/momeni/fleetmon/internal/test/sqlitedb"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/boxesrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/fleetrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/sensorsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/usecase/inventoryuc"
	"github.com/stretchr/testify/suite"
)

type InventorySuite struct {
	suite.Suite

	ctx   context.Context
	pool  *postgres.Pool
	uc    *inventoryuc.UseCase
	admin *tables.Admin
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventorySuite))
}

func (is *InventorySuite) SetupTest() {
	is.ctx = context.Background()
	is.pool = sqlitedb.New(is.ctx, is.T())
	is.admin = &tables.Admin{Name: "admin"}
	sqlitedb.Insert(
		is.ctx, is.T(), is.pool,
		is.admin,
		&tables.Truck{Plate: "11-111", Status: "available"},
		&tables.Truck{Plate: "22-222", Status: "on_trip"},
		&tables.Driver{Name: "Sam"},
		&tables.CargoType{Name: "Vaccines"},
	)
	is.uc = inventoryuc.New(
		is.pool, boxesrp.New(), sensorsrp.New(), fleetrp.New(),
	)
}

func (is *InventorySuite) box() *model.Box {
	return &model.Box{
		Length: 2, Width: 1.5, Height: 1, MaxWeight: 700,
		AdminID: is.admin.ID,
	}
}

func (is *InventorySuite) TestCreateBox() {
	b, err := is.uc.CreateBox(is.ctx, is.box())
	is.Require().NoError(err)
	is.NotZero(b.ID)
	is.Equal(model.AssetAvailable, b.Status)

	invalid := is.box()
	invalid.Length = 0
	_, err = is.uc.CreateBox(is.ctx, invalid)
	is.True(cerr.IsBadRequest(err), "zero length: %v", err)

	onTrip := is.box()
	onTrip.Status = model.AssetOnTrip
	_, err = is.uc.CreateBox(is.ctx, onTrip)
	is.True(cerr.IsBadRequest(err), "on trip status: %v", err)
	is.ErrorIs(err, inventoryuc.ErrOnTripReserved)

	orphan := is.box()
	orphan.AdminID = 999
	_, err = is.uc.CreateBox(is.ctx, orphan)
	is.True(cerr.IsNotFound(err), "missing admin: %v", err)

	bb, err := is.uc.Boxes(is.ctx)
	is.Require().NoError(err)
	is.Len(bb, 1)
}

func (is *InventorySuite) TestUpdateBox() {
	b, err := is.uc.CreateBox(is.ctx, is.box())
	is.Require().NoError(err)
	b.Status = model.AssetUnderMaintenance
	b.MaxWeight = 900
	b, err = is.uc.UpdateBox(is.ctx, b)
	is.Require().NoError(err)
	is.Equal(model.AssetUnderMaintenance, b.Status)
	is.Equal(900.0, b.MaxWeight)

	available, err := is.uc.AvailableBoxes(is.ctx)
	is.Require().NoError(err)
	is.Empty(available)

	err = is.pool.DB.Model(&tables.Box{}).Where("id = ?", b.ID).Update(
		"status", "on_trip",
	).Error
	is.Require().NoError(err)
	b.Status = model.AssetAvailable
	_, err = is.uc.UpdateBox(is.ctx, b)
	is.True(cerr.IsInvalidTransition(err), "on trip box: %v", err)
	is.ErrorIs(err, model.ErrLockedOnTrip)

	b.ID = 999
	_, err = is.uc.UpdateBox(is.ctx, b)
	is.True(cerr.IsNotFound(err), "missing box: %v", err)
}

func (is *InventorySuite) TestSensors() {
	s, err := is.uc.CreateSensor(is.ctx, &model.Sensor{
		ID: "TH-1", Type: model.SensorTempAndHumidity,
	})
	is.Require().NoError(err)
	is.Equal(model.SensorActive, s.Status)

	_, err = is.uc.CreateSensor(is.ctx, &model.Sensor{
		ID: "TH-1", Type: model.SensorTemperature,
	})
	is.True(cerr.IsConflict(err), "duplicate id: %v", err)

	_, err = is.uc.CreateSensor(is.ctx, &model.Sensor{ID: "X"})
	is.True(cerr.IsBadRequest(err), "missing type: %v", err)

	s.Status = model.SensorOutOfService
	s, err = is.uc.UpdateSensor(is.ctx, s)
	is.Require().NoError(err)
	is.Equal(model.SensorOutOfService, s.Status)
	active, err := is.uc.ActiveSensors(is.ctx)
	is.Require().NoError(err)
	is.Empty(active)
	all, err := is.uc.Sensors(is.ctx)
	is.Require().NoError(err)
	is.Len(all, 1)

	_, err = is.uc.UpdateSensor(is.ctx, &model.Sensor{
		ID: "missing", Type: model.SensorHumidity,
		Status: model.SensorActive,
	})
	is.True(cerr.IsNotFound(err), "missing sensor: %v", err)
}

func (is *InventorySuite) TestFleetListings() {
	trucks, err := is.uc.Trucks(is.ctx)
	is.Require().NoError(err)
	is.Len(trucks, 2)
	available, err := is.uc.AvailableTrucks(is.ctx)
	is.Require().NoError(err)
	is.Require().Len(available, 1)
	is.Equal("11-111", available[0].Plate)
	drivers, err := is.uc.Drivers(is.ctx)
	is.Require().NoError(err)
	is.Len(drivers, 1)
	cargo, err := is.uc.CargoTypes(is.ctx)
	is.Require().NoError(err)
	is.Len(cargo, 1)
}
