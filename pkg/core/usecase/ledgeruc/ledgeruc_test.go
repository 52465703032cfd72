// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ledgeruc_test

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/fleetmon/internal/test/sqlitedb"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/boxesrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/ledgerrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/sensorsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
	"github.com/stretchr/testify/suite"
)

type faultCounter struct {
	scopes []string
}

func (fc *faultCounter) MultipleOpenAssignments(
	_ context.Context, scope string, _ int,
) {
	fc.scopes = append(fc.scopes, scope)
}

type LedgerSuite struct {
	suite.Suite

	ctx    context.Context
	pool   *postgres.Pool
	uc     *ledgeruc.UseCase
	faults *faultCounter

	box1, box2, busy *tables.Box
	t0, t1, t2       time.Time
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (ls *LedgerSuite) SetupTest() {
	ls.ctx = context.Background()
	ls.pool = sqlitedb.New(ls.ctx, ls.T())
	admin := &tables.Admin{Name: "admin"}
	sqlitedb.Insert(ls.ctx, ls.T(), ls.pool, admin)
	newBox := func(status string) *tables.Box {
		return &tables.Box{
			Length: 2, Width: 1, Height: 1, MaxWeight: 500,
			Status: status, AdminID: admin.ID,
		}
	}
	ls.box1 = newBox("available")
	ls.box2 = newBox("available")
	ls.busy = newBox("on_trip")
	sqlitedb.Insert(
		ls.ctx, ls.T(), ls.pool,
		ls.box1, ls.box2, ls.busy,
		&tables.Sensor{ID: "S1", Type: "temperature", Status: "active"},
		&tables.Sensor{ID: "S2", Type: "temp_and_humidity", Status: "active"},
		&tables.Sensor{ID: "S3", Type: "humidity", Status: "out_of_service"},
	)
	ls.t0 = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	ls.t1 = ls.t0.Add(2 * time.Hour)
	ls.t2 = ls.t1.Add(2 * time.Hour)
	ls.faults = &faultCounter{}
	uc, err := ledgeruc.New(
		ls.pool, boxesrp.New(), sensorsrp.New(), ledgerrp.New(),
		ledgeruc.WithFaultObserver(ls.faults),
		ledgeruc.WithClock(func() time.Time { return ls.t2 }),
	)
	ls.Require().NoError(err)
	ls.uc = uc
}

func (ls *LedgerSuite) sameTime(want time.Time, got *time.Time) {
	ls.Require().NotNil(got)
	ls.True(want.Equal(*got), "want %v, got %v", want, *got)
}

func (ls *LedgerSuite) TestReassignmentClosesPreviousSensor() {
	_, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t0)
	ls.Require().NoError(err)
	a, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S2", ls.t1)
	ls.Require().NoError(err)
	ls.Equal("S2", a.SensorID)
	ls.True(a.Open())

	v, err := ls.uc.History(ls.ctx, ls.box1.ID)
	ls.Require().NoError(err)
	ls.Require().NotNil(v.ActiveSensor)
	ls.Equal("S2", *v.ActiveSensor)
	ls.Require().Len(v.History, 2)
	ls.Equal("S2", v.History[0].SensorID)
	ls.Nil(v.History[0].End)
	ls.sameTime(ls.t1, &v.History[0].Start)
	ls.Equal("S1", v.History[1].SensorID)
	ls.sameTime(ls.t1, v.History[1].End)

	active, err := ls.uc.ActiveBox(ls.ctx, "S1")
	ls.Require().NoError(err)
	ls.Nil(active)
	active, err = ls.uc.ActiveSensor(ls.ctx, ls.box1.ID)
	ls.Require().NoError(err)
	ls.Require().NotNil(active)
	ls.Equal("S2", active.SensorID)
	ls.Empty(ls.faults.scopes)
}

func (ls *LedgerSuite) TestAssignSameSensorIsNoop() {
	a1, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t0)
	ls.Require().NoError(err)
	a2, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t1)
	ls.Require().NoError(err)
	ls.Equal(a1.ID, a2.ID)
	ls.sameTime(ls.t0, &a2.Start)
	all, err := ls.uc.List(ls.ctx)
	ls.Require().NoError(err)
	ls.Len(all, 1)
}

func (ls *LedgerSuite) TestAssignDefaultsToNow() {
	a, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", time.Time{})
	ls.Require().NoError(err)
	ls.sameTime(ls.t2, &a.Start)
}

func (ls *LedgerSuite) TestSensorOnAnotherBoxConflicts() {
	_, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t0)
	ls.Require().NoError(err)
	_, err = ls.uc.Assign(ls.ctx, ls.box2.ID, "S1", ls.t1)
	ls.True(cerr.IsConflict(err), "unexpected error: %v", err)
	active, err := ls.uc.ActiveBox(ls.ctx, "S1")
	ls.Require().NoError(err)
	ls.Require().NotNil(active)
	ls.Equal(ls.box1.ID, active.BoxID)
}

func (ls *LedgerSuite) TestAssignRejections() {
	_, err := ls.uc.Assign(ls.ctx, ls.busy.ID, "S1", ls.t0)
	ls.True(cerr.IsInvalidTransition(err), "on trip box: %v", err)
	ls.ErrorIs(err, model.ErrLockedOnTrip)

	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S3", ls.t0)
	ls.True(cerr.IsInvalidTransition(err), "out of service: %v", err)
	ls.ErrorIs(err, ledgeruc.ErrSensorOutOfService)

	_, err = ls.uc.Assign(ls.ctx, 999, "S1", ls.t0)
	ls.True(cerr.IsNotFound(err), "missing box: %v", err)

	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S9", ls.t0)
	ls.True(cerr.IsNotFound(err), "missing sensor: %v", err)

	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "", ls.t0)
	ls.True(cerr.IsBadRequest(err), "empty sensor: %v", err)

	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t1)
	ls.Require().NoError(err)
	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S2", ls.t0)
	ls.True(cerr.IsBadRequest(err), "start before active: %v", err)
	ls.ErrorIs(err, ledgeruc.ErrStartBeforeActive)

	all, err := ls.uc.List(ls.ctx)
	ls.Require().NoError(err)
	ls.Len(all, 1)
}

func (ls *LedgerSuite) TestBackdatedStartOverlappingBoxHistory() {
	_, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t0)
	ls.Require().NoError(err)
	ls.Require().NoError(ls.uc.Release(ls.ctx, ls.box1.ID, ls.t2))

	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S2", ls.t1)
	ls.True(cerr.IsBadRequest(err), "overlapping box history: %v", err)
	ls.ErrorIs(err, ledgeruc.ErrStartBeforeHistory)

	a, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S2", ls.t2)
	ls.Require().NoError(err, "starting at the last end is allowed")
	ls.sameTime(ls.t2, &a.Start)
}

func (ls *LedgerSuite) TestBackdatedStartOverlappingSensorHistory() {
	_, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t0)
	ls.Require().NoError(err)
	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S2", ls.t2)
	ls.Require().NoError(err)

	_, err = ls.uc.Assign(ls.ctx, ls.box2.ID, "S1", ls.t1)
	ls.True(cerr.IsBadRequest(err), "overlapping sensor history: %v", err)
	ls.ErrorIs(err, ledgeruc.ErrStartBeforeHistory)
	active, err := ls.uc.ActiveBox(ls.ctx, "S1")
	ls.Require().NoError(err)
	ls.Nil(active)

	_, err = ls.uc.Assign(ls.ctx, ls.box2.ID, "S1", ls.t2)
	ls.Require().NoError(err)
	active, err = ls.uc.ActiveBox(ls.ctx, "S1")
	ls.Require().NoError(err)
	ls.Require().NotNil(active)
	ls.Equal(ls.box2.ID, active.BoxID)
}

// openRow inserts an open assignment bypassing the use case checks.
func (ls *LedgerSuite) openRow(boxID int64, sensorID string, start time.Time) error {
	return repo.WithTx(ls.ctx, ls.pool, func(ctx context.Context, tx repo.Tx) error {
		_, err := ledgerrp.New().Tx(tx).Open(ctx, boxID, sensorID, start)
		return err
	})
}

func (ls *LedgerSuite) TestStoreRejectsSecondOpenAssignment() {
	ls.Require().NoError(ls.openRow(ls.box1.ID, "S1", ls.t0))

	err := ls.openRow(ls.box1.ID, "S2", ls.t1)
	ls.True(cerr.IsConflict(err), "second open row of a box: %v", err)
	err = ls.openRow(ls.box2.ID, "S1", ls.t1)
	ls.True(cerr.IsConflict(err), "second open row of a sensor: %v", err)

	all, err := ls.uc.List(ls.ctx)
	ls.Require().NoError(err)
	ls.Len(all, 1)
	ls.Empty(ls.faults.scopes)
}

func (ls *LedgerSuite) TestReleaseIsIdempotent() {
	_, err := ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t0)
	ls.Require().NoError(err)
	ls.Require().NoError(ls.uc.Release(ls.ctx, ls.box1.ID, ls.t1))
	ls.Require().NoError(ls.uc.Release(ls.ctx, ls.box1.ID, ls.t2))

	active, err := ls.uc.ActiveSensor(ls.ctx, ls.box1.ID)
	ls.Require().NoError(err)
	ls.Nil(active)
	v, err := ls.uc.History(ls.ctx, ls.box1.ID)
	ls.Require().NoError(err)
	ls.Nil(v.ActiveSensor)
	ls.Require().Len(v.History, 1)
	ls.sameTime(ls.t1, v.History[0].End)
}

func (ls *LedgerSuite) TestReleaseRejections() {
	err := ls.uc.Release(ls.ctx, ls.busy.ID, ls.t0)
	ls.True(cerr.IsInvalidTransition(err), "on trip box: %v", err)
	err = ls.uc.Release(ls.ctx, 999, ls.t0)
	ls.True(cerr.IsNotFound(err), "missing box: %v", err)

	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t1)
	ls.Require().NoError(err)
	err = ls.uc.Release(ls.ctx, ls.box1.ID, ls.t0)
	ls.True(cerr.IsBadRequest(err), "release before start: %v", err)
}

func (ls *LedgerSuite) TestAvailableSensors() {
	ss, err := ls.uc.AvailableSensors(ls.ctx)
	ls.Require().NoError(err)
	ls.Equal([]string{"S1", "S2"}, sensorIDs(ss))

	_, err = ls.uc.Assign(ls.ctx, ls.box1.ID, "S1", ls.t0)
	ls.Require().NoError(err)
	ss, err = ls.uc.AvailableSensors(ls.ctx)
	ls.Require().NoError(err)
	ls.Equal([]string{"S2"}, sensorIDs(ss))

	ls.Require().NoError(ls.uc.Release(ls.ctx, ls.box1.ID, ls.t1))
	ss, err = ls.uc.AvailableSensors(ls.ctx)
	ls.Require().NoError(err)
	ls.Equal([]string{"S1", "S2"}, sensorIDs(ss))
}

func (ls *LedgerSuite) TestMultipleOpenAssignmentsAreReported() {
	err := ls.pool.DB.Exec("DROP INDEX sensor_box_open_box_uidx").Error
	ls.Require().NoError(err)
	sqlitedb.Insert(
		ls.ctx, ls.T(), ls.pool,
		&tables.SensorBox{BoxID: ls.box1.ID, SensorID: "S1", StartedAt: ls.t0},
		&tables.SensorBox{BoxID: ls.box1.ID, SensorID: "S2", StartedAt: ls.t1},
	)
	active, err := ls.uc.ActiveSensor(ls.ctx, ls.box1.ID)
	ls.Require().NoError(err)
	ls.Require().NotNil(active)
	ls.Equal("S2", active.SensorID)
	ls.Equal([]string{ledgeruc.ScopeBox}, ls.faults.scopes)
}

func sensorIDs(ss []model.Sensor) []string {
	ids := make([]string, 0, len(ss))
	for _, s := range ss {
		ids = append(ids, s.ID)
	}
	return ids
}
