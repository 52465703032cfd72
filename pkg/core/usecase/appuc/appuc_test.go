// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/momeni/fleetmon/internal/test/sqlitedb"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/alertsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/boxesrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/fleetrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/ledgerrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/readingsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/routesrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/sensorsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tripsrp"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
	"github.com/momeni/fleetmon/pkg/core/usecase/appuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
	"github.com/momeni/fleetmon/pkg/core/usecase/readinguc"
	"github.com/momeni/fleetmon/pkg/core/usecase/tripsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type builder struct {
	grace  time.Duration
	recent int
	logger bool
	err    error
}

func (b builder) VisibleSettings() *model.VisibleSettings {
	return &model.VisibleSettings{Logger: b.logger}
}

func (b builder) NewLedgerUseCase(
	p repo.Pool, d appuc.Deps,
) (*ledgeruc.UseCase, error) {
	return ledgeruc.New(p, d.Boxes, d.Sensors, d.Ledger)
}

func (b builder) NewTripsUseCase(
	p repo.Pool, d appuc.Deps,
) (*tripsuc.UseCase, error) {
	if b.err != nil {
		return nil, b.err
	}
	return tripsuc.New(
		p, d.Trips, d.Boxes, d.Fleet, d.Routes,
		tripsuc.WithDepartureGrace(b.grace),
	)
}

func (b builder) NewReadingsUseCase(
	p repo.Pool, d appuc.Deps,
) (*readinguc.UseCase, error) {
	var opts []readinguc.Option
	if b.recent != 0 {
		opts = append(opts, readinguc.WithRecentCount(b.recent))
	}
	return readinguc.New(p, d.Trips, d.Readings, opts...)
}

func deps() appuc.Deps {
	return appuc.Deps{
		Boxes:    boxesrp.New(),
		Sensors:  sensorsrp.New(),
		Ledger:   ledgerrp.New(),
		Trips:    tripsrp.New(),
		Alerts:   alertsrp.New(),
		Readings: readingsrp.New(),
		Routes:   routesrp.New(),
		Fleet:    fleetrp.New(),
	}
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	pool := sqlitedb.New(ctx, t)
	app, err := appuc.New(pool, deps(), builder{grace: time.Minute})
	require.NoError(t, err)
	require.NoError(t, app.Health(ctx))

	assert.Equal(t, model.VisibleSettings{
		Trips:    model.TripSettings{DepartureGrace: time.Minute},
		Readings: model.ReadingSettings{RecentCount: readinguc.DefaultRecentCount},
	}, app.Settings())
	trips, ledger := app.TripsUseCase(), app.LedgerUseCase()
	for _, uc := range []any{
		trips, ledger, app.AlertsUseCase(), app.ReadingsUseCase(),
		app.InventoryUseCase(), app.RoutesUseCase(),
	} {
		assert.NotNil(t, uc)
	}

	err = app.Reload(builder{grace: 2 * time.Minute, recent: 3, logger: true})
	require.NoError(t, err)
	assert.Equal(t, model.VisibleSettings{
		Trips:    model.TripSettings{DepartureGrace: 2 * time.Minute},
		Readings: model.ReadingSettings{RecentCount: 3},
		Logger:   true,
	}, app.Settings())
	assert.NotSame(t, trips, app.TripsUseCase())
	assert.NotSame(t, ledger, app.LedgerUseCase())

	trips = app.TripsUseCase()
	failure := errors.New("bad settings")
	err = app.Reload(builder{err: failure})
	assert.ErrorIs(t, err, failure)
	assert.Same(t, trips, app.TripsUseCase(), "failed reload must keep use cases")
	assert.Equal(t, 3, app.Settings().Readings.RecentCount)
}

func TestNewFails(t *testing.T) {
	ctx := context.Background()
	pool := sqlitedb.New(ctx, t)
	failure := errors.New("bad settings")
	_, err := appuc.New(pool, deps(), builder{err: failure})
	assert.ErrorIs(t, err, failure)
}
