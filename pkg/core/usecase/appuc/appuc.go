// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package appuc contains the application UseCase which maintains and
// provides the visible settings and the other use case objects (with
// atomic replacement support) so they may be used by the resources
// packages. Whenever the configuration is reloaded, a new Builder is
// passed to Reload and all use case objects are replaced together.
package appuc

import (
	"context"
	"fmt"
	"sync"

	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
	"github.com/momeni/fleetmon/pkg/core/usecase/alertuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/inventoryuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
	"github.com/momeni/fleetmon/pkg/core/usecase/readinguc"
	"github.com/momeni/fleetmon/pkg/core/usecase/routeuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/tripsuc"
)

// Deps contains the repositories and adapter ports which the use case
// objects depend on. They do not change when settings are reloaded.
type Deps struct {
	Boxes    repo.Boxes
	Sensors  repo.Sensors
	Ledger   repo.Ledger
	Trips    repo.Trips
	Alerts   repo.Alerts
	Readings repo.Readings
	Routes   repo.Routes
	Fleet    repo.Fleet

	// Faults is optional and receives the ledger integrity faults.
	Faults ledgeruc.FaultObserver

	// Geometry is optional, without it route geometries are not
	// available.
	Geometry routeuc.GeometryProvider
}

// UseCase represents an application use case. It holds a database
// connection pool and the dependencies of the other use cases, so it
// can pass them to a use case builder object (which is realized by the
// effective Config instance) in order to create them during a Reload.
type UseCase struct {
	pool repo.Pool
	deps Deps

	// mutex is used by the Reload method so only one goroutine can
	// build the new use case objects at any time, while the others may
	// keep using the old ones.
	mutex sync.Mutex

	// rwlock is locked for writing by updateAll whenever the new state
	// including the visible settings and use case objects are prepared
	// and should be published atomically, while it is locked by all
	// getter methods for reading in order to access the published state.
	rwlock sync.RWMutex

	settings         *model.VisibleSettings
	ledgerUseCase    *ledgeruc.UseCase
	tripsUseCase     *tripsuc.UseCase
	alertsUseCase    *alertuc.UseCase
	readingsUseCase  *readinguc.UseCase
	inventoryUseCase *inventoryuc.UseCase
	routesUseCase    *routeuc.UseCase
}

// New instantiates an application use case object and creates the
// other use case objects using the b Builder.
func New(p repo.Pool, d Deps, b Builder) (*UseCase, error) {
	uc := &UseCase{pool: p, deps: d}
	if err := uc.Reload(b); err != nil {
		return nil, err
	}
	return uc, nil
}

// Reload creates fresh use case objects using the b Builder and then
// replaces the current ones atomically. Requests which already fetched
// the old use case objects complete with them.
func (app *UseCase) Reload(b Builder) error {
	app.mutex.Lock()
	defer app.mutex.Unlock()
	managed, err := app.newManagedUseCases(b)
	if err != nil {
		return fmt.Errorf("creating use cases: %w", err)
	}
	app.updateAll(managed)
	return nil
}

// Health checks that a database connection can be acquired.
func (app *UseCase) Health(ctx context.Context) error {
	return app.pool.Conn(ctx, func(context.Context, repo.Conn) error {
		return nil
	})
}

type managedUseCases struct {
	settings         *model.VisibleSettings
	ledgerUseCase    *ledgeruc.UseCase
	tripsUseCase     *tripsuc.UseCase
	alertsUseCase    *alertuc.UseCase
	readingsUseCase  *readinguc.UseCase
	inventoryUseCase *inventoryuc.UseCase
	routesUseCase    *routeuc.UseCase
}

// newManagedUseCases creates all relevant use case objects using the
// given Builder instance and wraps their pointers by a managedUseCases
// struct, so they may be passed to the updateAll method later.
func (app *UseCase) newManagedUseCases(
	b Builder,
) (managedUseCases, error) {
	var nilm managedUseCases
	p, d := app.pool, app.deps
	ledgerUseCase, err := b.NewLedgerUseCase(p, d)
	if err != nil {
		return nilm, fmt.Errorf("creating ledger use case: %w", err)
	}
	tripsUseCase, err := b.NewTripsUseCase(p, d)
	if err != nil {
		return nilm, fmt.Errorf("creating trips use case: %w", err)
	}
	readingsUseCase, err := b.NewReadingsUseCase(p, d)
	if err != nil {
		return nilm, fmt.Errorf("creating readings use case: %w", err)
	}
	vs := b.VisibleSettings()
	vs.Trips.DepartureGrace = tripsUseCase.DepartureGrace()
	vs.Readings.RecentCount = readingsUseCase.RecentCount()
	return managedUseCases{
		settings:        vs,
		ledgerUseCase:   ledgerUseCase,
		tripsUseCase:    tripsUseCase,
		readingsUseCase: readingsUseCase,
		alertsUseCase: alertuc.New(
			p, d.Trips, d.Alerts, d.Readings, d.Routes,
		),
		inventoryUseCase: inventoryuc.New(p, d.Boxes, d.Sensors, d.Fleet),
		routesUseCase:    routeuc.New(p, d.Routes, d.Fleet, d.Geometry),
	}, nil
}
