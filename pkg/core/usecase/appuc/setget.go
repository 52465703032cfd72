// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import (
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/usecase/alertuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/inventoryuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
	"github.com/momeni/fleetmon/pkg/core/usecase/readinguc"
	"github.com/momeni/fleetmon/pkg/core/usecase/routeuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/tripsuc"
)

// Settings returns a copy of visible settings which are currently in
// effect. The effective settings and use case objects which are built
// based on them may be updated atomically by Reload, while they are
// exposed by a series of getter methods.
func (app *UseCase) Settings() model.VisibleSettings {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return *app.settings
}

// updateAll atomically updates the visible settings and all other use
// case objects. This method minimizes the scope which needs to take a
// writing lock (after instantiating all relevant use case objects).
func (app *UseCase) updateAll(m managedUseCases) {
	app.rwlock.Lock()
	defer app.rwlock.Unlock()
	app.settings = m.settings
	app.ledgerUseCase = m.ledgerUseCase
	app.tripsUseCase = m.tripsUseCase
	app.alertsUseCase = m.alertsUseCase
	app.readingsUseCase = m.readingsUseCase
	app.inventoryUseCase = m.inventoryUseCase
	app.routesUseCase = m.routesUseCase
}

// LedgerUseCase returns the currently effective ledger use case object.
func (app *UseCase) LedgerUseCase() *ledgeruc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.ledgerUseCase
}

func (app *UseCase) TripsUseCase() *tripsuc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.tripsUseCase
}

func (app *UseCase) AlertsUseCase() *alertuc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.alertsUseCase
}

func (app *UseCase) ReadingsUseCase() *readinguc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.readingsUseCase
}

func (app *UseCase) InventoryUseCase() *inventoryuc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.inventoryUseCase
}

func (app *UseCase) RoutesUseCase() *routeuc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.routesUseCase
}
