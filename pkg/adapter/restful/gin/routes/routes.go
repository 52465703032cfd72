// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates their
// registration on a gin-gonic engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/alertsrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/boxesrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/fleetrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/ledgerrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/readingsrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/routesrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/sensorsrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/settingsrs"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/tripsrs"
	"github.com/momeni/fleetmon/pkg/core/usecase/appuc"
)

// Prefix is the path prefix of all versioned REST APIs.
const Prefix = "/api/fleetmon/v1"

// Register instantiates a series of "resource" structs, from packages
// which are named like tripsrs, in order to adapt the use cases of the
// app use case with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance. Resources
// ask app for their use case on each request, so a reload of app is
// visible to them without a new registration.
//
// The /healthz endpoint reports whether a database connection can be
// acquired. When metrics is not nil, it is served at /metrics.
func Register(e *gin.Engine, app *appuc.UseCase, metrics http.Handler) {
	e.GET("/healthz", func(c *gin.Context) {
		if err := app.Health(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable", "detail": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if metrics != nil {
		e.GET("/metrics", gin.WrapH(metrics))
	}

	r := e.Group(Prefix)
	settingsrs.Register(r, app)
	boxesrs.Register(r, app.InventoryUseCase)
	sensorsrs.Register(r, app.InventoryUseCase)
	fleetrs.Register(r, app.InventoryUseCase)
	ledgerrs.Register(r, app.LedgerUseCase)
	tripsrs.Register(r, app.TripsUseCase)
	alertsrs.Register(r, app.AlertsUseCase)
	readingsrs.Register(r, app.ReadingsUseCase)
	routesrs.Register(r, app.RoutesUseCase)
}
