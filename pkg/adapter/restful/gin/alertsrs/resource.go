// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package alertsrs realizes the read-only alerts resource.
package alertsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/usecase/alertuc"
)

type resource struct {
	alerts func() *alertuc.UseCase
}

// Register adds the GET trips/:id/alerts, GET trips/:id/excursions,
// and GET alertDefinitions REST APIs to r.
func Register(r *gin.RouterGroup, alerts func() *alertuc.UseCase) {
	rs := &resource{alerts: alerts}
	r.GET("trips/:id/alerts", rs.TripAlerts)
	r.GET("trips/:id/excursions", rs.TripExcursions)
	r.GET("alertDefinitions", rs.Definitions)
}

func (rs *resource) TripAlerts(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	aa, err := rs.alerts().TripAlerts(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, aa)
}

func (rs *resource) TripExcursions(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	ex, err := rs.alerts().TripExcursions(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (rs *resource) Definitions(c *gin.Context) {
	defs, err := rs.alerts().Definitions(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, defs)
}
