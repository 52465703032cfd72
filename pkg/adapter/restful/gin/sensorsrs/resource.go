// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sensorsrs realizes the sensors resource. Sensors are
// identified by their admin chosen string ids.
package sensorsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/usecase/inventoryuc"
)

type resource struct {
	inventory func() *inventoryuc.UseCase
}

// Register adds the GET sensors, GET sensors/active, POST sensors,
// and PUT sensors/:id REST APIs to r.
func Register(r *gin.RouterGroup, inventory func() *inventoryuc.UseCase) {
	rs := &resource{inventory: inventory}
	r.GET("sensors", rs.List)
	r.GET("sensors/active", rs.ListActive)
	r.POST("sensors", rs.Create)
	r.PUT("sensors/:id", rs.Update)
}

func (rs *resource) List(c *gin.Context) {
	ss, err := rs.inventory().Sensors(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ss)
}

func (rs *resource) ListActive(c *gin.Context) {
	ss, err := rs.inventory().ActiveSensors(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ss)
}

func (rs *resource) Create(c *gin.Context) {
	req := rs.DserCreateReq(c)
	if req == nil {
		return
	}
	s, err := rs.inventory().CreateSensor(c, req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (rs *resource) Update(c *gin.Context) {
	req := rs.DserUpdateReq(c)
	if req == nil {
		return
	}
	s, err := rs.inventory().UpdateSensor(c, req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
