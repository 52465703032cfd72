// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ledgerrs realizes the sensor assignments resource, allowing
// sensors to be assigned to boxes and released from them through the
// assignment ledger use case.
package ledgerrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
)

type resource struct {
	ledger func() *ledgeruc.UseCase
}

// Register instantiates a resource adapting the ledger use case with
// the relevant REST APIs including:
//  1. GET request to /api/fleetmon/v1/sensorAssignments
//     in order to list all assignments (open and closed),
//  2. POST request to /api/fleetmon/v1/sensorAssignments
//     in order to assign a sensor to a box, closing its previous
//     assignment,
//  3. PUT request to /api/fleetmon/v1/sensorAssignments/deassign/:boxId
//     in order to release the active sensor of a box,
//  4. GET request to /api/fleetmon/v1/sensorAssignments/available-sensors
//     in order to list the sensors which may be assigned,
//  5. GET request to /api/fleetmon/v1/sensorAssignments/box/:boxId
//     in order to fetch the active sensor and history of a box,
//  6. GET request to /api/fleetmon/v1/sensorAssignments/sensor/:sensorId
//     in order to find the box which a sensor is attached to.
func Register(r *gin.RouterGroup, ledger func() *ledgeruc.UseCase) {
	rs := &resource{ledger: ledger}
	g := r.Group("sensorAssignments")
	g.GET("", rs.List)
	g.POST("", rs.Assign)
	g.PUT("deassign/:boxId", rs.Release)
	g.GET("available-sensors", rs.AvailableSensors)
	g.GET("box/:boxId", rs.History)
	g.GET("sensor/:sensorId", rs.ActiveBox)
}

func (rs *resource) List(c *gin.Context) {
	as, err := rs.ledger().List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, as)
}

func (rs *resource) Assign(c *gin.Context) {
	req := rs.DserAssignReq(c)
	if req == nil {
		return
	}
	a, err := rs.ledger().Assign(c, req.BoxID, req.SensorID, req.Start)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (rs *resource) Release(c *gin.Context) {
	req := rs.DserReleaseReq(c)
	if req == nil {
		return
	}
	l := rs.ledger()
	if err := l.Release(c, req.BoxID, req.At); err != nil {
		serdser.SerErr(c, err)
		return
	}
	v, err := l.History(c, req.BoxID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) AvailableSensors(c *gin.Context) {
	ss, err := rs.ledger().AvailableSensors(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ss)
}

func (rs *resource) History(c *gin.Context) {
	uri := &boxURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	v, err := rs.ledger().History(c, uri.BoxID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (rs *resource) ActiveBox(c *gin.Context) {
	uri := &sensorURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	a, err := rs.ledger().ActiveBox(c, uri.SensorID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	res := &activeBoxRes{SensorID: uri.SensorID, Assignment: a}
	if a != nil {
		res.BoxID = &a.BoxID
	}
	c.JSON(http.StatusOK, res)
}
