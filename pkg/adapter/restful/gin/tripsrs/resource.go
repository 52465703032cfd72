// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tripsrs realizes the trips resource, allowing trips to be
// scheduled, edited, and moved along their lifecycle. The GPS tracking
// of a trip is exposed by this resource too.
package tripsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/usecase/tripsuc"
)

type resource struct {
	trips func() *tripsuc.UseCase
}

// Register instantiates a resource adapting the trips use case with
// the relevant REST APIs including:
//  1. GET request to /api/fleetmon/v1/trips
//     in order to list all trips,
//  2. GET request to /api/fleetmon/v1/trips/:id
//     in order to fetch one trip,
//  3. POST request to /api/fleetmon/v1/trips
//     in order to schedule a trip, reserving its box and truck,
//  4. PUT request to /api/fleetmon/v1/trips/:id
//     in order to reschedule a trip and/or change its status,
//  5. GET request to /api/fleetmon/v1/tracking/trip/:id
//     in order to fetch the GPS fixes of a trip.
func Register(r *gin.RouterGroup, trips func() *tripsuc.UseCase) {
	rs := &resource{trips: trips}
	r.GET("trips", rs.List)
	r.GET("trips/:id", rs.Get)
	r.POST("trips", rs.Create)
	r.PUT("trips/:id", rs.Update)
	r.GET("tracking/trip/:id", rs.Tracking)
}

func (rs *resource) List(c *gin.Context) {
	tt, err := rs.trips().List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, tt)
}

func (rs *resource) Get(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	t, err := rs.trips().Get(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (rs *resource) Create(c *gin.Context) {
	d := rs.DserDraft(c)
	if d == nil {
		return
	}
	t, err := rs.trips().Create(c, d)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (rs *resource) Update(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	p := rs.DserPatch(c)
	if p == nil {
		return
	}
	t, err := rs.trips().Update(c, uri.ID, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (rs *resource) Tracking(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	fixes, err := rs.trips().Tracking(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, fixes)
}
