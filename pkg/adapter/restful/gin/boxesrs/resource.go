// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package boxesrs realizes the boxes resource, allowing the boxes
// listing, creation, and update REST APIs to be accepted and delegated
// to the inventory use case.
package boxesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/usecase/inventoryuc"
)

type resource struct {
	inventory func() *inventoryuc.UseCase
}

// Register instantiates a resource adapting the inventory use case
// with the relevant REST APIs including:
//  1. GET request to /api/fleetmon/v1/boxes
//     in order to list all boxes,
//  2. GET request to /api/fleetmon/v1/boxes/available
//     in order to list the boxes which may be reserved by trips,
//  3. POST request to /api/fleetmon/v1/boxes
//     in order to create a box,
//  4. PUT request to /api/fleetmon/v1/boxes/:id
//     in order to update a box which is not on a trip.
//
// The inventory function is called for each request, so reloaded use
// cases take effect immediately.
func Register(r *gin.RouterGroup, inventory func() *inventoryuc.UseCase) {
	rs := &resource{inventory: inventory}
	r.GET("boxes", rs.List)
	r.GET("boxes/available", rs.ListAvailable)
	r.POST("boxes", rs.Create)
	r.PUT("boxes/:id", rs.Update)
}

func (rs *resource) List(c *gin.Context) {
	bb, err := rs.inventory().Boxes(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bb)
}

func (rs *resource) ListAvailable(c *gin.Context) {
	bb, err := rs.inventory().AvailableBoxes(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, bb)
}

func (rs *resource) Create(c *gin.Context) {
	b := rs.DserBox(c, 0)
	if b == nil {
		return
	}
	box, err := rs.inventory().CreateBox(c, b)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, box)
}

func (rs *resource) Update(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	b := rs.DserBox(c, uri.ID)
	if b == nil {
		return
	}
	box, err := rs.inventory().UpdateBox(c, b)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}
