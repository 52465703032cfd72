// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routesrs realizes the routes resource. The road geometry of
// a route is not stored and is fetched through the configured
// geometry provider on each request.
package routesrs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/momeni/fleetmon/pkg/core/usecase/routeuc"
)

type resource struct {
	routes func() *routeuc.UseCase
}

// Register instantiates a resource adapting the routes use case with
// the relevant REST APIs including:
//  1. GET request to /api/fleetmon/v1/routes
//     in order to list all routes,
//  2. GET request to /api/fleetmon/v1/routes/:id
//     in order to fetch one route,
//  3. POST request to /api/fleetmon/v1/routes
//     in order to create a route with its environmental bounds,
//  4. GET request to /api/fleetmon/v1/routes/:id/geometry
//     in order to fetch the road geometry of a route as GeoJSON.
func Register(r *gin.RouterGroup, routes func() *routeuc.UseCase) {
	rs := &resource{routes: routes}
	r.GET("routes", rs.List)
	r.GET("routes/:id", rs.Get)
	r.POST("routes", rs.Create)
	r.GET("routes/:id/geometry", rs.Geometry)
}

func (rs *resource) List(c *gin.Context) {
	rr, err := rs.routes().List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rr)
}

func (rs *resource) Get(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	r, err := rs.routes().Get(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (rs *resource) Create(c *gin.Context) {
	r := rs.DserRoute(c)
	if r == nil {
		return
	}
	route, err := rs.routes().Create(c, r)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// Geometry writes the GeoJSON document as is. Core errors keep their
// status codes, a missing provider is reported as 501, and provider
// failures as 502.
func (rs *resource) Geometry(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	g, err := rs.routes().Geometry(c, uri.ID)
	var ce *cerr.Error
	switch {
	case err == nil:
		c.Data(http.StatusOK, "application/geo+json", g)
	case errors.As(err, &ce):
		serdser.SerErr(c, err)
	case errors.Is(err, routeuc.ErrNoGeometryProvider):
		c.JSON(http.StatusNotImplemented, gin.H{"detail": err.Error()})
	default:
		log.Warn(c, "geometry provider failed",
			log.ID("route_id", uri.ID), log.Err("err", err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
	}
}
