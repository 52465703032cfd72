// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package readingsrs realizes the sensor readings resource.
package readingsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/usecase/readinguc"
)

type resource struct {
	readings func() *readinguc.UseCase
}

// Register adds the GET sensorReadings/trip/:id REST API to r which
// reports the aggregated statistics and the recent readings of a trip.
func Register(r *gin.RouterGroup, readings func() *readinguc.UseCase) {
	rs := &resource{readings: readings}
	r.GET("sensorReadings/trip/:id", rs.TripReadings)
}

func (rs *resource) TripReadings(c *gin.Context) {
	uri := &serdser.IDURI{}
	if !serdser.BindURI(c, uri) {
		return
	}
	tr, err := rs.readings().TripReadings(c, uri.ID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, tr)
}
