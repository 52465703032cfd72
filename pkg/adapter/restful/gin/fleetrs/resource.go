// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fleetrs realizes the read-only trucks, drivers, and cargo
// types listings.
package fleetrs

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/usecase/inventoryuc"
)

type resource struct {
	inventory func() *inventoryuc.UseCase
}

func Register(r *gin.RouterGroup, inventory func() *inventoryuc.UseCase) {
	rs := &resource{inventory: inventory}
	r.GET("trucks", list(rs, (*inventoryuc.UseCase).Trucks))
	r.GET("trucks/available", list(rs, (*inventoryuc.UseCase).AvailableTrucks))
	r.GET("drivers", list(rs, (*inventoryuc.UseCase).Drivers))
	r.GET("cargoTypes", list(rs, (*inventoryuc.UseCase).CargoTypes))
}

func list[T any](
	rs *resource,
	f func(*inventoryuc.UseCase, context.Context) ([]T, error),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := f(rs.inventory(), c)
		if err != nil {
			serdser.SerErr(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
