// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package routesrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/model"
)

type coordinate struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lon float64 `json:"lon" binding:"min=-180,max=180"`
}

type routeReq struct {
	Name        string              `json:"name" binding:"required,max=128"`
	Admin       *serdser.Ref[int64] `json:"admin" binding:"required"`
	Origin      *coordinate         `json:"origin" binding:"required"`
	Destination *coordinate         `json:"destination" binding:"required"`
	MinTemp     float64             `json:"minTemp"`
	MaxTemp     float64             `json:"maxTemp"`
	MinHum      float64             `json:"minHum"`
	MaxHum      float64             `json:"maxHum"`
}

func (c *coordinate) model() model.Coordinate {
	return model.Coordinate{Lat: c.Lat, Lon: c.Lon}
}

func (rs *resource) DserRoute(c *gin.Context) *model.Route {
	req := &routeReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Route{
		Name:        req.Name,
		AdminID:     req.Admin.ID,
		Origin:      req.Origin.model(),
		Destination: req.Destination.model(),
		EnvBounds: model.EnvBounds{
			MinTemp: req.MinTemp,
			MaxTemp: req.MaxTemp,
			MinHum:  req.MinHum,
			MaxHum:  req.MaxHum,
		},
	}
}
