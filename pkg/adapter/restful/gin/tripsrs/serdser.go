// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tripsrs

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/model"
)

// draftReq is the trip creation body. Related entities may be given
// as bare ids or as {"id": ...} objects.
type draftReq struct {
	Departure         time.Time           `json:"departure" binding:"required"`
	Arrival           time.Time           `json:"arrival" binding:"required"`
	EstimatedDistance float64             `json:"estimatedDistance" binding:"min=0"`
	Driver            *serdser.Ref[int64] `json:"driver" binding:"required"`
	Admin             *serdser.Ref[int64] `json:"admin" binding:"required"`
	Box               *serdser.Ref[int64] `json:"box" binding:"required"`
	Route             *serdser.Ref[int64] `json:"route" binding:"required"`
	Truck             *serdser.Ref[int64] `json:"truck" binding:"required"`
	CargoType         *serdser.Ref[int64] `json:"cargoType" binding:"required"`
}

// patchReq is the trip update body. Omitted fields are kept.
type patchReq struct {
	Departure *time.Time        `json:"departure"`
	Arrival   *time.Time        `json:"arrival"`
	Status    *model.TripStatus `json:"status"`
}

func (rs *resource) DserDraft(c *gin.Context) *model.TripDraft {
	req := &draftReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.TripDraft{
		Schedule: model.Schedule{
			Departure: req.Departure,
			Arrival:   req.Arrival,
		},
		EstimatedDistance: req.EstimatedDistance,
		DriverID:          req.Driver.ID,
		AdminID:           req.Admin.ID,
		BoxID:             req.Box.ID,
		RouteID:           req.Route.ID,
		TruckID:           req.Truck.ID,
		CargoTypeID:       req.CargoType.ID,
	}
}

func (rs *resource) DserPatch(c *gin.Context) *model.TripPatch {
	req := &patchReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.TripPatch{
		Departure: req.Departure,
		Arrival:   req.Arrival,
		Status:    req.Status,
	}
}
