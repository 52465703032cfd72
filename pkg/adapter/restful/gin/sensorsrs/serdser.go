// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sensorsrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/model"
)

type createReq struct {
	ID     string             `json:"id" binding:"required,max=64"`
	Type   model.SensorType   `json:"type"`
	Status model.SensorStatus `json:"status"`
}

type sensorURI struct {
	ID string `uri:"id" binding:"required,max=64"`
}

type updateReq struct {
	Type   model.SensorType   `json:"type"`
	Status model.SensorStatus `json:"status"`
}

func (rs *resource) DserCreateReq(c *gin.Context) *model.Sensor {
	req := &createReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Sensor{ID: req.ID, Type: req.Type, Status: req.Status}
}

func (rs *resource) DserUpdateReq(c *gin.Context) *model.Sensor {
	uri := &sensorURI{}
	if !serdser.BindURI(c, uri) {
		return nil
	}
	req := &updateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Sensor{ID: uri.ID, Type: req.Type, Status: req.Status}
}
