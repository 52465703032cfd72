// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ledgerrs

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/model"
)

// rawAssignReq is the assignment request body. The sensor is not
// required here, so its absence is reported by the ledger itself.
type rawAssignReq struct {
	Box    *serdser.Ref[int64]  `json:"box" binding:"required"`
	Sensor *serdser.Ref[string] `json:"sensor"`
	Start  *time.Time           `json:"start"`
}

type assignReq struct {
	BoxID    int64
	SensorID string
	Start    time.Time // zero means now
}

type boxURI struct {
	BoxID int64 `uri:"boxId" binding:"required,min=1"`
}

type sensorURI struct {
	SensorID string `uri:"sensorId" binding:"required,max=64"`
}

// activeBoxRes reports where a sensor is attached right now. Both of
// the BoxID and Assignment are nil for a detached sensor.
type activeBoxRes struct {
	SensorID   string            `json:"sensorId"`
	BoxID      *int64            `json:"boxId"`
	Assignment *model.Assignment `json:"assignment"`
}

// rawReleaseReq is the optional body of a release request.
type rawReleaseReq struct {
	End *time.Time `json:"end"`
}

type releaseReq struct {
	BoxID int64
	At    time.Time // zero means now
}

func (rs *resource) DserAssignReq(c *gin.Context) *assignReq {
	req := &rawAssignReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := &assignReq{BoxID: req.Box.ID}
	if req.Sensor != nil {
		val.SensorID = req.Sensor.ID
	}
	if req.Start != nil {
		val.Start = *req.Start
	}
	return val
}

func (rs *resource) DserReleaseReq(c *gin.Context) *releaseReq {
	uri := &boxURI{}
	if !serdser.BindURI(c, uri) {
		return nil
	}
	val := &releaseReq{BoxID: uri.BoxID}
	if c.Request.ContentLength == 0 {
		return val
	}
	req := &rawReleaseReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	if req.End != nil {
		val.At = *req.End
	}
	return val
}
