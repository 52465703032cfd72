// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package boxesrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/fleetmon/pkg/core/model"
)

// boxReq is the body of the box creation and update requests. The
// status may be omitted for a new box, so it becomes available.
type boxReq struct {
	Length    float64             `json:"length" binding:"required,gt=0"`
	Width     float64             `json:"width" binding:"required,gt=0"`
	Height    float64             `json:"height" binding:"required,gt=0"`
	MaxWeight float64             `json:"maxWeight" binding:"required,gt=0"`
	Status    model.AssetStatus   `json:"status"`
	Admin     *serdser.Ref[int64] `json:"admin" binding:"required"`
}

func (rs *resource) DserBox(c *gin.Context, id int64) *model.Box {
	req := &boxReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Box{
		ID:        id,
		Length:    req.Length,
		Width:     req.Width,
		Height:    req.Height,
		MaxWeight: req.MaxWeight,
		Status:    req.Status,
		AdminID:   req.Admin.ID,
	}
}
