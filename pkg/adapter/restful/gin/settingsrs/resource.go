// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settingsrs realizes the settings resource, allowing the
// effective settings of the use cases to be fetched. Settings are
// changed by editing the configuration file and reloading the fmweb
// process, so there is no mutation API.
package settingsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/fleetmon/pkg/core/model"
)

// SettingsSource provides the current visible settings.
type SettingsSource interface {
	Settings() model.VisibleSettings
}

type resource struct {
	app SettingsSource
}

// Register adds the GET request to /api/fleetmon/v1/settings to r.
func Register(r *gin.RouterGroup, app SettingsSource) {
	rs := &resource{app: app}
	r.GET("settings", rs.FetchSettings)
}

func (rs *resource) FetchSettings(c *gin.Context) {
	vs := rs.app.Settings()
	c.JSON(http.StatusOK, vs)
}
