// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres contains the database adapter. It wraps gorm
// connections and transactions, so they may be passed through the
// use cases layer as repo.Conn and repo.Tx instances and unwrapped
// again by the repository packages (named like boxesrp).
package postgres

import (
	"github.com/momeni/fleetmon/pkg/core/model"
)

// These constants represent the major, minor, and patch components of
// the current database schema semantic version.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the latest supported database schema semantic version.
var Version = model.SemVer{Major, Minor, Patch}
