// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Alerts is the alert definitions and alert events repository. Both
// tables are append-only from the point of view of this module.
type Alerts interface {
	Conn(Conn) AlertsConnQueryer
	Tx(Tx) AlertsTxQueryer
}

type AlertsConnQueryer interface {
	AlertsQueryer
}

type AlertsTxQueryer interface {
	AlertsQueryer
}

type AlertsQueryer interface {
	Definitions(ctx context.Context) ([]model.AlertDefinition, error)

	// ByTrip returns the alert events of a trip, newest first.
	ByTrip(ctx context.Context, tripID int64) ([]model.AlertEvent, error)
}
