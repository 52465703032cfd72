// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/model"
)

// Boxes is the boxes repository. Its Conn and Tx methods wrap a
// connection or transaction and return the corresponding queryer.
type Boxes interface {
	Conn(Conn) BoxesConnQueryer
	Tx(Tx) BoxesTxQueryer
}

// BoxesConnQueryer contains the boxes queries which may run with a
// plain connection.
type BoxesConnQueryer interface {
	BoxesQueryer
}

// BoxesTxQueryer contains the boxes queries which need a transaction
// because they lock rows or expect to be followed by other statements.
type BoxesTxQueryer interface {
	BoxesQueryer

	// Lock selects the id box FOR UPDATE, so concurrent transactions
	// which try to lock it wait until the current one is finished.
	Lock(ctx context.Context, id int64) (*model.Box, error)

	// SetStatus changes the box status from the from status to the
	// to status. If the box status was not from, no row is updated
	// and a cerr.Conflict error is returned.
	SetStatus(ctx context.Context, id int64, from, to model.AssetStatus) error
}

// BoxesQueryer contains the boxes queries which may run with either
// a connection or a transaction.
type BoxesQueryer interface {
	List(ctx context.Context) ([]model.Box, error)
	ListByStatus(ctx context.Context, s model.AssetStatus) ([]model.Box, error)

	// Get returns a cerr.NotFound error if the box does not exist.
	Get(ctx context.Context, id int64) (*model.Box, error)

	// Create inserts b and returns the stored box with its new id.
	Create(ctx context.Context, b *model.Box) (*model.Box, error)

	// Update overwrites the box fields unless the box is on a trip.
	// Trying to update an on-trip box returns model.ErrLockedOnTrip
	// wrapped in a cerr.InvalidTransition error.
	Update(ctx context.Context, b *model.Box) (*model.Box, error)
}
