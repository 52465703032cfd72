// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/momeni/fleetmon/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer is the type constraint of the generic query functions of
// the repository packages. Each query function may run on either a
// connection or a transaction, so it is written once and used by both
// of the connection and transaction queryers of its repository.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer

	// GORM returns the underlying *gorm.DB in a ctx bound session.
	GORM(ctx context.Context) *gorm.DB
}
