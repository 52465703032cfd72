// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Schema is the database schema management repository. It creates
// the tables and indexes of the latest schema version and fills them
// with initial data.
type Schema interface {
	Tx(Tx) SchemaTxQueryer
}

// SchemaTxQueryer contains the schema initialization queries. All of
// them are idempotent, so an interrupted initialization may be
// repeated safely.
type SchemaTxQueryer interface {
	// CreateTables creates the missing tables and indexes.
	CreateTables(ctx context.Context) error

	// InsertReferenceData inserts the static alert definitions.
	InsertReferenceData(ctx context.Context) error

	// InsertDevelopmentData inserts sample admins, boxes, sensors,
	// trucks, drivers, cargo types, and routes.
	InsertDevelopmentData(ctx context.Context) error
}
