// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migration creates the tables of the latest database schema
// version and fills them with the production or development suitable
// initial data. All functions are idempotent, so they may be called
// again on an already initialized database.
//
// SQL statements in this package are limited to the common subset of
// PostgreSQL and SQLite, so the embedded test databases are created
// exactly like the production ones.
package migration

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
)

// openAssignmentIndexes enforce that each box has at most one open
// assignment and each sensor is open on at most one box. They are the
// enforcement boundary of the assignment ledger, so a concurrent
// writer which passes the use case level checks still fails here.
var openAssignmentIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS sensor_box_open_box_uidx
ON sensor_box (box_id) WHERE ended_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS sensor_box_open_sensor_uidx
ON sensor_box (sensor_id) WHERE ended_at IS NULL`,
}

// CreateTables creates (or completes) all tables using the gorm
// models of the tables package and then creates the partial indexes
// which gorm cannot express in struct tags.
func CreateTables[Q postgres.Queryer](ctx context.Context, q Q) error {
	if err := q.GORM(ctx).AutoMigrate(tables.All()...); err != nil {
		return fmt.Errorf("auto-migrating tables: %w", err)
	}
	for _, stmt := range openAssignmentIndexes {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}
