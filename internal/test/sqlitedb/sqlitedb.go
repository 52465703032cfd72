// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlitedb is an internal helper for the test packages.
// It creates an in-memory SQLite database with the production schema
// and wraps it by a *postgres.Pool, so repositories and use cases can
// be tested without a DBMS server. The partial unique indexes of the
// assignment ledger and the gorm error translation behave the same as
// with PostgreSQL, while row locks are no-ops (SQLite serializes all
// writers anyway).
package sqlitedb

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// New creates a fresh database and its connections pool. The pool is
// closed when t finishes. Only one connection is opened, because each
// connection of an in-memory SQLite database sees its own database.
func New(ctx context.Context, t *testing.T) *postgres.Pool {
	t.Helper()
	pool, err := postgres.Open(ctx, sqlite.Open(":memory:"))
	require.NoError(t, err, "cannot open sqlite database")
	db, err := pool.DB.DB()
	require.NoError(t, err, "cannot access sql.DB")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		assert.NoError(t, pool.Close(), "failed to close sqlite database")
	})
	err = migration.CreateTables(ctx, &postgres.Conn{DB: pool.DB})
	require.NoError(t, err, "cannot create tables")
	return pool
}

// Insert stores the given table rows (e.g., &tables.Box{...}) one by
// one, so their generated ids are filled in place.
func Insert(ctx context.Context, t *testing.T, pool *postgres.Pool, rows ...any) {
	t.Helper()
	for _, row := range rows {
		err := pool.DB.WithContext(ctx).Create(row).Error
		require.NoError(t, err, "cannot insert %T", row)
	}
}
