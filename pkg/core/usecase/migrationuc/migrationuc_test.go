// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc_test

import (
	"context"
	"testing"

	"github.com/momeni/fleetmon/internal/test/sqlitedb"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/migration"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/usecase/migrationuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(t *testing.T, pool *postgres.Pool, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, pool.DB.Model(model).Count(&n).Error)
	return n
}

func TestInitProd(t *testing.T) {
	ctx := context.Background()
	pool := sqlitedb.New(ctx, t)
	uc := migrationuc.NewInitDB(pool, schemarp.New())
	require.NoError(t, uc.InitProd(ctx))
	require.NoError(t, uc.InitProd(ctx), "init must be repeatable")
	n := int64(len(migration.AlertDefinitions))
	assert.Equal(t, n, count(t, pool, &tables.AlertDefinition{}))
	assert.Zero(t, count(t, pool, &tables.Box{}))
}

func TestInitDev(t *testing.T) {
	ctx := context.Background()
	pool := sqlitedb.New(ctx, t)
	uc := migrationuc.NewInitDB(pool, schemarp.New())
	require.NoError(t, uc.InitDev(ctx))
	boxes := count(t, pool, &tables.Box{})
	sensors := count(t, pool, &tables.Sensor{})
	assert.NotZero(t, boxes)
	assert.NotZero(t, sensors)
	assert.NotZero(t, count(t, pool, &tables.Route{}))

	require.NoError(t, uc.InitDev(ctx), "init must be repeatable")
	assert.Equal(t, boxes, count(t, pool, &tables.Box{}))
	assert.Equal(t, sensors, count(t, pool, &tables.Sensor{}))
	n := int64(len(migration.AlertDefinitions))
	assert.Equal(t, n, count(t, pool, &tables.AlertDefinition{}))
}
