// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ledgeruc_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/momeni/fleetmon/internal/test/dbcontainer"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/boxesrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/ledgerrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/sensorsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tables"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegrationConcurrentAssign runs racing assignments on a real
// PostgreSQL server, where the box row locks and the partial unique
// indexes are effective. Some racers may lose, but the box must end
// up with exactly one open assignment.
func TestIntegrationConcurrentAssign(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	const racers = 8
	admin := &tables.Admin{Name: "admin"}
	insert(ctx, t, pool, admin)
	box := &tables.Box{
		Length: 2, Width: 1, Height: 1, MaxWeight: 500,
		Status: "available", AdminID: admin.ID,
	}
	insert(ctx, t, pool, box)
	for i := 0; i < racers; i++ {
		insert(ctx, t, pool, &tables.Sensor{
			ID: fmt.Sprintf("S%d", i), Type: "temperature", Status: "active",
		})
	}
	uc, err := ledgeruc.New(
		pool, boxesrp.New(), sensorsrp.New(), ledgerrp.New(),
	)
	require.NoError(t, err)

	t0 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := t0.Add(time.Duration(i) * time.Minute)
			_, errs[i] = uc.Assign(ctx, box.ID, fmt.Sprintf("S%d", i), start)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t,
			cerr.IsBadRequest(err) || cerr.IsConflict(err),
			"racer %d: unexpected error: %v", i, err,
		)
	}
	assert.NotZero(t, succeeded)

	v, err := uc.History(ctx, box.ID)
	require.NoError(t, err)
	open := 0
	for _, a := range v.History {
		if a.Open() {
			open++
		}
	}
	assert.Equal(t, 1, open, "history: %+v", v.History)
	assert.NotNil(t, v.ActiveSensor)
	assert.Len(t, v.History, succeeded)
}

func insert(ctx context.Context, t *testing.T, pool *postgres.Pool, row any) {
	t.Helper()
	require.NoError(t, pool.DB.WithContext(ctx).Create(row).Error)
}
