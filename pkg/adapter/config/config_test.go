// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/momeni/fleetmon/pkg/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("GEOMETRY_URL", "")
}

func TestLoadSampleConfig(t *testing.T) {
	clearEnv(t)
	c, err := config.Load("../../../configs/fmweb.yaml")
	require.NoError(t, err)
	assert.Equal(t, "fleetmon", c.Database.Name)
	assert.Zero(t, c.Usecases.Trips.DepartureGrace.Std())
	assert.Equal(t, 5, *c.Usecases.Readings.RecentCount)
	assert.Equal(t, 24*time.Hour, c.Redis.TTL.Std())
	assert.True(t, c.VisibleSettings().Logger)
}

func TestLoadRejectsVersions(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	for name, body := range map[string]string{
		"config-major": "versions: {config: 2.0.0, database: 1.0.0}\n" +
			"database: {name: fleetmon}\n",
		"config-minor": "versions: {config: 1.9.0, database: 1.0.0}\n" +
			"database: {name: fleetmon}\n",
		"database": "versions: {config: 1.0.0, database: 2.0.0}\n" +
			"database: {name: fleetmon}\n",
	} {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		_, err := config.Load(path)
		assert.Error(t, err, name)
	}
	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
