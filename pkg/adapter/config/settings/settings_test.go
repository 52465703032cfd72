// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/momeni/fleetmon/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ptr[T any](t T) *T {
	return &t
}

func TestVerifyRange(t *testing.T) {
	v := ptr(3)
	assert.Nil(t, settings.VerifyRange(&v, ptr(1), ptr(5)))
	assert.Equal(t, 3, *v)

	v = ptr(0)
	err := settings.VerifyRange(&v, ptr(1), nil)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, 0, *err.Value)
	assert.Equal(t, 1, *v, "value must be clamped")

	v = ptr(9)
	err = settings.VerifyRange(&v, nil, ptr(5))
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, 5, *v)

	v = nil
	assert.Nil(t, settings.VerifyRange(&v, ptr(1), ptr(5)))
	assert.Nil(t, v)
	err = settings.VerifyRange(&v, ptr(5), ptr(1))
	require.NotNil(t, err)
	assert.True(t, err.InvalidRange)
}

func TestNilHelpers(t *testing.T) {
	var b *bool
	settings.Nil2Zero(&b)
	require.NotNil(t, b)
	assert.False(t, *b)

	var n *int
	settings.OverwriteNil(&n, ptr(7))
	assert.Equal(t, 7, *n)
	settings.OverwriteNil(&n, ptr(8))
	assert.Equal(t, 7, *n, "non-nil value must be kept")
}

func TestDurationYAML(t *testing.T) {
	var c struct {
		Grace *settings.Duration `yaml:"grace"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("grace: 1h30m\n"), &c))
	require.NotNil(t, c.Grace)
	assert.Equal(t, 90*time.Minute, c.Grace.Std())

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "grace: 1h30m\n", string(out))

	d := settings.Duration(10 * time.Minute)
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "10m", string(b))

	assert.Error(t, yaml.Unmarshal([]byte("grace: soon\n"), &c))
}
