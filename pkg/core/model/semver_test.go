// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemVerUnmarshal(t *testing.T) {
	for text, want := range map[string]model.SemVer{
		"1":      {1, 0, 0},
		"1.2":    {1, 2, 0},
		"10.2.3": {10, 2, 3},
	} {
		var sv model.SemVer
		require.NoError(t, sv.UnmarshalText([]byte(text)), text)
		assert.Equal(t, want, sv)
	}
	for _, text := range []string{"", "1.2.3.4", "1.x.0", "-1.0.0"} {
		sv := model.SemVer{7, 7, 7}
		assert.Error(t, sv.UnmarshalText([]byte(text)), text)
		assert.Equal(t, model.SemVer{7, 7, 7}, sv, "must stay unchanged")
	}
}

func TestSemVerSupports(t *testing.T) {
	impl := model.SemVer{1, 2, 3}
	for v, ok := range map[model.SemVer]bool{
		{1, 2, 3}: true,
		{1, 2, 0}: true,
		{1, 0, 9}: true,
		{1, 2, 4}: false,
		{1, 3, 0}: false,
		{0, 2, 3}: false,
		{2, 0, 0}: false,
	} {
		assert.Equal(t, ok, impl.Supports(v), v.String())
	}
}
