// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	ctx := log.WithRequestID(context.Background(), "req-42")
	log.Info(ctx, "box released", log.ID("box", 7))

	out := buf.String()
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "box=7")
	assert.Contains(t, out, `msg="box released"`)
}

func TestDebugIsFilteredByLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	log.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestErrAttr(t *testing.T) {
	assert.Equal(t, "no-error", log.Err("err", nil).Value.String())
	assert.Equal(t, "boom", log.Err("err", errors.New("boom")).Value.String())
}
