// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gingonic "github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin"
	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	var seen string
	e := gin.New(gin.RequestID())
	e.GET("/ping", func(c *gingonic.Context) {
		seen, _ = log.RequestID(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(gin.RequestIDHeader, "req-1")
	w := serve(e, req)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(gin.RequestIDHeader))

	for name, id := range map[string]string{
		"missing":  "",
		"too long": strings.Repeat("x", 129),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(gin.RequestIDHeader, id)
			w := serve(e, req)
			got := w.Header().Get(gin.RequestIDHeader)
			assert.Len(t, got, 36, "a uuid must be generated")
			assert.Equal(t, got, seen)
		})
	}
}

func TestLoggerAndRecovery(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	e := gin.New(gin.RequestID(), gin.Logger(), gin.Recovery())
	e.GET("/panic", func(*gingonic.Context) {
		panic("boom")
	})
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(gin.RequestIDHeader, "req-2")
	w := serve(e, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())

	var records []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		r := map[string]any{}
		require.NoError(t, dec.Decode(&r))
		records = append(records, r)
	}
	require.Len(t, records, 2)
	assert.Equal(t, "panic is recovered", records[0]["msg"])
	assert.Equal(t, "http request", records[1]["msg"])
	assert.Equal(t, "ERROR", records[1]["level"])
	assert.Equal(t, "req-2", records[1]["request_id"])
	assert.Equal(t, "/panic", records[1]["path"])
	assert.EqualValues(t, 500, records[1]["status"])
}

type observation struct {
	method, path string
	status       int
}

type observer []observation

func (o *observer) ObserveRequest(
	method, path string, status int, _ time.Duration,
) {
	*o = append(*o, observation{method, path, status})
}

func TestMetrics(t *testing.T) {
	obs := &observer{}
	e := gin.New(gin.Metrics(obs))
	e.GET("/boxes/:id", func(c *gingonic.Context) {
		c.Status(http.StatusOK)
	})
	serve(e, httptest.NewRequest(http.MethodGet, "/boxes/7", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, observer{
		{http.MethodGet, "/boxes/:id", http.StatusOK},
		{http.MethodGet, "unmatched", http.StatusNotFound},
	}, *obs)
}
