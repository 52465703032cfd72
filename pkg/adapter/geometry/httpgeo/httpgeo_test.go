// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package httpgeo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momeni/fleetmon/pkg/adapter/geometry/httpgeo"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tehran = model.Coordinate{Lat: 35.69, Lon: 51.39}
	rasht  = model.Coordinate{Lat: 37.28, Lon: 49.58}
)

func TestGeometry(t *testing.T) {
	var path, query string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			path, query = r.URL.Path, r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"geometry":` +
				`{"type":"LineString","coordinates":[[51.39,35.69],[49.58,37.28]]}` +
				`,"distance":320000}]}`))
		},
	))
	defer srv.Close()

	c, err := httpgeo.New(srv.URL+"/osrm/", 10, 1, time.Second)
	require.NoError(t, err)
	g, err := c.Geometry(context.Background(), tehran, rasht)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"LineString","coordinates":[[51.39,35.69],[49.58,37.28]]}`,
		string(g),
	)
	assert.Equal(t,
		"/osrm/route/v1/driving/51.390000,35.690000;49.580000,37.280000",
		path,
	)
	assert.Equal(t, "geometries=geojson&overview=full", query)
}

func TestGeometryFailures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		noRoute bool
	}{
		{"no route", http.StatusBadRequest, `{"code":"NoRoute","message":"Impossible route"}`, true},
		{"empty routes", http.StatusOK, `{"code":"Ok","routes":[]}`, true},
		{"invalid input", http.StatusBadRequest, `{"code":"InvalidQuery","message":"bad"}`, false},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
					_, _ = w.Write([]byte(tc.body))
				},
			))
			defer srv.Close()
			c, err := httpgeo.New(srv.URL, 10, 1, time.Second)
			require.NoError(t, err)
			_, err = c.Geometry(context.Background(), tehran, rasht)
			require.Error(t, err)
			if tc.noRoute {
				assert.ErrorIs(t, err, httpgeo.ErrNoRoute)
			} else {
				assert.NotErrorIs(t, err, httpgeo.ErrNoRoute)
			}
		})
	}
}

func TestRateLimitHonorsContext(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"geometry":{}}]}`))
		},
	))
	defer srv.Close()
	c, err := httpgeo.New(srv.URL, 0.01, 1, time.Second)
	require.NoError(t, err)
	_, err = c.Geometry(context.Background(), tehran, rasht)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Geometry(ctx, tehran, rasht)
	assert.Error(t, err, "second request must wait far beyond the deadline")
	assert.EqualValues(t, 1, hits.Load())
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			<-release
		},
	))
	defer srv.Close()
	defer close(release)
	c, err := httpgeo.New(srv.URL, 10, 1, 50*time.Millisecond)
	require.NoError(t, err)
	_, err = c.Geometry(context.Background(), tehran, rasht)
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	_, err := httpgeo.New("ftp://example.com", 1, 1, time.Second)
	assert.Error(t, err)
	_, err = httpgeo.New("http://example.com", 0, 1, time.Second)
	assert.Error(t, err)
	_, err = httpgeo.New("http://example.com", 1, 0, time.Second)
	assert.Error(t, err)
	_, err = httpgeo.New("http://example.com", 1, 1, 0)
	assert.Error(t, err)
}
