// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package httpgeo implements the route geometry provider on top of an
// OSRM compatible HTTP routing service. Outbound requests are throttled
// by a token bucket and bounded by a per-request timeout.
package httpgeo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/fleetmon/pkg/core/model"
	"golang.org/x/time/rate"
)

// maxResponseSize limits the accepted response body size.
const maxResponseSize = 8 << 20

// ErrNoRoute indicates that the routing service found no road between
// the requested points.
var ErrNoRoute = errors.New("no route was found")

// Client fetches road geometries from a routing service.
type Client struct {
	base    *url.URL
	hc      *http.Client
	limiter *rate.Limiter
}

// New creates a Client which sends at most rps requests per second
// (with the given burst) to the baseURL service. Each request, waiting
// for the limiter excluded, must complete within the timeout.
func New(
	baseURL string, rps float64, burst int, timeout time.Duration,
) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf(
			"rate (%v) and burst (%d) must be positive", rps, burst,
		)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout (%v) must be positive", timeout)
	}
	return &Client{
		base:    u,
		hc:      &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

// Geometry returns the GeoJSON geometry of the first route which the
// service suggests between from and to.
func (c *Client) Geometry(
	ctx context.Context, from, to model.Coordinate,
) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.routeURL(from, to), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting route: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	var rr routeResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf(
			"decoding response (status %d): %w", resp.StatusCode, err,
		)
	}
	switch {
	case rr.Code == "NoRoute":
		return nil, ErrNoRoute
	case resp.StatusCode != http.StatusOK || rr.Code != "Ok":
		return nil, fmt.Errorf(
			"routing service failed (status %d, code %q): %s",
			resp.StatusCode, rr.Code, rr.Message,
		)
	case len(rr.Routes) == 0 || len(rr.Routes[0].Geometry) == 0:
		return nil, ErrNoRoute
	}
	return rr.Routes[0].Geometry, nil
}

// routeURL builds the route/v1/driving URL. Coordinates are written in
// the lon,lat order which OSRM expects.
func (c *Client) routeURL(from, to model.Coordinate) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + fmt.Sprintf(
		"/route/v1/driving/%f,%f;%f,%f",
		from.Lon, from.Lat, to.Lon, to.Lat,
	)
	q := u.Query()
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	u.RawQuery = q.Encode()
	return u.String()
}
