// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rediscache provides a redis backed read-through cache for
// the route geometry documents. Entries are encoded with msgpack and
// expire after a configurable TTL. Cache failures are logged and the
// wrapped provider is asked instead, so redis outages only cost
// latency.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/usecase/routeuc"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const keyPrefix = "fleetmon:geometry:"

// Observer is notified about the result of each cache lookup.
type Observer interface {
	CacheLookup(result string)
}

// Lookup results which are reported to the Observer.
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

type entry struct {
	Geometry  []byte    `msgpack:"g"`
	FetchedAt time.Time `msgpack:"t"`
}

// GeometryCache implements the routeuc.GeometryProvider interface by
// consulting redis before delegating to the next provider.
type GeometryCache struct {
	rdb      redis.Cmdable
	next     routeuc.GeometryProvider
	ttl      time.Duration
	observer Observer
	now      func() time.Time
}

// New wraps the next provider with a cache on rdb. Entries expire
// after ttl which must be positive. The obs observer may be nil.
func New(
	rdb redis.Cmdable, next routeuc.GeometryProvider,
	ttl time.Duration, obs Observer,
) (*GeometryCache, error) {
	if next == nil {
		return nil, errors.New("next geometry provider is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cache ttl (%v) must be positive", ttl)
	}
	return &GeometryCache{
		rdb: rdb, next: next, ttl: ttl, observer: obs, now: time.Now,
	}, nil
}

// Key returns the redis key which caches the geometry between from
// and to. Coordinates are rounded to six decimal digits (about 10cm).
func Key(from, to model.Coordinate) string {
	return fmt.Sprintf(
		"%s%.6f,%.6f;%.6f,%.6f",
		keyPrefix, from.Lat, from.Lon, to.Lat, to.Lon,
	)
}

// Geometry returns the cached document if it exists, otherwise asks
// the next provider and stores its result.
func (gc *GeometryCache) Geometry(
	ctx context.Context, from, to model.Coordinate,
) ([]byte, error) {
	key := Key(from, to)
	if g, ok := gc.lookup(ctx, key); ok {
		return g, nil
	}
	g, err := gc.next.Geometry(ctx, from, to)
	if err != nil {
		return nil, err
	}
	b, err := msgpack.Marshal(&entry{Geometry: g, FetchedAt: gc.now()})
	if err != nil {
		return nil, fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := gc.rdb.Set(ctx, key, b, gc.ttl).Err(); err != nil {
		log.Warn(
			ctx, "storing route geometry in cache failed",
			log.Err("err", err),
		)
	}
	return g, nil
}

func (gc *GeometryCache) lookup(
	ctx context.Context, key string,
) ([]byte, bool) {
	b, err := gc.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		gc.report(resultMiss)
		return nil, false
	case err != nil:
		gc.report(resultError)
		log.Warn(
			ctx, "reading route geometry from cache failed",
			log.Err("err", err),
		)
		return nil, false
	}
	var e entry
	if err := msgpack.Unmarshal(b, &e); err != nil {
		gc.report(resultError)
		log.Warn(
			ctx, "decoding cached route geometry failed",
			log.Err("err", err),
		)
		return nil, false
	}
	gc.report(resultHit)
	log.Debug(
		ctx, "route geometry cache hit",
		log.Time("fetched_at", e.FetchedAt),
	)
	return e.Geometry, true
}

func (gc *GeometryCache) report(result string) {
	if gc.observer != nil {
		gc.observer.CacheLookup(result)
	}
}
