// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package readinguc contains the readings UseCase which summarizes the
// sensor readings of a trip. Like the alerts, readings are only shown
// for trips which have left the scheduled status.
package readinguc

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/core/cerr"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

// DefaultRecentCount is the recency list length when WithRecentCount
// is not used.
const DefaultRecentCount = 5

// UseCase represents the readings use case. The recentCount setting
// limits the number of readings in the recency list of a trip.
type UseCase struct {
	pool     repo.Pool
	trips    repo.Trips
	readings repo.Readings

	recentCount int
}

func New(
	p repo.Pool, trips repo.Trips, readings repo.Readings, opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, trips: trips, readings: readings}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.recentCount == 0 {
		uc.recentCount = DefaultRecentCount
	}
	return uc, nil
}

// RecentCount returns the effective length of the recency lists.
func (r *UseCase) RecentCount() int {
	return r.recentCount
}

// TripReadings returns the statistics, the recent readings, and the
// total number of readings of the tripID trip.
func (r *UseCase) TripReadings(
	ctx context.Context, tripID int64,
) (tr *model.TripReadings, err error) {
	var readings []model.Reading
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		trip, err := r.trips.Conn(c).Get(ctx, tripID)
		if err != nil {
			return err
		}
		if err = trip.CheckStarted(); err != nil {
			return cerr.InvalidTransition(err)
		}
		readings, err = r.readings.Conn(c).ByTrip(ctx, tripID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &model.TripReadings{
		TripID: tripID,
		Stats:  Summarize(readings),
		Recent: Recent(readings, r.recentCount),
		Total:  len(readings),
	}, nil
}
