// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tripsuc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the trips use case.
type Option func(uc *UseCase) error

// WithDepartureGrace option tolerates departures which are at most
// grace before the current time, so a trip which is submitted right
// at its departure time is not rejected due to the request latency.
// This option may be passed to the New() function.
func WithDepartureGrace(grace time.Duration) Option {
	return func(uc *UseCase) error {
		if grace < 0 {
			return fmt.Errorf("grace (%v) is negative", grace)
		}
		uc.departureGrace = grace
		return nil
	}
}

// WithClock option replaces the time.Now function which is used for
// validating departures and recording the actual departure and arrival
// times.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		uc.now = now
		return nil
	}
}
