// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ledgeruc

import (
	"errors"
	"time"
)

// Option is a functional option for the ledger use case.
type Option func(uc *UseCase) error

// WithFaultObserver option registers o in order to be notified about
// the data-integrity faults of the ledger, e.g., for counting them in
// a metrics registry.
func WithFaultObserver(o FaultObserver) Option {
	return func(uc *UseCase) error {
		if o == nil {
			return errors.New("fault observer is nil")
		}
		if uc.observer != nil {
			return errors.New("fault observer is already configured")
		}
		uc.observer = o
		return nil
	}
}

// WithClock option replaces the time.Now function which is used when
// an assignment start or release time is not given explicitly.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		uc.now = now
		return nil
	}
}
