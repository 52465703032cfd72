// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
	"github.com/momeni/fleetmon/pkg/core/usecase/appuc"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
	"github.com/momeni/fleetmon/pkg/core/usecase/readinguc"
	"github.com/momeni/fleetmon/pkg/core/usecase/tripsuc"
)

var _ appuc.Builder = (*Config)(nil)

// VisibleSettings creates and fills a VisibleSettings instance with
// the settings which can be queried by end-users. The use case
// settings are filled by the appuc package after building the use
// cases, because nil settings take their use case defaults.
func (c *Config) VisibleSettings() *model.VisibleSettings {
	// The panic on nil-dereference of c.Gin.Logger is fine because
	// after a call to the ValidateAndNormalize method, Logger must be
	// non-nil (in absence of programming errors).
	return &model.VisibleSettings{Logger: *c.Gin.Logger}
}

// NewLedgerUseCase instantiates a new assignment ledger use case.
// The d.Faults observer (if any) is informed about the integrity
// faults of the ledger.
func (c *Config) NewLedgerUseCase(
	p repo.Pool, d appuc.Deps,
) (*ledgeruc.UseCase, error) {
	opts := make([]ledgeruc.Option, 0, 1)
	if d.Faults != nil {
		opts = append(opts, ledgeruc.WithFaultObserver(d.Faults))
	}
	return ledgeruc.New(p, d.Boxes, d.Sensors, d.Ledger, opts...)
}

// NewTripsUseCase instantiates a new trips use case based on the
// settings in the c struct.
func (c *Config) NewTripsUseCase(
	p repo.Pool, d appuc.Deps,
) (*tripsuc.UseCase, error) {
	opts := make([]tripsuc.Option, 0, 1)
	if g := c.Usecases.Trips.DepartureGrace; g != nil {
		opts = append(opts, tripsuc.WithDepartureGrace(g.Std()))
	}
	return tripsuc.New(p, d.Trips, d.Boxes, d.Fleet, d.Routes, opts...)
}

func (c *Config) NewReadingsUseCase(
	p repo.Pool, d appuc.Deps,
) (*readinguc.UseCase, error) {
	opts := make([]readinguc.Option, 0, 1)
	if n := c.Usecases.Readings.RecentCount; n != nil {
		opts = append(opts, readinguc.WithRecentCount(*n))
	}
	return readinguc.New(p, d.Trips, d.Readings, opts...)
}
