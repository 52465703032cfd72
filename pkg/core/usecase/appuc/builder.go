// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import (
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/repo"
	"github.com/momeni/fleetmon/pkg/core/usecase/ledgeruc"
	"github.com/momeni/fleetmon/pkg/core/usecase/readinguc"
	"github.com/momeni/fleetmon/pkg/core/usecase/tripsuc"
)

// Builder interface represents the expectations from the application
// use case builders. All use cases which take settings from the
// configuration have one NewX method here which takes the database
// connection pool and the dependencies. The last version of the
// configuration struct implements this interface and creates use case
// objects based on its contained settings. Use cases without settings
// are created by the application use case directly.
type Builder interface {
	// VisibleSettings returns a fresh copy of the settings which may be
	// reported to the end-users. The use case settings fields are
	// replaced by the effective values of the built use cases.
	VisibleSettings() *model.VisibleSettings

	NewLedgerUseCase(p repo.Pool, d Deps) (*ledgeruc.UseCase, error)
	NewTripsUseCase(p repo.Pool, d Deps) (*tripsuc.UseCase, error)
	NewReadingsUseCase(p repo.Pool, d Deps) (*readinguc.UseCase, error)
}
