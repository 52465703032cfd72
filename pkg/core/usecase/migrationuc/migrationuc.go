// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationuc provides the database initialization use case.
// InitDBUseCase creates the tables and indexes of the current schema
// and fills them with either the production reference data (the alert
// definitions catalog) or a development sample data set. Both steps
// are idempotent and run in one transaction, so an interrupted
// initialization may be repeated.
package migrationuc
