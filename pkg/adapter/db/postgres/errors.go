// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/fleetmon/pkg/core/cerr"
	"gorm.io/gorm"
)

// PostgreSQL error codes which indicate that a concurrent transaction
// won the race. See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// Translate converts the store errors which indicate a conflicting
// concurrent writer into cerr.Conflict errors. Other errors (and nil)
// are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return cerr.Conflict(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, serializationFailure, deadlockDetected:
			return cerr.Conflict(err)
		}
	}
	return err
}

// NotFound converts gorm.ErrRecordNotFound into a cerr.NotFound error
// which names the missing entity and its id. Other errors are wrapped
// as a query failure.
func NotFound(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cerr.NotFound(fmt.Errorf("%s %v was not found", entity, id))
	}
	return fmt.Errorf("query: %w", Translate(err))
}
