// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/momeni/fleetmon/pkg/core/repo"
)

// InitDBUseCase represents the database initialization use case. It may
// be used to initialize database with development or production
// suitable data as asked by the InitDev and InitProd methods.
type InitDBUseCase struct {
	pool       repo.Pool
	schemaRepo repo.Schema
}

// NewInitDB creates an InitDBUseCase instance which initializes the
// database of the p connections pool using the s schema repository.
func NewInitDB(p repo.Pool, s repo.Schema) *InitDBUseCase {
	return &InitDBUseCase{pool: p, schemaRepo: s}
}

// InitProd creates the missing tables and inserts the missing alert
// definitions.
func (iduc *InitDBUseCase) InitProd(ctx context.Context) error {
	return iduc.initDB(ctx, "prod", repo.SchemaTxQueryer.InsertReferenceData)
}

// InitDev creates the missing tables and inserts the reference data in
// addition to sample admins, boxes, sensors, trucks, drivers, cargo
// types, and routes. Tables which have rows are left untouched.
func (iduc *InitDBUseCase) InitDev(ctx context.Context) error {
	return iduc.initDB(ctx, "dev", repo.SchemaTxQueryer.InsertDevelopmentData)
}

func (iduc *InitDBUseCase) initDB(
	ctx context.Context,
	env string,
	fill func(repo.SchemaTxQueryer, context.Context) error,
) error {
	err := repo.WithTx(ctx, iduc.pool, func(ctx context.Context, tx repo.Tx) error {
		q := iduc.schemaRepo.Tx(tx)
		if err := q.CreateTables(ctx); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
		if err := fill(q, ctx); err != nil {
			return fmt.Errorf("inserting %s data: %w", env, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "database is initialized", slog.String("env", env))
	return nil
}

