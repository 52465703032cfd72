// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/fleetmon/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool is a database connections pool. Although it is named after the
// PostgreSQL DBMS, any gorm dialector which reports duplicate keys as
// gorm.ErrDuplicatedKey may back it (see Open).
type Pool struct {
	*gorm.DB
}

// NewPool connects to the PostgreSQL database which is identified by
// the url connection string.
func NewPool(ctx context.Context, url string) (*Pool, error) {
	return Open(ctx, postgres.Open(url))
}

// Open creates a connections pool using the d gorm dialector and
// tests it by acquiring one connection. The TranslateError option is
// enabled, so unique constraint violations are reported uniformly
// by all dialects and can be converted to conflicts by Translate.
func Open(ctx context.Context, d gorm.Dialector) (*Pool, error) {
	gdb, err := gorm.Open(d, &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: logger.NewSlogLogger(slog.Default(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			// Set to false in order to log with replaced vars
			ParameterizedQueries: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

type ConnHandler = repo.ConnHandler

func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a dedicated connection and passes it to f. The
// connection is returned to the pool when f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

// Ping checks that the database is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
