// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/fleetmon/pkg/core/usecase/migrationuc"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation in a development or production environment,
the init-dev or init-prod may be used. Both actions only add the
missing tables and rows, so they may be repeated safely.`,
}

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data.
The tables are created (if missing) and filled with the alert
definitions catalog and a sample set of admins, boxes, sensors, trucks,
drivers, cargo types, and routes. The database connection information
are read from the config file.`,
	RunE: initDB((*migrationuc.InitDBUseCase).InitDev),
	Args: cobra.NoArgs,
}

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data.
The tables are created (if missing) and the alert definitions catalog
is inserted. No sample data is added. The database connection
information are read from the config file.`,
	RunE: initDB((*migrationuc.InitDBUseCase).InitProd),
	Args: cobra.NoArgs,
}

func initDB(
	f func(*migrationuc.InitDBUseCase, context.Context) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		c, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := c.ConnectionPool(ctx)
		if err != nil {
			return fmt.Errorf("creating DB pool: %w", err)
		}
		defer p.Close()
		if err = f(migrationuc.NewInitDB(p, schemarp.New()), ctx); err != nil {
			return fmt.Errorf("initializing DB: %w", err)
		}
		return nil
	}
}

func init() {
	dbCmd.AddCommand(initDevCmd, initProdCmd)
	rootCmd.AddCommand(dbCmd)
}
