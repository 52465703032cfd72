// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the fmweb
// fleet monitoring server. Commands are organized using the cobra
// library. The root command starts the web server itself while the
// "db" sub-command can be used for the database initialization.
//
//	./fmweb [-c /path/of/config.yaml] [-l :8080]   # start web server
//	./fmweb db init-dev [-c /path/of/config.yaml]
//	./fmweb db init-prod [-c /path/of/config.yaml]
//
// A .env file in the working directory (if any) is loaded before the
// flags are parsed, so DATABASE_URL and similar overrides may be
// kept there during development.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/momeni/fleetmon/pkg/adapter/config"
	"github.com/momeni/fleetmon/pkg/adapter/config/cfg1"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/alertsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/boxesrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/fleetrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/ledgerrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/readingsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/routesrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/sensorsrp"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres/tripsrp"
	"github.com/momeni/fleetmon/pkg/adapter/metrics"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin/routes"
	"github.com/momeni/fleetmon/pkg/core/log"
	"github.com/momeni/fleetmon/pkg/core/usecase/appuc"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var (
	cfgPath    string
	listenAddr string
)

var rootCmd = &cobra.Command{
	Use:   "fmweb",
	Short: "Cold-chain fleet monitoring web server",
	Long: `Cold-chain fleet monitoring web server which keeps track of
the refrigerated boxes and their sensors, schedules trips and moves
them along their lifecycle, and reports the environmental readings and
alerts of each trip through a REST API.
Route geometries are fetched from an OSRM compatible routing service
and cached in redis (if configured). Prometheus metrics are exposed
at /metrics and a liveness probe at /healthz.
Sending SIGHUP reloads the use case settings from the config file.`,
	RunE: startWebServer,
	Args: cobra.NoArgs,
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()

	m := metrics.New()
	rdb, err := c.Redis.NewClient()
	if err != nil {
		return fmt.Errorf("creating redis client: %w", err)
	}
	var cache redis.Cmdable // must stay a nil interface if disabled
	if rdb != nil {
		defer rdb.Close()
		cache = rdb
	}
	geo, err := c.NewProvider(cache, m)
	if err != nil {
		return fmt.Errorf("creating geometry provider: %w", err)
	}
	app, err := appuc.New(p, appuc.Deps{
		Boxes:    boxesrp.New(),
		Sensors:  sensorsrp.New(),
		Ledger:   ledgerrp.New(),
		Trips:    tripsrp.New(),
		Alerts:   alertsrp.New(),
		Readings: readingsrp.New(),
		Routes:   routesrp.New(),
		Fleet:    fleetrp.New(),
		Faults:   m,
		Geometry: geo,
	}, c)
	if err != nil {
		return fmt.Errorf("creating application use case: %w", err)
	}
	e := c.Gin.NewEngine(gin.Metrics(m))
	routes.Register(e, app, m.Handler())

	go reloadOnHangup(ctx, app)
	return serve(ctx, &http.Server{
		Addr:              listenAddr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	})
}

// loadConfig loads the cfgPath file and installs its logger as the
// default slog logger.
func loadConfig() (*cfg1.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	logger, err := c.Logging.NewLogger(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	slog.SetDefault(logger)
	return c, nil
}

// serve runs srv until ctx is canceled and then shuts it down
// gracefully, waiting for the in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info(ctx, "fmweb is listening", slog.String("addr", srv.Addr))
	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down")
	sctx, cancel := context.WithTimeout(
		context.WithoutCancel(ctx), shutdownTimeout,
	)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// reloadOnHangup reloads the config file whenever a SIGHUP is received
// and rebuilds the use cases of app with its settings. A broken config
// file is logged and the running use cases are kept.
func reloadOnHangup(ctx context.Context, app *appuc.UseCase) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
		}
		c, err := config.Load(cfgPath)
		if err == nil {
			err = app.Reload(c)
		}
		if err != nil {
			log.Error(ctx, "reload failed", log.Err("err", err))
			continue
		}
		vs := app.Settings()
		log.Info(ctx, "settings are reloaded",
			slog.Duration("departure_grace", vs.Trips.DepartureGrace),
			slog.Int("recent_count", vs.Readings.RecentCount),
		)
	}
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv, fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.Flags().StringVarP(
		&listenAddr, "listen", "l", ":8080", "http listen address",
	)
}

// loadDotEnv loads the .env file if it exists. Variables which are
// set already are not overridden.
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "ignoring .env file:", err)
	}
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/fmweb.yaml"
	}
}
