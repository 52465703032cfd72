// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cfg1 makes it possible to load configuration settings with
// version 1.x.y since all minor and patch versions (which are known)
// with the same major version, can be loaded with one implementation.
package cfg1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/momeni/fleetmon/pkg/adapter/cache/rediscache"
	"github.com/momeni/fleetmon/pkg/adapter/config/settings"
	"github.com/momeni/fleetmon/pkg/adapter/config/vers"
	"github.com/momeni/fleetmon/pkg/adapter/db/postgres"
	"github.com/momeni/fleetmon/pkg/adapter/geometry/httpgeo"
	"github.com/momeni/fleetmon/pkg/adapter/restful/gin"
	"github.com/momeni/fleetmon/pkg/core/model"
	"github.com/momeni/fleetmon/pkg/core/usecase/routeuc"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// Environment variables which override the configuration file.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvRedisURL    = "REDIS_URL"
	EnvGeometryURL = "GEOMETRY_URL"
)

// Config contains all settings which are required by different parts
// of the project following the v1.x.y format, such as adapters or
// use cases. It is preferred to implement Config with primitive fields
// or other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration can be
// versioned and kept intact while other layers can change freely.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Logging  Logging  // Default slog logger settings
	Redis    Redis    // Optional geometry cache settings
	Geometry Geometry // Optional routing service settings
	Usecases Usecases // Configuration settings for supported use cases

	// Vers contains the configuration file and database schema version
	// strings corresponding to this Config instance and its Database
	// target.
	Vers vers.Config `yaml:",inline"`
}

// Database contains the database related configuration settings.
// The password of User is read from the .pgpass file in PassDir,
// unless the whole connection URL is given by the DATABASE_URL
// environment variable.
type Database struct {
	Host    string // domain name or IP address of the DBMS server
	Port    int    // port number of the DBMS server
	Name    string // database name, like fleetmon
	User    string // role name, fleetmon by default
	PassDir string `yaml:"pass-dir"` // path of the passwords dir

	url string
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
func (c *Config) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	u, err := c.Database.ConnectionURL()
	if err != nil {
		return nil, err
	}
	p, err := postgres.NewPool(ctx, u)
	if err != nil {
		return nil, fmt.Errorf(
			"connecting to %s:%d/%s: %w",
			c.Database.Host, c.Database.Port, c.Database.Name, err,
		)
	}
	return p, nil
}

// ConnectionURL returns the database connection URL. If the URL was
// not overridden by the environment, it embeds the host, port, role
// name, database name, and password value. The password is read from
// the .pgpass file in the d.PassDir folder which should conform with
// the pgpass format with lines like this:
//
//	host:port:dbname:role:password
//
// Empty and `#`-commented lines are ignored.
func (d Database) ConnectionURL() (string, error) {
	if d.url != "" {
		return d.url, nil
	}
	path := filepath.Join(d.PassDir, ".pgpass")
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, d.User)
	var pass string
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			pass = line[len(prfx):]
			break
		}
	}
	if pass == "" {
		return "", fmt.Errorf("no matching password line in %q", path)
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String(), nil
}

// ValidateAndNormalize validates the database settings and fills the
// missing ones with their defaults. So, it takes a pointer receiver
// instead of a non-reference receiver (in contrast to other methods).
func (d *Database) ValidateAndNormalize() error {
	if d.url != "" {
		return nil
	}
	if d.Host == "" {
		d.Host = "127.0.0.1"
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.User == "" {
		d.User = "fleetmon"
	}
	switch {
	case d.Port < 0 || d.Port > 65535:
		return fmt.Errorf("invalid port: %d", d.Port)
	case d.Name == "":
		return errors.New("database name is required")
	}
	return nil
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and take their default values.
type Gin struct {
	Logger   *bool // Whether to register the access logging middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The request id middleware always comes first, so
// it is available to the access logs, followed by the extra ones.
func (g Gin) NewEngine(extra ...gin.HandlerFunc) *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 3+len(extra))
	middlewares = append(middlewares, gin.RequestID())
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	middlewares = append(middlewares, extra...)
	return gin.New(middlewares...)
}

// Logging contains the default logger settings.
type Logging struct {
	Level  string // debug, info, warn, or error; info by default
	Format string // text or json; text by default
}

// NewLogger creates a slog logger writing to w based on the l settings.
func (l Logging) NewLogger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl, AddSource: true}
	switch l.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unsupported log format: %q", l.Format)
}

// Redis contains the route geometry cache settings. An empty URL
// disables the cache.
type Redis struct {
	URL string             // like redis://localhost:6379/0
	TTL *settings.Duration // lifetime of the cached entries
}

// NewClient creates a redis client or returns nil if no URL is set.
func (r Redis) NewClient() (*redis.Client, error) {
	if r.URL == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(r.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return redis.NewClient(opt), nil
}

// Geometry contains the routing service settings. An empty URL
// disables the route geometry API.
type Geometry struct {
	URL     string             // base URL of an OSRM compatible service
	Rate    *float64           // requests per second
	Burst   *int               // token bucket size
	Timeout *settings.Duration // per-request timeout
}

// NewProvider creates the route geometry provider, wrapped by a redis
// cache if rdb is not nil. The obs observer receives the cache lookup
// results and may be nil. If no routing service is configured, a nil
// provider is returned.
func (c *Config) NewProvider(
	rdb redis.Cmdable, obs rediscache.Observer,
) (routeuc.GeometryProvider, error) {
	g := c.Geometry
	if g.URL == "" {
		return nil, nil
	}
	client, err := httpgeo.New(g.URL, *g.Rate, *g.Burst, g.Timeout.Std())
	if err != nil {
		return nil, fmt.Errorf("creating routing client: %w", err)
	}
	if rdb == nil {
		return client, nil
	}
	cache, err := rediscache.New(rdb, client, c.Redis.TTL.Std(), obs)
	if err != nil {
		return nil, fmt.Errorf("creating geometry cache: %w", err)
	}
	return cache, nil
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Trips    Trips    // trips use case related settings
	Readings Readings // readings use case related settings
}

// Trips contains the configuration settings for the trips use case.
// A nil DepartureGrace leaves the use case default in effect.
type Trips struct {
	// DepartureGrace is the tolerance for departure times which are
	// slightly in the past.
	DepartureGrace *settings.Duration `yaml:"departure-grace"`
	// MinDepartureGrace is the inclusive minimum acceptable value
	// for the DepartureGrace setting.
	// A missing value indicates that there is no lower bound.
	MinDepartureGrace *settings.Duration `yaml:"departure-grace-minimum"`
	// MaxDepartureGrace is the inclusive maximum acceptable value
	// for the DepartureGrace setting.
	MaxDepartureGrace *settings.Duration `yaml:"departure-grace-maximum"`
}

// Readings contains the configuration settings for the readings
// use case.
type Readings struct {
	RecentCount    *int `yaml:"recent-count"`
	MinRecentCount *int `yaml:"recent-count-minimum"`
	MaxRecentCount *int `yaml:"recent-count-maximum"`
}

// Load unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Extra items in the
// data will be ignored and missing items will take their default
// values. Thereafter, the DATABASE_URL, REDIS_URL, and GEOMETRY_URL
// environment variables override their settings (if they are set) and
// the loaded Config will be validated and normalized in order to ensure
// that provided settings are acceptable.
func Load(data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	if u := os.Getenv(EnvDatabaseURL); u != "" {
		c.Database.url = u
	}
	if u := os.Getenv(EnvRedisURL); u != "" {
		c.Redis.URL = u
	}
	if u := os.Getenv(EnvGeometryURL); u != "" {
		c.Geometry.URL = u
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

var (
	defaultLogger    = true
	defaultRecovery  = true
	defaultRedisTTL  = settings.Duration(24 * time.Hour)
	defaultRate      = 1.0
	defaultBurst     = 1
	defaultGeoTimeout = settings.Duration(5 * time.Second)
)

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
// Use case settings which are out of their boundary values are
// rejected, because the configuration file is edited by the operator
// who should see the mistake immediately.
func (c *Config) ValidateAndNormalize() error {
	if err := c.Vers.Validate(Version); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	settings.OverwriteNil(&c.Gin.Logger, &defaultLogger)
	settings.OverwriteNil(&c.Gin.Recovery, &defaultRecovery)
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if _, err := c.Logging.NewLogger(io.Discard); err != nil {
		return fmt.Errorf("validating logging settings: %w", err)
	}
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	settings.OverwriteNil(&c.Redis.TTL, &defaultRedisTTL)
	if *c.Redis.TTL <= 0 {
		return fmt.Errorf("redis ttl (%v) must be positive", c.Redis.TTL.Std())
	}
	settings.OverwriteNil(&c.Geometry.Rate, &defaultRate)
	settings.OverwriteNil(&c.Geometry.Burst, &defaultBurst)
	settings.OverwriteNil(&c.Geometry.Timeout, &defaultGeoTimeout)
	t := &c.Usecases.Trips
	if err := settings.VerifyRange(
		&t.DepartureGrace, t.MinDepartureGrace, t.MaxDepartureGrace,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(departure grace=%v, minb=%v, maxb=%v): %w",
			err.Value.LogValue(), t.MinDepartureGrace.LogValue(),
			t.MaxDepartureGrace.LogValue(), err,
		)
	}
	r := &c.Usecases.Readings
	if err := settings.VerifyRange(
		&r.RecentCount, r.MinRecentCount, r.MaxRecentCount,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(recent count=%v, minb=%v, maxb=%v): %w",
			orNil(err.Value), orNil(r.MinRecentCount),
			orNil(r.MaxRecentCount), err,
		)
	}
	if r.RecentCount != nil && *r.RecentCount <= 0 {
		return fmt.Errorf("recent count (%d) must be positive", *r.RecentCount)
	}
	return nil
}

func orNil(n *int) any {
	if n == nil {
		return "nil"
	}
	return *n
}

// Version returns the semantic version of this Config struct contents
// which its major version is equal to 1, while its minor and patch
// versions may be older than the Minor and Patch constants.
func (c *Config) Version() model.SemVer {
	return c.Vers.Versions.Config
}

// SchemaVersion returns the semantic version of the database schema
// which its connection information are kept by this Config struct.
func (c *Config) SchemaVersion() model.SemVer {
	return c.Vers.Versions.Database
}
