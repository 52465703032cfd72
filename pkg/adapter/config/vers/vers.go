// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vers parses the versions header of the configuration files.
// The configuration file format and the database schema versions are
// read before the rest of the file, so the matching cfgN package can
// be chosen for loading the actual settings.
package vers

import (
	"fmt"

	"github.com/momeni/fleetmon/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// Config may be embedded inline by the configuration structs in order
// to carry their versions.
type Config struct {
	Versions Versions `yaml:"versions"`
}

// Versions contains the configuration file and database schema
// versions. Each binary supports one database schema version and the
// configuration versions with the same major and an older or equal
// minor version.
type Versions struct {
	Database model.SemVer `yaml:"database"`
	Config   model.SemVer `yaml:"config"`
}

// Load parses the versions of the data yaml document, ignoring all
// other settings.
func Load(data []byte) (*Config, error) {
	vc := &Config{}
	if err := yaml.Unmarshal(data, vc); err != nil {
		return nil, err
	}
	return vc, nil
}

// Validate checks that the configuration version can be loaded by an
// implementation of the impl version.
func (vc *Config) Validate(impl model.SemVer) error {
	if v := vc.Versions.Config; !impl.Supports(v) {
		return fmt.Errorf(
			"config version %s is not supported by %s", v, impl,
		)
	}
	return nil
}
