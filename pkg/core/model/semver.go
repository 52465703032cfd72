// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer is a major.minor.patch version of the configuration file
// format or the database schema. Pre-release suffixes are not accepted.
type SemVer [3]uint

// UnmarshalText parses one to three dot-separated non-negative numbers,
// so "1" and "1.0" are read as 1.0.0. On errors, sv is left unchanged.
func (sv *SemVer) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ".")
	if len(parts) > 3 {
		return fmt.Errorf("version %q has more than three components", text)
	}
	var v SemVer
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return fmt.Errorf("version %q: bad component %q", text, p)
		}
		v[i] = uint(n)
	}
	*sv = v
	return nil
}

func (sv SemVer) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

func (sv SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", sv[0], sv[1], sv[2])
}

// Supports reports whether an implementation of the sv version can
// handle a document (or schema) of the v version. They must share the
// major version and v may not be newer than sv.
func (sv SemVer) Supports(v SemVer) bool {
	switch {
	case sv[0] != v[0]:
		return false
	case sv[1] != v[1]:
		return v[1] < sv[1]
	default:
		return v[2] <= sv[2]
	}
}
