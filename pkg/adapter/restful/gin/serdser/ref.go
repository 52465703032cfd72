// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package serdser

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Key lists the identifier types of the referenced entities. Sensors
// are identified by strings and other entities by integers.
type Key interface {
	~int64 | ~string
}

// Ref is a reference to another entity in a request body. Clients may
// send either the bare id (like 3 or "S-17") or the expanded entity
// (like {"id": 3, "status": "available"}) which its other fields are
// ignored. Both forms are normalized into the ID field.
type Ref[K Key] struct {
	ID K
}

var errNoRefID = errors.New("referenced object has no id")

// UnmarshalJSON accepts a bare id or an object with an id field.
func (r *Ref[K]) UnmarshalJSON(data []byte) error {
	var id K
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}
	var obj struct {
		ID *K `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf(
			"reference must be an id or an object with an id: %w", err,
		)
	}
	if obj.ID == nil {
		return errNoRefID
	}
	r.ID = *obj.ID
	return nil
}

// MarshalJSON writes the bare id.
func (r Ref[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}
