// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// ErrUnknownEnum indicates that a given string may not be parsed as a
// valid/known enum value. This error encodes a description string and
// does not communicate the invalid string itself because the caller of
// a ParseX function already knows about it and should wrap this error
// with that string (or the relevant field name) as required.
var ErrUnknownEnum = errors.New("unknown enum value")

// InvalidEnumError indicates an out of range numeric enum value.
// The Enum field names the enum type, e.g., "trip status".
type InvalidEnumError struct {
	Enum  string
	Value int
}

// Error implements the error interface, returning a string
// representation of the InvalidEnumError.
func (e InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Enum, e.Value)
}

// enumNames maps valid enum values to their serialized names. The zero
// value of every enum is invalid and must not appear in such a map.
type enumNames[E ~int] struct {
	enum  string
	names map[E]string
}

func (en enumNames[E]) validate(e E) error {
	if _, ok := en.names[e]; ok {
		return nil
	}
	return InvalidEnumError{Enum: en.enum, Value: int(e)}
}

func (en enumNames[E]) name(e E) string {
	if n, ok := en.names[e]; ok {
		return n
	}
	panic(InvalidEnumError{Enum: en.enum, Value: int(e)})
}

func (en enumNames[E]) parse(s string) (E, error) {
	for e, n := range en.names {
		if n == s {
			return e, nil
		}
	}
	return 0, ErrUnknownEnum
}

func (en enumNames[E]) unmarshal(e *E, text []byte) error {
	v, err := en.parse(string(text))
	if err != nil {
		return fmt.Errorf("%s %q: %w", en.enum, text, err)
	}
	*e = v
	return nil
}
