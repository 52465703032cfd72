// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core errors. Each Error wraps a descriptive
// error and carries the HTTP status code which its kind is reported
// with. The kind of a fault is identified by that status code, so the
// adapters layer does not need to know about individual use cases:
//
//   - BadRequest (400) is a validation error, the input is malformed
//     and retrying it without changes will fail again,
//   - NotFound (404) is reported for a missing referenced entity,
//   - Conflict (409) is reported when a concurrent writer won the race
//     or an atomic invariant would be violated, so the caller may
//     re-read the state and try again,
//   - InvalidTransition (422) is reported when the target entity is in
//     a state which does not accept the asked operation.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

func InvalidTransition(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnprocessableEntity}
}

// IsBadRequest reports whether err chain contains a validation Error.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

// IsNotFound reports whether err chain contains a NotFound Error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err chain contains a Conflict Error.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsInvalidTransition reports whether err chain contains an
// InvalidTransition Error.
func IsInvalidTransition(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, code int) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	return ce.HTTPStatusCode == code
}
