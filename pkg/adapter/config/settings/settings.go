// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the value types and generic helpers which
// are shared by the configuration format versions. Optional settings
// are kept as pointers, so a missing yaml item can be told apart from
// a zero value, and may be limited by optional minimum and maximum
// boundary values.
package settings

import (
	"cmp"
)

// Nil2Zero replaces a nil *t with a pointer to the zero value of T.
func Nil2Zero[T any](t **T) {
	if (*t) != nil {
		return
	}
	var zero T
	(*t) = &zero
}

// OverwriteNil sets *dst to a copy of the src value if *dst is nil.
// A nil src leaves *dst untouched.
func OverwriteNil[T any](dst **T, src *T) {
	if (*dst) != nil || src == nil {
		return
	}
	t := *src
	(*dst) = &t
}

// OutOfRangeError reports a setting which was not in its [min, max]
// range, or a range which its minimum was greater than its maximum.
type OutOfRangeError[T cmp.Ordered] struct {
	Value        *T   // the rejected value, nil for InvalidRange
	LessThanMin  bool // set when the minimum was violated
	InvalidRange bool // set when min > max
}

func (e *OutOfRangeError[T]) Error() string {
	switch {
	case e.InvalidRange:
		return "min is greater than max"
	case e.LessThanMin:
		return "value is less than min"
	default:
		return "value is greater than max"
	}
}

// VerifyRange checks that *value is between the minb and maxb bounds
// (inclusive) when they are not nil. A violating value is clamped to
// the violated bound and the original value is reported in the error.
// A nil *value is always accepted.
func VerifyRange[T cmp.Ordered](
	value **T, minb, maxb *T,
) *OutOfRangeError[T] {
	switch {
	case minb != nil && maxb != nil && (*minb) > (*maxb):
		return &OutOfRangeError[T]{InvalidRange: true}
	case (*value) == nil:
		return nil
	}
	switch v := **value; {
	case minb != nil && v < *minb:
		**value = *minb
		return &OutOfRangeError[T]{Value: &v, LessThanMin: true}
	case maxb != nil && v > *maxb:
		**value = *maxb
		return &OutOfRangeError[T]{Value: &v}
	}
	return nil
}
