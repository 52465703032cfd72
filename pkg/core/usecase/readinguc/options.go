// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package readinguc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the readings use case.
type Option func(uc *UseCase) error

// WithRecentCount option sets the number of readings which are listed
// as the recent readings of a trip. It defaults to 5.
func WithRecentCount(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("recent count (%d) is not positive", n)
		}
		if uc.recentCount != 0 {
			return errors.New("recent count is already configured")
		}
		uc.recentCount = n
		return nil
	}
}
