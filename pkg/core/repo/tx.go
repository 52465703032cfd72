// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx represents a database transaction which must not be shared by
// goroutines. All ledger writes and trip lifecycle changes run in one
// Tx each, so the row locks which they take (see the Lock methods of
// the Boxes and Fleet queryers) are held until it commits or rolls
// back. A READ-COMMITTED isolation level is expected, hence, racing
// writers are serialized by those locks and the partial unique indexes
// rather than by the isolation level.
type Tx interface {
	Queryer

	// IsTx prevents a Conn from implementing the Tx interface.
	IsTx()
}
