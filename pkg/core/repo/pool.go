// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo declares the persistence ports of the use cases layer.
// Each repository wraps a Conn or Tx and returns a queryer, so one
// repository instance may be shared by concurrent use case calls.
package repo

import "context"

type ConnHandler func(context.Context, Conn) error

type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}

// WithTx acquires a connection from p and runs h in a transaction on
// it. The transaction is committed if h returns nil and rolled back
// otherwise.
func WithTx(ctx context.Context, p Pool, h TxHandler) error {
	return p.Conn(ctx, func(ctx context.Context, c Conn) error {
		return c.Tx(ctx, h)
	})
}
