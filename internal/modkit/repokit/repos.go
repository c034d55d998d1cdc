// Package repokit holds the shared plumbing repos are built from
package repokit

import (
	"context"

	"scrollpress/internal/platform/store"
)

// Queryer is the SQL surface repos run against, pool or transaction
type Queryer = store.RowQuerier

// TxRunner can wrap a function in a transaction
type TxRunner = store.TxRunner

type (
	// Rows is a query result set
	Rows = store.Rows

	// Row is a single-row result
	Row = store.Row

	// CommandTag reports what a write statement did
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
