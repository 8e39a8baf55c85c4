package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens and closes store transactions.
type TransactionManager interface {
	// BeginSnapshot starts a read-only transaction in which every query sees the same
	// committed state.
	BeginSnapshot(ctx context.Context) (pgx.Tx, error)

	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback is a no-op on a transaction that is already closed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
