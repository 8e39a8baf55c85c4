package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
)

// SnapshotReader loads transactions and budgets as one consistent point-in-time view.
type SnapshotReader interface {
	// LoadSnapshot returns every stored transaction, templates included, ordered by date and
	// then by id, along with every stored budget.
	LoadSnapshot(ctx context.Context) ([]domain.Transaction, []domain.Budget, error)
}

// ReminderWriter flips the reminder flag of a stored transaction. It is the only write the
// application performs against the store.
type ReminderWriter interface {
	// MarkReminderSent sets reminder_sent on the transaction. It returns apperrors.ErrNotFound
	// when no such transaction exists.
	MarkReminderSent(ctx context.Context, transactionID string, sentAt time.Time) error
}
