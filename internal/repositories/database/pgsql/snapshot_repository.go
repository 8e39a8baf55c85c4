package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portsrepo "github.com/SscSPs/meufluxo/internal/core/ports/repositories"
	"github.com/SscSPs/meufluxo/internal/models"
	"github.com/SscSPs/meufluxo/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectTransactionsQuery = `
	SELECT id, amount, date, type, category, description, has_reminder, reminder_sent,
		reminder_sent_at, created_at, recurrence_frequency, recurrence_weekdays,
		recurrence_day_of_month, recurrence_end_date
	FROM transactions
	ORDER BY date ASC, id ASC
`

const selectBudgetsQuery = `
	SELECT id, category, limit_amount, period
	FROM budgets
	ORDER BY category ASC, period ASC
`

// PgxSnapshotRepository reads transactions and budgets from Postgres.
type PgxSnapshotRepository struct {
	BaseRepository
	validate *validator.Validate
}

func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
		validate:       validator.New(),
	}
}

var (
	_ portsrepo.SnapshotReader     = (*PgxSnapshotRepository)(nil)
	_ portsrepo.ReminderWriter     = (*PgxSnapshotRepository)(nil)
	_ portsrepo.TransactionManager = (*PgxSnapshotRepository)(nil)
)

// LoadSnapshot reads transactions and budgets inside a single read-only transaction.
func (r *PgxSnapshotRepository) LoadSnapshot(ctx context.Context) ([]domain.Transaction, []domain.Budget, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	txns, err := r.listTransactions(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	budgets, err := r.listBudgets(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return txns, budgets, nil
}

// MarkReminderSent flags the reminder of a transaction as delivered.
func (r *PgxSnapshotRepository) MarkReminderSent(ctx context.Context, transactionID string, sentAt time.Time) error {
	query := `
		UPDATE transactions
		SET reminder_sent = TRUE, reminder_sent_at = $2
		WHERE id = $1
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, sentAt)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent for transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

func (r *PgxSnapshotRepository) listTransactions(ctx context.Context, q querier) ([]domain.Transaction, error) {
	rows, err := q.Query(ctx, selectTransactionsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.ID,
			&m.Amount,
			&m.Date,
			&m.Type,
			&m.Category,
			&m.Description,
			&m.HasReminder,
			&m.ReminderSent,
			&m.ReminderSentAt,
			&m.CreatedAt,
			&m.RecurrenceFrequency,
			&m.RecurrenceWeekdays,
			&m.RecurrenceDayOfMonth,
			&m.RecurrenceEndDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		if err := r.validate.Struct(m); err != nil {
			return nil, fmt.Errorf("%w: %w: transaction %s: %w", apperrors.ErrInvalidSnapshot, apperrors.ErrValidation, m.ID, err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactions(result), nil
}

func (r *PgxSnapshotRepository) listBudgets(ctx context.Context, q querier) ([]domain.Budget, error) {
	rows, err := q.Query(ctx, selectBudgetsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		var m models.Budget
		err := row.Scan(&m.ID, &m.Category, &m.Limit, &m.Period)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget rows: %w", err)
	}
	for _, m := range result {
		if err := r.validate.Struct(m); err != nil {
			return nil, fmt.Errorf("%w: %w: budget %s: %w", apperrors.ErrInvalidSnapshot, apperrors.ErrValidation, m.ID, err)
		}
	}
	return mapping.ToDomainBudgets(result), nil
}
