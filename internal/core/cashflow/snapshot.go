package cashflow

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/cespare/xxhash/v2"
)

// Snapshot is a validated, point-in-time set of transactions and budgets.
type Snapshot struct {
	Transactions []domain.Transaction
	Budgets      []domain.Budget
}

// NewSnapshot validates the records delivered by the store. Any malformed record rejects the
// whole snapshot so that no partial view is ever derived from it.
func NewSnapshot(transactions []domain.Transaction, budgets []domain.Budget) (*Snapshot, error) {
	seen := make(map[string]struct{}, len(transactions))
	for _, txn := range transactions {
		if err := txn.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidSnapshot, err)
		}
		if _, dup := seen[txn.ID]; dup {
			return nil, fmt.Errorf("%w: %w: duplicate transaction id %s", apperrors.ErrInvalidSnapshot, apperrors.ErrValidation, txn.ID)
		}
		seen[txn.ID] = struct{}{}
	}

	type budgetKey struct {
		category domain.Category
		period   domain.BudgetPeriod
	}
	budgetSeen := make(map[budgetKey]struct{}, len(budgets))
	for _, b := range budgets {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidSnapshot, err)
		}
		key := budgetKey{b.Category, b.Period}
		if _, dup := budgetSeen[key]; dup {
			return nil, fmt.Errorf("%w: %w: duplicate %s budget for category %s", apperrors.ErrInvalidSnapshot, apperrors.ErrValidation, b.Period, b.Category)
		}
		budgetSeen[key] = struct{}{}
	}

	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return &Snapshot{Transactions: transactions, Budgets: budgets}, nil
}

// Fingerprint identifies the snapshot content. Two snapshots with the same records in the
// same order have the same fingerprint.
func (s *Snapshot) Fingerprint() uint64 {
	h := xxhash.New()
	for _, txn := range s.Transactions {
		_, _ = h.WriteString(txn.ID)
		_, _ = h.WriteString("\x1f" + txn.Amount.String())
		_, _ = h.WriteString("\x1f" + strconv.FormatInt(txn.Date.UnixNano(), 10))
		_, _ = h.WriteString("\x1f" + string(txn.Type) + "\x1f" + string(txn.Category))
		_, _ = h.WriteString("\x1f" + txn.Description)
		_, _ = h.WriteString("\x1f" + strconv.FormatBool(txn.HasReminder) + strconv.FormatBool(txn.ReminderSent))
		_, _ = h.WriteString("\x1e")
	}
	_, _ = h.WriteString("\x1d")
	for _, b := range s.Budgets {
		_, _ = h.WriteString(b.ID + "\x1f" + string(b.Category) + "\x1f" + b.Limit.String() + "\x1f" + string(b.Period) + "\x1e")
	}
	return h.Sum64()
}

// BudgetsFor returns the budgets of one period type, in snapshot order.
func BudgetsFor(budgets []domain.Budget, period domain.BudgetPeriod) []domain.Budget {
	out := make([]domain.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.Period == period {
			out = append(out, b)
		}
	}
	return out
}
