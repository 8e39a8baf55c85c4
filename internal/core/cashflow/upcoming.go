package cashflow

import (
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultReminderLead is how long before its date a transaction's reminder becomes due.
const DefaultReminderLead = 24 * time.Hour

// SummarizeUpcoming splits every transaction dated after now into income and expense lists,
// each keeping snapshot order, with their totals.
func SummarizeUpcoming(transactions []domain.Transaction, now time.Time) domain.UpcomingSummary {
	summary := domain.UpcomingSummary{
		Income:       []domain.Transaction{},
		Expense:      []domain.Transaction{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, txn := range transactions {
		if !txn.Date.After(now) {
			continue
		}
		switch txn.Type {
		case domain.Income:
			summary.Income = append(summary.Income, txn)
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case domain.Expense:
			summary.Expense = append(summary.Expense, txn)
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		}
	}
	return summary
}

// PendingReminders returns the transactions whose reminder is due and has not been sent:
// reminder requested, not yet sent, and dated no later than now+lead. Overdue reminders stay
// pending until they are marked sent.
func PendingReminders(transactions []domain.Transaction, now time.Time, lead time.Duration) []domain.Transaction {
	deadline := now.Add(lead)
	return Select(transactions, func(txn domain.Transaction) bool {
		return txn.HasReminder && !txn.ReminderSent && !txn.Date.After(deadline)
	})
}
