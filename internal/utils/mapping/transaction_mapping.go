package mapping

import (
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/SscSPs/meufluxo/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		ID:           m.ID,
		Amount:       m.Amount,
		Date:         m.Date,
		Type:         domain.TransactionType(m.Type),
		Category:     domain.Category(m.Category),
		Description:  m.Description,
		HasReminder:  m.HasReminder,
		ReminderSent: m.ReminderSent,
		CreatedAt:    m.CreatedAt,
	}
	if m.RecurrenceFrequency != nil {
		rule := &domain.Recurrence{
			Frequency: domain.Frequency(*m.RecurrenceFrequency),
			EndDate:   m.RecurrenceEndDate,
		}
		for _, wd := range m.RecurrenceWeekdays {
			rule.Weekdays = append(rule.Weekdays, time.Weekday(wd))
		}
		if m.RecurrenceDayOfMonth != nil {
			rule.DayOfMonth = int(*m.RecurrenceDayOfMonth)
		}
		d.Recurrence = rule
	}
	return d
}

// ToDomainTransactions converts a slice of model Transactions to domain Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
