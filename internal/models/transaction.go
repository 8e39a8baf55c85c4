package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the type tag persisted by the store.
type TransactionType string

const (
	Income  TransactionType = "entrada"
	Expense TransactionType = "saida"
)

// Transaction is a stored transaction row. Templates carry their recurrence rule inline;
// plain transactions leave the Recurrence* columns empty.
type Transaction struct {
	ID                   string          `db:"id" validate:"required"`
	Amount               decimal.Decimal `db:"amount"`
	Date                 time.Time       `db:"date"`
	Type                 TransactionType `db:"type" validate:"required,oneof=entrada saida"`
	Category             string          `db:"category" validate:"required"`
	Description          string          `db:"description"`
	HasReminder          bool            `db:"has_reminder"`
	ReminderSent         bool            `db:"reminder_sent"`
	ReminderSentAt       *time.Time      `db:"reminder_sent_at"`
	CreatedAt            time.Time       `db:"created_at"`
	RecurrenceFrequency  *string         `db:"recurrence_frequency" validate:"omitempty,oneof=daily weekly monthly yearly"`
	RecurrenceWeekdays   []int32         `db:"recurrence_weekdays" validate:"omitempty,dive,min=0,max=6"`
	RecurrenceDayOfMonth *int32          `db:"recurrence_day_of_month" validate:"omitempty,min=1,max=31"`
	RecurrenceEndDate    *time.Time      `db:"recurrence_end_date"`
}
