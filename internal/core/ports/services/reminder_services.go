package services

import (
	"context"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
)

// ReminderNotice is what gets handed to the broker for one due reminder.
type ReminderNotice struct {
	TransactionID string                 `json:"transaction_id"`
	Description   string                 `json:"description"`
	Amount        string                 `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Category      domain.Category        `json:"category"`
	Date          time.Time              `json:"date"`
	Message       string                 `json:"message"`
	Label         string                 `json:"label"`
}

// ReminderPublisher delivers reminder notices to whoever sends the actual e-mail.
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, notice ReminderNotice) error
}

// ReminderSvc dispatches due reminders.
type ReminderSvc interface {
	// DispatchDue publishes every pending reminder and marks it sent. It returns how many
	// reminders were dispatched; a failure on one reminder does not stop the others.
	DispatchDue(ctx context.Context, now time.Time) (int, error)
}
