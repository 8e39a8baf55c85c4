package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portsrepo "github.com/SscSPs/meufluxo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
)

type reminderService struct {
	BaseService
	snapshots portssvc.SnapshotSvc
	repo      portsrepo.ReminderWriter
	publisher portssvc.ReminderPublisher
	lead      time.Duration
}

// NewReminderService creates the service that hands due reminders to publisher and flags
// them sent through repo.
func NewReminderService(snapshots portssvc.SnapshotSvc, repo portsrepo.ReminderWriter, publisher portssvc.ReminderPublisher, lead time.Duration) portssvc.ReminderSvc {
	if lead < 0 {
		lead = cashflow.DefaultReminderLead
	}
	return &reminderService{
		snapshots: snapshots,
		repo:      repo,
		publisher: publisher,
		lead:      lead,
	}
}

var _ portssvc.ReminderSvc = (*reminderService)(nil)

// DispatchDue works on the stored records as they are. Recurring templates are not expanded
// because only stored ids can be marked sent.
func (s *reminderService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	snapshot, err := s.snapshots.LoadStored(ctx)
	if err != nil {
		return 0, err
	}

	pending := cashflow.PendingReminders(snapshot.Transactions, now, s.lead)
	if len(pending) == 0 {
		s.LogDebug(ctx, "No reminders due")
		return 0, nil
	}

	var errs []error
	sent := 0
	for _, txn := range pending {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		notice := NewReminderNotice(txn, now)
		if err := s.publisher.PublishReminder(ctx, notice); err != nil {
			s.LogError(ctx, err, "Failed to publish reminder", slog.String("transaction_id", txn.ID))
			errs = append(errs, fmt.Errorf("publish reminder %s: %w", txn.ID, err))
			continue
		}
		if err := s.repo.MarkReminderSent(ctx, txn.ID, now); err != nil {
			// The notice is out; the next run will publish it again.
			s.LogError(ctx, err, "Failed to mark reminder as sent", slog.String("transaction_id", txn.ID))
			errs = append(errs, fmt.Errorf("mark reminder %s: %w", txn.ID, err))
			continue
		}
		sent++
	}

	s.LogInfo(ctx, "Reminders dispatched", slog.Int("pending", len(pending)), slog.Int("sent", sent))
	return sent, errors.Join(errs...)
}

// NewReminderNotice builds the broker message for one transaction.
func NewReminderNotice(txn domain.Transaction, now time.Time) portssvc.ReminderNotice {
	return portssvc.ReminderNotice{
		TransactionID: txn.ID,
		Description:   txn.Description,
		Amount:        txn.Amount.StringFixed(2),
		Type:          txn.Type,
		Category:      txn.Category,
		Date:          txn.Date,
		Message:       cashflow.AlertMessage(txn),
		Label:         cashflow.DayLabel(cashflow.DaysUntil(now, txn.Date)),
	}
}
