package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portsrepo "github.com/SscSPs/meufluxo/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/SscSPs/meufluxo/internal/core/recurrence"
)

type snapshotService struct {
	BaseService
	repo        portsrepo.SnapshotReader
	horizonDays int
}

// SnapshotServiceOption is a functional option for configuring the snapshot service
type SnapshotServiceOption func(*snapshotService)

// WithMaterializationHorizon sets the minimum number of days past "now" recurring templates
// are expanded, whatever the caller asks for.
func WithMaterializationHorizon(days int) SnapshotServiceOption {
	return func(s *snapshotService) {
		if days > 0 {
			s.horizonDays = days
		}
	}
}

// NewSnapshotService creates a snapshot service reading from repo.
func NewSnapshotService(repo portsrepo.SnapshotReader, options ...SnapshotServiceOption) portssvc.SnapshotSvc {
	svc := &snapshotService{
		repo:        repo,
		horizonDays: cashflow.DefaultHorizonDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SnapshotSvc = (*snapshotService)(nil)

// Load reads the store, expands recurring templates up to until and validates the result.
func (s *snapshotService) Load(ctx context.Context, now, until time.Time) (*cashflow.Snapshot, error) {
	txns, budgets, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	// Templates expand from their own date; the configured horizon is a floor.
	if floor := now.AddDate(0, 0, s.horizonDays); until.Before(floor) {
		until = floor
	}
	materialized, err := recurrence.Materialize(txns, time.Time{}, until)
	if err != nil {
		s.LogError(ctx, err, "Failed to expand recurring transactions")
		return nil, fmt.Errorf("failed to expand recurring transactions: %w", err)
	}

	snapshot, err := cashflow.NewSnapshot(materialized, budgets)
	if err != nil {
		s.LogError(ctx, err, "Store returned an invalid snapshot")
		return nil, err
	}

	s.LogDebug(ctx, "Snapshot loaded",
		slog.Int("stored_transactions", len(txns)),
		slog.Int("transactions", len(snapshot.Transactions)),
		slog.Int("budgets", len(snapshot.Budgets)),
		slog.Time("until", until))
	return snapshot, nil
}

// LoadStored reads and validates the store without expanding templates.
func (s *snapshotService) LoadStored(ctx context.Context) (*cashflow.Snapshot, error) {
	txns, budgets, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := cashflow.NewSnapshot(txns, budgets)
	if err != nil {
		s.LogError(ctx, err, "Store returned an invalid snapshot")
		return nil, err
	}
	return snapshot, nil
}

func (s *snapshotService) read(ctx context.Context) ([]domain.Transaction, []domain.Budget, error) {
	txns, budgets, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load snapshot from store")
		return nil, nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return txns, budgets, nil
}
