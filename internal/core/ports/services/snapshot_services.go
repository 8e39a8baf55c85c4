package services

import (
	"context"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/cashflow"
)

// SnapshotSvc turns the stored records into a validated snapshot the engine can work on.
type SnapshotSvc interface {
	// Load reads the store, expands recurring templates up to until (never less than the
	// configured horizon past now) and validates the result.
	Load(ctx context.Context, now, until time.Time) (*cashflow.Snapshot, error)

	// LoadStored validates the stored records as they are. Reminders are computed from it,
	// since only stored ids can be marked sent.
	LoadStored(ctx context.Context) (*cashflow.Snapshot, error)
}
