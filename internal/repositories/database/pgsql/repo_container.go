package pgsql

import (
	portsrepo "github.com/SscSPs/meufluxo/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	snapshotRepo := newPgxSnapshotRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SnapshotRepo: snapshotRepo,
		ReminderRepo: snapshotRepo,
	}
}
