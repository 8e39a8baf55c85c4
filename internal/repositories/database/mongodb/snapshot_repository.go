package mongodb

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portsrepo "github.com/SscSPs/meufluxo/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const (
	TransactionsCollection = "transactions"
	BudgetsCollection      = "budgets"
)

// SnapshotRepository reads the collections written by the original backend.
type SnapshotRepository struct {
	provider CollectionProvider
	loc      *time.Location
}

// NewSnapshotRepository creates a repository. Dates stored without an offset are read in loc.
func NewSnapshotRepository(provider CollectionProvider, loc *time.Location) *SnapshotRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &SnapshotRepository{provider: provider, loc: loc}
}

var (
	_ portsrepo.SnapshotReader = (*SnapshotRepository)(nil)
	_ portsrepo.ReminderWriter = (*SnapshotRepository)(nil)
)

// NewRepositoryProvider wires the Mongo-backed repositories.
func NewRepositoryProvider(provider CollectionProvider, loc *time.Location) portsrepo.RepositoryProvider {
	repo := NewSnapshotRepository(provider, loc)
	return portsrepo.RepositoryProvider{
		SnapshotRepo: repo,
		ReminderRepo: repo,
	}
}

// listTransactions returns every stored transaction ordered by date and then by id. Dates are
// strings of mixed layouts in the collection, so the ordering happens after parsing.
func (r *SnapshotRepository) listTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var docs []transactionDocument
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}}).SetProjection(bson.M{"_id": 0})
	if err := r.provider.Collection(TransactionsCollection).FindAll(ctx, bson.M{}, &docs, opts); err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		txn, err := doc.toDomain(r.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidSnapshot, err)
		}
		out = append(out, txn)
	}
	slices.SortStableFunc(out, func(a, b domain.Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *SnapshotRepository) listBudgets(ctx context.Context) ([]domain.Budget, error) {
	var docs []budgetDocument
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "period", Value: 1}}).SetProjection(bson.M{"_id": 0})
	if err := r.provider.Collection(BudgetsCollection).FindAll(ctx, bson.M{}, &docs, opts); err != nil {
		return nil, err
	}

	out := make([]domain.Budget, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidSnapshot, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// LoadSnapshot reads both collections concurrently. Transactions come back ordered by date and
// then by id. The two reads are not isolated from
// each other; writes landing between them show up in one and not the other.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context) ([]domain.Transaction, []domain.Budget, error) {
	var (
		txns    []domain.Transaction
		budgets []domain.Budget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = r.listTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = r.listBudgets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return txns, budgets, nil
}

// MarkReminderSent flags the reminder of a transaction as delivered.
func (r *SnapshotRepository) MarkReminderSent(ctx context.Context, transactionID string, sentAt time.Time) error {
	update := bson.M{"$set": bson.M{"reminder_sent": true, "reminder_sent_at": sentAt}}
	result, err := r.provider.Collection(TransactionsCollection).UpdateOne(ctx, bson.M{"id": transactionID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent for transaction %s: %w", transactionID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
