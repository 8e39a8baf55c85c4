package services

import (
	"context"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
)

// ViewParams are the caller-owned inputs shared by every derived view.
type ViewParams struct {
	Now         time.Time
	Filter      cashflow.Filter
	HorizonDays int      // Timeline look-ahead; 0 means the configured default
	WindowDays  int      // Alert look-ahead; 0 means the configured default
	Dismissed   []string // Alert ids the user has dismissed
}

// Dashboard bundles every view of one snapshot.
type Dashboard struct {
	Week           domain.PeriodStats
	Month          domain.PeriodStats
	Year           domain.PeriodStats
	Comparison     domain.Comparison
	MonthlyBudgets []domain.CategoryStat
	YearlyBudgets  []domain.CategoryStat
	Timeline       []domain.TimelineEntry
	Alerts         []domain.Alert
	Upcoming       domain.UpcomingSummary
	GeneratedAt    time.Time
}

// TransactionsReaderSvc exposes the filtered snapshot.
type TransactionsReaderSvc interface {
	// ListTransactions returns one page of the filtered snapshot ordered by date and id, plus
	// the token of the next page ("" on the last page).
	ListTransactions(ctx context.Context, params ViewParams, limit int, nextToken string) ([]domain.Transaction, string, error)
}

// StatsSvc covers period aggregation and comparison.
type StatsSvc interface {
	PeriodStats(ctx context.Context, period cashflow.Period, params ViewParams) (*domain.PeriodStats, error)
	Comparison(ctx context.Context, params ViewParams) (*domain.Comparison, error)
	CategoryStats(ctx context.Context, period domain.BudgetPeriod, params ViewParams) ([]domain.CategoryStat, error)
}

// ProjectionSvc covers the forward-looking views.
type ProjectionSvc interface {
	Timeline(ctx context.Context, params ViewParams) ([]domain.TimelineEntry, error)
	Alerts(ctx context.Context, params ViewParams) ([]domain.Alert, error)
	Upcoming(ctx context.Context, params ViewParams) (*domain.UpcomingSummary, error)
	// PendingReminders works on the stored records; occurrences of recurring templates carry
	// no reminder of their own.
	PendingReminders(ctx context.Context, params ViewParams) ([]domain.Transaction, error)
}

// InsightsSvcFacade combines every read-only view the API serves.
type InsightsSvcFacade interface {
	TransactionsReaderSvc
	StatsSvc
	ProjectionSvc
	Dashboard(ctx context.Context, params ViewParams) (*Dashboard, error)
}
