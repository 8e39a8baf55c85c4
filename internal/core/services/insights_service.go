package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/SscSPs/meufluxo/internal/utils/pagination"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
)

const (
	defaultDashboardCacheSize = 256
	defaultDashboardCacheTTL  = time.Minute
	// maxLookAheadDays caps horizon and alert windows coming from requests.
	maxLookAheadDays = 366
)

type insightsService struct {
	BaseService
	snapshots    portssvc.SnapshotSvc
	horizonDays  int
	windowDays   int
	reminderLead time.Duration
	cacheSize    int
	cacheTTL     time.Duration
	dashboards   *expirable.LRU[string, *portssvc.Dashboard]
}

// InsightsServiceOption is a functional option for configuring the insights service
type InsightsServiceOption func(*insightsService)

// WithDefaultHorizonDays sets the timeline look-ahead used when a request does not set one.
func WithDefaultHorizonDays(days int) InsightsServiceOption {
	return func(s *insightsService) {
		if days > 0 {
			s.horizonDays = days
		}
	}
}

// WithDefaultAlertWindowDays sets the alert look-ahead used when a request does not set one.
func WithDefaultAlertWindowDays(days int) InsightsServiceOption {
	return func(s *insightsService) {
		if days > 0 {
			s.windowDays = days
		}
	}
}

// WithReminderLead sets how long before its date a reminder becomes pending.
func WithReminderLead(lead time.Duration) InsightsServiceOption {
	return func(s *insightsService) {
		if lead >= 0 {
			s.reminderLead = lead
		}
	}
}

// WithDashboardCache sizes the dashboard memo. A size of zero or less disables it.
func WithDashboardCache(size int, ttl time.Duration) InsightsServiceOption {
	return func(s *insightsService) {
		s.cacheSize = size
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithInsightsClock overrides the clock used when a request carries no "now".
func WithInsightsClock(clock func() time.Time) InsightsServiceOption {
	return func(s *insightsService) {
		s.Clock = clock
	}
}

// NewInsightsService creates the service computing every derived view.
func NewInsightsService(snapshots portssvc.SnapshotSvc, options ...InsightsServiceOption) portssvc.InsightsSvcFacade {
	svc := &insightsService{
		snapshots:    snapshots,
		horizonDays:  cashflow.DefaultHorizonDays,
		windowDays:   cashflow.DefaultAlertWindowDays,
		reminderLead: cashflow.DefaultReminderLead,
		cacheSize:    defaultDashboardCacheSize,
		cacheTTL:     defaultDashboardCacheTTL,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.cacheSize > 0 {
		svc.dashboards = expirable.NewLRU[string, *portssvc.Dashboard](svc.cacheSize, nil, svc.cacheTTL)
	}
	return svc
}

var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

// view is a validated request bound to a loaded snapshot.
type view struct {
	snapshot *cashflow.Snapshot
	filtered []domain.Transaction
	params   portssvc.ViewParams
}

func (s *insightsService) resolve(params portssvc.ViewParams) (portssvc.ViewParams, error) {
	if err := params.Filter.Validate(); err != nil {
		return params, err
	}
	if params.HorizonDays < 0 || params.HorizonDays > maxLookAheadDays {
		return params, fmt.Errorf("%w: horizon must be between 0 and %d days, got %d", apperrors.ErrValidation, maxLookAheadDays, params.HorizonDays)
	}
	if params.WindowDays < 0 || params.WindowDays > maxLookAheadDays {
		return params, fmt.Errorf("%w: alert window must be between 0 and %d days, got %d", apperrors.ErrValidation, maxLookAheadDays, params.WindowDays)
	}
	if params.Now.IsZero() {
		params.Now = s.Now()
	}
	if params.HorizonDays == 0 {
		params.HorizonDays = s.horizonDays
	}
	if params.WindowDays == 0 {
		params.WindowDays = s.windowDays
	}
	return params, nil
}

func (s *insightsService) prepare(ctx context.Context, params portssvc.ViewParams) (*view, error) {
	params, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.snapshots.Load(ctx, params.Now, lookAheadUntil(params))
	if err != nil {
		return nil, err
	}
	return &view{
		snapshot: snapshot,
		filtered: cashflow.ApplyFilter(snapshot.Transactions, params.Filter),
		params:   params,
	}, nil
}

// lookAheadUntil is the furthest date any view of params can reach: the end of the timeline
// and alert windows, and the end of the current week and year.
func lookAheadUntil(params portssvc.ViewParams) time.Time {
	until := params.Now.AddDate(0, 0, max(params.HorizonDays, params.WindowDays))
	for _, end := range []time.Time{cashflow.WeekWindow(params.Now).End, cashflow.YearWindow(params.Now).End} {
		if end.After(until) {
			until = end
		}
	}
	return until
}

// ListTransactions returns one page of the filtered snapshot.
func (s *insightsService) ListTransactions(ctx context.Context, params portssvc.ViewParams, limit int, nextToken string) ([]domain.Transaction, string, error) {
	var after *pagination.Cursor
	if nextToken != "" {
		cursor, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		after = &cursor
	}

	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, "", err
	}

	ordered := slices.Clone(v.filtered)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	page, next := pagination.Paginate(ordered, limit, after, func(t domain.Transaction) pagination.Cursor {
		return pagination.Cursor{Date: t.Date, ID: t.ID}
	})
	token := ""
	if next != nil {
		token = pagination.EncodeToken(*next)
	}
	return page, token, nil
}

// PeriodStats aggregates the filtered transactions dated in the week, month or year of now.
func (s *insightsService) PeriodStats(ctx context.Context, period cashflow.Period, params portssvc.ViewParams) (*domain.PeriodStats, error) {
	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, err
	}
	stats := periodStats(v, period)
	s.LogDebug(ctx, "Period stats computed", slog.String("period", string(period)), slog.Int("transactions", len(stats.Transactions)))
	return &stats, nil
}

// Comparison measures the current month against the previous one.
func (s *insightsService) Comparison(ctx context.Context, params portssvc.ViewParams) (*domain.Comparison, error) {
	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, err
	}
	c := comparison(v)
	return &c, nil
}

// CategoryStats measures the expenses of the current month or year against their budgets.
func (s *insightsService) CategoryStats(ctx context.Context, period domain.BudgetPeriod, params portssvc.ViewParams) ([]domain.CategoryStat, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: unknown budget period %q", apperrors.ErrValidation, period)
	}
	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, err
	}
	return categoryStats(v, period), nil
}

// Timeline projects the running balance over the horizon.
func (s *insightsService) Timeline(ctx context.Context, params portssvc.ViewParams) ([]domain.TimelineEntry, error) {
	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, err
	}
	entries := cashflow.ProjectTimeline(v.filtered, v.params.Now, v.params.HorizonDays)
	if i := cashflow.FirstNegative(entries); i >= 0 {
		s.LogInfo(ctx, "Projected balance turns negative",
			slog.String("transaction_id", entries[i].Transaction.ID),
			slog.Int("days_until", entries[i].DaysUntil))
	}
	return entries, nil
}

// Alerts lists the upcoming transactions the user has not dismissed.
func (s *insightsService) Alerts(ctx context.Context, params portssvc.ViewParams) ([]domain.Alert, error) {
	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, err
	}
	return alerts(v), nil
}

// Upcoming splits everything dated after now into income and expense.
func (s *insightsService) Upcoming(ctx context.Context, params portssvc.ViewParams) (*domain.UpcomingSummary, error) {
	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, err
	}
	summary := cashflow.SummarizeUpcoming(v.filtered, v.params.Now)
	return &summary, nil
}

// PendingReminders lists the stored transactions whose reminder is due and not yet sent.
// Recurring templates are not expanded, so the list matches what the reminder worker dispatches.
func (s *insightsService) PendingReminders(ctx context.Context, params portssvc.ViewParams) ([]domain.Transaction, error) {
	params, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.snapshots.LoadStored(ctx)
	if err != nil {
		return nil, err
	}
	return cashflow.PendingReminders(cashflow.ApplyFilter(snapshot.Transactions, params.Filter), params.Now, s.reminderLead), nil
}

// Dashboard computes every view of one snapshot concurrently. now is rounded down to the
// minute and results are memoised per snapshot content, minute and request parameters.
// Callers always receive their own copy.
func (s *insightsService) Dashboard(ctx context.Context, params portssvc.ViewParams) (*portssvc.Dashboard, error) {
	if params.Now.IsZero() {
		params.Now = s.Now()
	}
	params.Now = params.Now.Truncate(time.Minute)

	v, err := s.prepare(ctx, params)
	if err != nil {
		return nil, err
	}

	key := dashboardKey(v)
	if s.dashboards != nil {
		if cached, ok := s.dashboards.Get(key); ok {
			s.LogDebug(ctx, "Dashboard served from cache")
			return cloneDashboard(cached), nil
		}
	}

	d := &portssvc.Dashboard{GeneratedAt: v.params.Now}
	var g errgroup.Group
	g.Go(func() error {
		d.Week = periodStats(v, cashflow.PeriodWeek)
		d.Month = periodStats(v, cashflow.PeriodMonth)
		d.Year = periodStats(v, cashflow.PeriodYear)
		return nil
	})
	g.Go(func() error {
		d.Comparison = comparison(v)
		return nil
	})
	g.Go(func() error {
		d.MonthlyBudgets = categoryStats(v, domain.BudgetMonthly)
		d.YearlyBudgets = categoryStats(v, domain.BudgetYearly)
		return nil
	})
	g.Go(func() error {
		d.Timeline = cashflow.ProjectTimeline(v.filtered, v.params.Now, v.params.HorizonDays)
		return nil
	})
	g.Go(func() error {
		d.Alerts = alerts(v)
		d.Upcoming = cashflow.SummarizeUpcoming(v.filtered, v.params.Now)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute dashboard")
		return nil, err
	}

	if s.dashboards != nil {
		s.dashboards.Add(key, cloneDashboard(d))
	}
	s.LogInfo(ctx, "Dashboard computed",
		slog.Int("transactions", len(v.filtered)),
		slog.Int("timeline_entries", len(d.Timeline)),
		slog.Int("alerts", len(d.Alerts)))
	return d, nil
}

// cloneDashboard copies d down to its slices so the cached value cannot be changed by callers.
func cloneDashboard(d *portssvc.Dashboard) *portssvc.Dashboard {
	c := *d
	c.Week.Transactions = slices.Clone(d.Week.Transactions)
	c.Month.Transactions = slices.Clone(d.Month.Transactions)
	c.Year.Transactions = slices.Clone(d.Year.Transactions)
	c.Comparison.CurrentPeriod.Transactions = slices.Clone(d.Comparison.CurrentPeriod.Transactions)
	c.Comparison.PreviousPeriod.Transactions = slices.Clone(d.Comparison.PreviousPeriod.Transactions)
	c.MonthlyBudgets = slices.Clone(d.MonthlyBudgets)
	c.YearlyBudgets = slices.Clone(d.YearlyBudgets)
	c.Timeline = slices.Clone(d.Timeline)
	c.Alerts = slices.Clone(d.Alerts)
	c.Upcoming.Income = slices.Clone(d.Upcoming.Income)
	c.Upcoming.Expense = slices.Clone(d.Upcoming.Expense)
	return &c
}

func periodStats(v *view, period cashflow.Period) domain.PeriodStats {
	return cashflow.Aggregate(cashflow.InWindow(v.filtered, cashflow.WindowFor(period, v.params.Now)))
}

func comparison(v *view) domain.Comparison {
	current := cashflow.Aggregate(cashflow.InWindow(v.filtered, cashflow.MonthWindow(v.params.Now)))
	previous := cashflow.Aggregate(cashflow.InWindow(v.filtered, cashflow.PreviousMonthWindow(v.params.Now)))
	return cashflow.Compare(current, previous)
}

func categoryStats(v *view, period domain.BudgetPeriod) []domain.CategoryStat {
	window := cashflow.MonthWindow(v.params.Now)
	if period == domain.BudgetYearly {
		window = cashflow.YearWindow(v.params.Now)
	}
	return cashflow.CategoryStats(cashflow.InWindow(v.filtered, window), cashflow.BudgetsFor(v.snapshot.Budgets, period))
}

func alerts(v *view) []domain.Alert {
	scheduled := cashflow.ScheduleAlerts(v.filtered, v.params.Now, v.params.WindowDays)
	return cashflow.VisibleAlerts(scheduled, cashflow.NewDismissalSet(v.params.Dismissed...))
}

func dashboardKey(v *view) string {
	f := v.params.Filter
	var from, to string
	if f.DateFrom != nil {
		from = f.DateFrom.Format(time.RFC3339)
	}
	if f.DateTo != nil {
		to = f.DateTo.Format(time.RFC3339)
	}
	dismissed := cashflow.NewDismissalSet(v.params.Dismissed...).IDs()
	return fmt.Sprintf("%016x|%d|%s|%s|%s|%s|%s|%s|%d|%d|%s",
		v.snapshot.Fingerprint(),
		v.params.Now.Unix(), v.params.Now.Location(),
		strings.ToLower(f.SearchText), f.Type, f.Category, from, to,
		v.params.HorizonDays, v.params.WindowDays,
		strings.Join(dismissed, ","))
}
