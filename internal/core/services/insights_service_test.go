package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/SscSPs/meufluxo/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type InsightsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSnapshotRepository
	service  portssvc.InsightsSvcFacade
	ctx      context.Context
}

func (suite *InsightsServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockSnapshotRepository)
	snapshots := services.NewSnapshotService(suite.mockRepo)
	suite.service = services.NewInsightsService(snapshots,
		services.WithInsightsClock(func() time.Time { return refNow }))
}

func (suite *InsightsServiceTestSuite) expectFixture(times int) {
	suite.mockRepo.On("LoadSnapshot", mock.Anything).
		Return(fixtureTransactions(), fixtureBudgets(), nil).Times(times)
}

func TestInsightsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}

// --- Test Cases ---

func (suite *InsightsServiceTestSuite) TestPeriodStats_Month() {
	suite.expectFixture(1)

	stats, err := suite.service.PeriodStats(suite.ctx, cashflow.PeriodMonth, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(5700).Equal(stats.TotalIncome), stats.TotalIncome.String())
	suite.True(decimal.NewFromInt(2150).Equal(stats.TotalExpense), stats.TotalExpense.String())
	suite.True(decimal.NewFromInt(3550).Equal(stats.Balance), stats.Balance.String())
	suite.Equal([]string{"t1", "t2", "t3", "t4", "t5", "t6"}, ids(stats.Transactions))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InsightsServiceTestSuite) TestPeriodStats_WeekStartsMonday() {
	suite.expectFixture(1)

	stats, err := suite.service.PeriodStats(suite.ctx, cashflow.PeriodWeek, portssvc.ViewParams{Now: refNow})

	suite.Require().NoError(err)
	suite.Equal([]string{"t3", "t4", "t5"}, ids(stats.Transactions))
	suite.True(decimal.NewFromInt(300).Equal(stats.Balance), stats.Balance.String())
}

func (suite *InsightsServiceTestSuite) TestPeriodStats_FilterNarrowsSubset() {
	suite.expectFixture(1)

	params := portssvc.ViewParams{Filter: cashflow.Filter{Type: string(domain.Expense)}}
	stats, err := suite.service.PeriodStats(suite.ctx, cashflow.PeriodMonth, params)

	suite.Require().NoError(err)
	suite.True(stats.TotalIncome.IsZero())
	suite.True(decimal.NewFromInt(-2150).Equal(stats.Balance), stats.Balance.String())
}

func (suite *InsightsServiceTestSuite) TestComparison() {
	suite.expectFixture(1)

	c, err := suite.service.Comparison(suite.ctx, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.False(c.IncomeChange.Defined)
	suite.Equal(domain.Favorable, c.IncomeTrend)
	suite.True(c.ExpenseChange.Defined)
	suite.Equal(domain.Unfavorable, c.ExpenseTrend)
	suite.True(decimal.NewFromInt(4450).Equal(c.BalanceChange), c.BalanceChange.String())
	suite.Equal(domain.Favorable, c.BalanceTrend)
}

func (suite *InsightsServiceTestSuite) TestCategoryStats_MonthlyBudgets() {
	suite.expectFixture(1)

	stats, err := suite.service.CategoryStats(suite.ctx, domain.BudgetMonthly, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.Require().Len(stats, 4)
	suite.Equal(domain.CategoryHousing, stats[0].Category)
	suite.True(stats[0].Exceeded)
	suite.Require().NotNil(stats[0].Remaining)
	suite.True(decimal.NewFromInt(-100).Equal(*stats[0].Remaining))
	suite.Equal(domain.CategoryFood, stats[1].Category)
	suite.False(stats[1].Exceeded)
	suite.False(stats[1].NearLimit)
	suite.Nil(stats[2].BudgetLimit, "leisure has only a yearly budget")
}

func (suite *InsightsServiceTestSuite) TestCategoryStats_UnknownPeriod() {
	stats, err := suite.service.CategoryStats(suite.ctx, domain.BudgetPeriod("week"), portssvc.ViewParams{})

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "LoadSnapshot", mock.Anything)
}

func (suite *InsightsServiceTestSuite) TestTimeline() {
	suite.expectFixture(1)

	entries, err := suite.service.Timeline(suite.ctx, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal("t4", entries[0].Transaction.ID)
	suite.True(entries[0].IsNegative)
	suite.True(decimal.NewFromInt(620).Equal(entries[1].RunningBalance))
	suite.True(decimal.NewFromInt(370).Equal(entries[2].RunningBalance))
	suite.Equal(5, entries[2].DaysUntil)
}

func (suite *InsightsServiceTestSuite) TestTimeline_ShortHorizon() {
	suite.expectFixture(1)

	entries, err := suite.service.Timeline(suite.ctx, portssvc.ViewParams{HorizonDays: 2})

	suite.Require().NoError(err)
	suite.Len(entries, 2)
}

func (suite *InsightsServiceTestSuite) TestAlerts_SkipsDismissed() {
	suite.expectFixture(2)

	all, err := suite.service.Alerts(suite.ctx, portssvc.ViewParams{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Amanhã", all[0].Label)
	suite.Equal("Em 2 dias", all[1].Label)

	visible, err := suite.service.Alerts(suite.ctx, portssvc.ViewParams{Dismissed: []string{"t4"}})
	suite.Require().NoError(err)
	suite.Require().Len(visible, 1)
	suite.Equal("t5", visible[0].ID)
}

func (suite *InsightsServiceTestSuite) TestUpcoming() {
	suite.expectFixture(1)

	summary, err := suite.service.Upcoming(suite.ctx, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.Equal([]string{"t5"}, ids(summary.Income))
	suite.Equal([]string{"t4", "t6"}, ids(summary.Expense))
	suite.True(decimal.NewFromInt(330).Equal(summary.TotalExpense))
}

func (suite *InsightsServiceTestSuite) TestPendingReminders() {
	suite.expectFixture(1)

	pending, err := suite.service.PendingReminders(suite.ctx, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.Equal([]string{"t4"}, ids(pending))
}

func (suite *InsightsServiceTestSuite) TestListTransactions_Pages() {
	suite.expectFixture(4)
	params := portssvc.ViewParams{}

	page, token, err := suite.service.ListTransactions(suite.ctx, params, 3, "")
	suite.Require().NoError(err)
	suite.Equal([]string{"t7", "t1", "t2"}, ids(page))
	suite.Require().NotEmpty(token)

	page, token, err = suite.service.ListTransactions(suite.ctx, params, 3, token)
	suite.Require().NoError(err)
	suite.Equal([]string{"t3", "t4", "t5"}, ids(page))
	suite.Require().NotEmpty(token)

	page, token, err = suite.service.ListTransactions(suite.ctx, params, 3, token)
	suite.Require().NoError(err)
	suite.Equal([]string{"t6"}, ids(page))
	suite.Empty(token)

	page, _, err = suite.service.ListTransactions(suite.ctx, portssvc.ViewParams{
		Filter: cashflow.Filter{SearchText: "ALUG"},
	}, 0, "")
	suite.Require().NoError(err)
	suite.Equal([]string{"t2"}, ids(page))
}

func (suite *InsightsServiceTestSuite) TestListTransactions_BadToken() {
	page, token, err := suite.service.ListTransactions(suite.ctx, portssvc.ViewParams{}, 10, "%%%")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(page)
	suite.Empty(token)
}

func (suite *InsightsServiceTestSuite) TestListTransactions_ExpandsRecurringTemplates() {
	rent := txn("rent", domain.Expense, 1200, time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), domain.CategoryHousing, "Aluguel")
	rent.Recurrence = &domain.Recurrence{Frequency: domain.Monthly}
	suite.mockRepo.On("LoadSnapshot", mock.Anything).Return([]domain.Transaction{rent}, nil, nil).Once()

	page, _, err := suite.service.ListTransactions(suite.ctx, portssvc.ViewParams{}, 0, "")

	suite.Require().NoError(err)
	// Occurrences run up to the end of the current year, the furthest any view reaches.
	suite.Require().Len(page, 12)
	suite.Equal([]string{"rent-20250105", "rent-20250205", "rent-20250305", "rent-20250405"}, ids(page[:4]))
	suite.Equal("rent-20251205", page[11].ID)
}

func (suite *InsightsServiceTestSuite) TestTimeline_RequestHorizonBeyondDefault() {
	rent := txn("rent", domain.Expense, 1200, time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), domain.CategoryHousing, "Aluguel")
	rent.Recurrence = &domain.Recurrence{Frequency: domain.Monthly}
	suite.mockRepo.On("LoadSnapshot", mock.Anything).Return([]domain.Transaction{rent}, nil, nil).Twice()

	entries, err := suite.service.Timeline(suite.ctx, portssvc.ViewParams{HorizonDays: 90})
	suite.Require().NoError(err)
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Transaction.ID)
	}
	suite.Equal([]string{"rent-20250405", "rent-20250505", "rent-20250605"}, got)
	suite.True(decimal.NewFromInt(-3600).Equal(entries[2].RunningBalance), entries[2].RunningBalance.String())

	// A year past the last day of the default horizon is still covered.
	entries, err = suite.service.Timeline(suite.ctx, portssvc.ViewParams{HorizonDays: 366})
	suite.Require().NoError(err)
	suite.Len(entries, 12)
	suite.Equal("rent-20260305", entries[11].Transaction.ID)
}

func (suite *InsightsServiceTestSuite) TestCategoryStats_YearCoversRecurringUntilYearEnd() {
	rent := txn("rent", domain.Expense, 1200, time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC), domain.CategoryHousing, "Aluguel")
	rent.Recurrence = &domain.Recurrence{Frequency: domain.Monthly}
	suite.mockRepo.On("LoadSnapshot", mock.Anything).Return([]domain.Transaction{rent}, nil, nil).Once()

	stats, err := suite.service.CategoryStats(suite.ctx, domain.BudgetYearly, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.Require().Len(stats, 1)
	suite.True(decimal.NewFromInt(14400).Equal(stats[0].Total), stats[0].Total.String())
}

func (suite *InsightsServiceTestSuite) TestInvalidFilter() {
	stats, err := suite.service.PeriodStats(suite.ctx, cashflow.PeriodMonth, portssvc.ViewParams{
		Filter: cashflow.Filter{Type: "bogus"},
	})

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "LoadSnapshot", mock.Anything)
}

func (suite *InsightsServiceTestSuite) TestNegativeHorizon() {
	_, err := suite.service.Timeline(suite.ctx, portssvc.ViewParams{HorizonDays: -1})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InsightsServiceTestSuite) TestRepoError() {
	suite.mockRepo.On("LoadSnapshot", mock.Anything).Return(nil, nil, assert.AnError).Once()

	entries, err := suite.service.Timeline(suite.ctx, portssvc.ViewParams{})

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *InsightsServiceTestSuite) TestInvalidSnapshot() {
	bad := fixtureTransactions()
	bad[2].Amount = decimal.NewFromInt(-1)
	suite.mockRepo.On("LoadSnapshot", mock.Anything).Return(bad, nil, nil).Once()

	_, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidSnapshot)
}

func (suite *InsightsServiceTestSuite) TestDashboard() {
	suite.expectFixture(1)

	d, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{})

	suite.Require().NoError(err)
	suite.Equal(refNow, d.GeneratedAt)
	suite.Len(d.Week.Transactions, 3)
	suite.Len(d.Month.Transactions, 6)
	suite.Len(d.Year.Transactions, 7)
	suite.Len(d.MonthlyBudgets, 4)
	suite.Require().Len(d.YearlyBudgets, 5)
	suite.Len(d.Timeline, 3)
	suite.Len(d.Alerts, 2)
	suite.Len(d.Upcoming.Expense, 2)
	suite.False(d.Comparison.IncomeChange.Defined)
}

func (suite *InsightsServiceTestSuite) TestDashboard_CachedWithinMinute() {
	suite.expectFixture(3)

	first, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{Now: refNow})
	suite.Require().NoError(err)

	second, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{Now: refNow.Add(20 * time.Second)})
	suite.Require().NoError(err)
	suite.NotSame(first, second)
	suite.Equal(first.GeneratedAt, second.GeneratedAt)
	suite.Len(second.Alerts, len(first.Alerts))

	other, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{Now: refNow, Dismissed: []string{"t4"}})
	suite.Require().NoError(err)
	suite.NotSame(first, other)
	suite.Len(other.Alerts, 1)
}

func (suite *InsightsServiceTestSuite) TestDashboard_CachedCopyIsIsolated() {
	suite.expectFixture(3)

	first, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{Now: refNow})
	suite.Require().NoError(err)
	suite.Require().NotEmpty(first.Alerts)
	wantMessage := first.Alerts[0].Message
	first.Alerts[0].Message = "changed"
	first.Timeline = nil

	second, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{Now: refNow})
	suite.Require().NoError(err)
	suite.Equal(wantMessage, second.Alerts[0].Message)
	suite.Len(second.Timeline, 3)

	second.Alerts[0].Message = "changed again"
	third, err := suite.service.Dashboard(suite.ctx, portssvc.ViewParams{Now: refNow})
	suite.Require().NoError(err)
	suite.Equal(wantMessage, third.Alerts[0].Message)
}

func TestInsightsService_CacheDisabled(t *testing.T) {
	repo := new(MockSnapshotRepository)
	repo.On("LoadSnapshot", mock.Anything).Return(fixtureTransactions(), fixtureBudgets(), nil).Twice()
	svc := services.NewInsightsService(services.NewSnapshotService(repo), services.WithDashboardCache(0, 0))

	first, err := svc.Dashboard(context.Background(), portssvc.ViewParams{Now: refNow})
	assert.NoError(t, err)
	second, err := svc.Dashboard(context.Background(), portssvc.ViewParams{Now: refNow})
	assert.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Len(t, second.Timeline, len(first.Timeline))
	repo.AssertExpectations(t)
}
