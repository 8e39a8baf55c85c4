package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/SscSPs/meufluxo/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReminderServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockSnapshotRepository
	mockPublisher *MockReminderPublisher
	service       portssvc.ReminderSvc
	ctx           context.Context
}

func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockSnapshotRepository)
	suite.mockPublisher = new(MockReminderPublisher)
	suite.service = services.NewReminderService(services.NewSnapshotService(suite.mockRepo), suite.mockRepo, suite.mockPublisher, 24*time.Hour)
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}

func withReminders() []domain.Transaction {
	txns := fixtureTransactions()

	later := txn("t8", domain.Expense, 60, at(time.March, 20), domain.CategoryHealth, "Farmácia")
	later.HasReminder = true

	sent := txn("t9", domain.Expense, 45, at(time.March, 1), domain.CategoryEducation, "Curso")
	sent.HasReminder = true
	sent.ReminderSent = true

	overdue := txn("t10", domain.Income, 300, at(time.March, 5), domain.CategoryOther, "Reembolso")
	overdue.HasReminder = true

	return append(txns, later, sent, overdue)
}

func (suite *ReminderServiceTestSuite) TestDispatchDue_Success() {
	suite.mockRepo.On("LoadSnapshot", suite.ctx).Return(withReminders(), fixtureBudgets(), nil).Once()
	suite.mockPublisher.On("PublishReminder", suite.ctx, mock.MatchedBy(func(n portssvc.ReminderNotice) bool {
		return n.TransactionID == "t4" && n.Amount == "80.00" && n.Label == "Amanhã" && n.Message == "💳 Uber - R$ 80.00"
	})).Return(nil).Once()
	suite.mockPublisher.On("PublishReminder", suite.ctx, mock.MatchedBy(func(n portssvc.ReminderNotice) bool {
		return n.TransactionID == "t10" && n.Type == domain.Income
	})).Return(nil).Once()
	suite.mockRepo.On("MarkReminderSent", suite.ctx, "t4", refNow).Return(nil).Once()
	suite.mockRepo.On("MarkReminderSent", suite.ctx, "t10", refNow).Return(nil).Once()

	sent, err := suite.service.DispatchDue(suite.ctx, refNow)

	suite.Require().NoError(err)
	suite.Equal(2, sent)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestDispatchDue_NothingDue() {
	suite.mockRepo.On("LoadSnapshot", suite.ctx).Return(fixtureTransactions()[:3], nil, nil).Once()

	sent, err := suite.service.DispatchDue(suite.ctx, refNow)

	suite.Require().NoError(err)
	suite.Zero(sent)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishReminder", mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestDispatchDue_PublishFailureDoesNotStopOthers() {
	suite.mockRepo.On("LoadSnapshot", suite.ctx).Return(withReminders(), nil, nil).Once()
	suite.mockPublisher.On("PublishReminder", suite.ctx, mock.MatchedBy(func(n portssvc.ReminderNotice) bool {
		return n.TransactionID == "t4"
	})).Return(assert.AnError).Once()
	suite.mockPublisher.On("PublishReminder", suite.ctx, mock.MatchedBy(func(n portssvc.ReminderNotice) bool {
		return n.TransactionID == "t10"
	})).Return(nil).Once()
	suite.mockRepo.On("MarkReminderSent", suite.ctx, "t10", refNow).Return(nil).Once()

	sent, err := suite.service.DispatchDue(suite.ctx, refNow)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Contains(err.Error(), "t4")
	suite.Equal(1, sent)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkReminderSent", suite.ctx, "t4", refNow)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestDispatchDue_MarkFailure() {
	only := withReminders()[4:5]
	suite.mockRepo.On("LoadSnapshot", suite.ctx).Return(only, nil, nil).Once()
	suite.mockPublisher.On("PublishReminder", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("MarkReminderSent", suite.ctx, "t4", refNow).Return(apperrors.ErrNotFound).Once()

	sent, err := suite.service.DispatchDue(suite.ctx, refNow)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Zero(sent)
}

func (suite *ReminderServiceTestSuite) TestDispatchDue_InvalidSnapshot() {
	bad := withReminders()
	bad[1].Category = "Viagem"
	suite.mockRepo.On("LoadSnapshot", suite.ctx).Return(bad, nil, nil).Once()

	sent, err := suite.service.DispatchDue(suite.ctx, refNow)

	suite.ErrorIs(err, apperrors.ErrInvalidSnapshot)
	suite.Zero(sent)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishReminder", mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestDispatchDue_LoadError() {
	suite.mockRepo.On("LoadSnapshot", suite.ctx).Return(nil, nil, assert.AnError).Once()

	sent, err := suite.service.DispatchDue(suite.ctx, refNow)

	suite.ErrorIs(err, assert.AnError)
	suite.Zero(sent)
}

// dailyReminder is a daily template with a reminder, anchored ten days before refNow.
func dailyReminder(sent bool) domain.Transaction {
	t := txn("gym", domain.Expense, 90, refNow.AddDate(0, 0, -10), domain.CategoryHealth, "Academia")
	t.Recurrence = &domain.Recurrence{Frequency: domain.Daily}
	t.HasReminder = true
	t.ReminderSent = sent
	return t
}

func TestPendingReminders_MatchWhatTheWorkerDispatches(t *testing.T) {
	tests := []struct {
		name string
		txns []domain.Transaction
		want []string
	}{
		{name: "recurring template already sent", txns: []domain.Transaction{dailyReminder(true)}, want: []string{}},
		{name: "recurring template pending", txns: []domain.Transaction{dailyReminder(false)}, want: []string{"gym"}},
		{name: "plain reminders", txns: withReminders(), want: []string{"t4", "t10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockSnapshotRepository)
			repo.On("LoadSnapshot", mock.Anything).Return(tt.txns, nil, nil).Twice()
			publisher := new(MockReminderPublisher)
			var published []string
			publisher.On("PublishReminder", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				published = append(published, args.Get(1).(portssvc.ReminderNotice).TransactionID)
			}).Return(nil)
			repo.On("MarkReminderSent", mock.Anything, mock.Anything, refNow).Return(nil)

			snapshots := services.NewSnapshotService(repo)
			insights := services.NewInsightsService(snapshots,
				services.WithReminderLead(24*time.Hour),
				services.WithInsightsClock(func() time.Time { return refNow }))
			reminders := services.NewReminderService(snapshots, repo, publisher, 24*time.Hour)

			pending, err := insights.PendingReminders(ctx, portssvc.ViewParams{})
			require.NoError(t, err)
			sent, err := reminders.DispatchDue(ctx, refNow)
			require.NoError(t, err)

			assert.ElementsMatch(t, tt.want, ids(pending))
			assert.ElementsMatch(t, ids(pending), published)
			assert.Equal(t, len(pending), sent)
			repo.AssertNumberOfCalls(t, "MarkReminderSent", sent)
		})
	}
}

func TestNewReminderNotice(t *testing.T) {
	income := txn("t5", domain.Income, 700, at(time.March, 14), domain.CategoryOther, "Freela site")

	n := services.NewReminderNotice(income, refNow)

	assert.Equal(t, "t5", n.TransactionID)
	assert.Equal(t, "700.00", n.Amount)
	assert.Equal(t, "Em 2 dias", n.Label)
	assert.Equal(t, "💰 Freela site - R$ 700.00", n.Message)
	assert.Equal(t, domain.CategoryOther, n.Category)
}
