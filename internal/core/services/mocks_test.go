package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SnapshotRepository ---
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) LoadSnapshot(ctx context.Context) ([]domain.Transaction, []domain.Budget, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var budgets []domain.Budget
	if args.Get(1) != nil {
		budgets = args.Get(1).([]domain.Budget)
	}
	return txns, budgets, args.Error(2)
}

func (m *MockSnapshotRepository) MarkReminderSent(ctx context.Context, transactionID string, sentAt time.Time) error {
	args := m.Called(ctx, transactionID, sentAt)
	return args.Error(0)
}

// --- Mock ReminderPublisher ---
type MockReminderPublisher struct {
	mock.Mock
}

func (m *MockReminderPublisher) PublishReminder(ctx context.Context, notice portssvc.ReminderNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

// refNow is Wednesday 2025-03-12 09:00 UTC.
var refNow = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

func at(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 9, 0, 0, 0, time.UTC)
}

func txn(id string, typ domain.TransactionType, amount int64, date time.Time, cat domain.Category, desc string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Type:        typ,
		Category:    cat,
		Description: desc,
		CreatedAt:   date.AddDate(0, 0, -1),
	}
}

func fixtureTransactions() []domain.Transaction {
	reminder := txn("t4", domain.Expense, 80, at(time.March, 13), domain.CategoryTransport, "Uber")
	reminder.HasReminder = true
	return []domain.Transaction{
		txn("t7", domain.Expense, 900, at(time.February, 12), domain.CategoryCreditCard, "Fatura"),
		txn("t1", domain.Income, 5000, at(time.March, 2), domain.CategorySalary, "Salário"),
		txn("t2", domain.Expense, 1500, at(time.March, 3), domain.CategoryHousing, "Aluguel"),
		txn("t3", domain.Expense, 320, at(time.March, 10), domain.CategoryFood, "Mercado"),
		reminder,
		txn("t5", domain.Income, 700, at(time.March, 14), domain.CategoryOther, "Freela site"),
		txn("t6", domain.Expense, 250, at(time.March, 17), domain.CategoryLeisure, "Cinema"),
	}
}

func fixtureBudgets() []domain.Budget {
	return []domain.Budget{
		{ID: "b1", Category: domain.CategoryHousing, Limit: decimal.NewFromInt(1400), Period: domain.BudgetMonthly},
		{ID: "b2", Category: domain.CategoryFood, Limit: decimal.NewFromInt(1000), Period: domain.BudgetMonthly},
		{ID: "b3", Category: domain.CategoryLeisure, Limit: decimal.NewFromInt(5000), Period: domain.BudgetYearly},
	}
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.ID)
	}
	return out
}
