package cashflow_test

import (
	"testing"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeUpcoming(t *testing.T) {
	s := cashflow.SummarizeUpcoming(sampleTransactions(), refNow)

	assert.Equal(t, []string{"t5"}, ids(s.Income))
	assert.Equal(t, []string{"t4", "t6"}, ids(s.Expense))
	assert.True(t, dec("700").Equal(s.TotalIncome))
	assert.True(t, dec("330").Equal(s.TotalExpense))
}

func TestSummarizeUpcoming_Empty(t *testing.T) {
	s := cashflow.SummarizeUpcoming(nil, refNow)
	assert.NotNil(t, s.Income)
	assert.NotNil(t, s.Expense)
	assert.True(t, s.TotalIncome.IsZero())
}

func TestPendingReminders(t *testing.T) {
	withReminder := func(tx domain.Transaction, sent bool) domain.Transaction {
		tx.HasReminder = true
		tx.ReminderSent = sent
		return tx
	}
	txs := []domain.Transaction{
		withReminder(txn("due", domain.Expense, 100, refNow.Add(12*time.Hour), domain.CategoryHousing, "Aluguel"), false),
		withReminder(txn("overdue", domain.Expense, 100, refNow.Add(-48*time.Hour), domain.CategoryHealth, "Plano"), false),
		withReminder(txn("sent", domain.Expense, 100, refNow.Add(time.Hour), domain.CategoryFood, "Feira"), true),
		withReminder(txn("far", domain.Expense, 100, refNow.Add(72*time.Hour), domain.CategoryFood, "Feira"), false),
		txn("plain", domain.Expense, 100, refNow.Add(time.Hour), domain.CategoryFood, "Feira"),
	}

	got := cashflow.PendingReminders(txs, refNow, cashflow.DefaultReminderLead)
	assert.Equal(t, []string{"due", "overdue"}, ids(got))
}
