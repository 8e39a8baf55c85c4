package cashflow_test

import (
	"testing"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	budgets := []domain.Budget{
		{ID: "b1", Category: domain.CategoryHousing, Limit: decimal.NewFromInt(2000), Period: domain.BudgetMonthly},
		{ID: "b2", Category: domain.CategoryHousing, Limit: decimal.NewFromInt(24000), Period: domain.BudgetYearly},
	}
	snap, err := cashflow.NewSnapshot(sampleTransactions(), budgets)
	require.NoError(t, err)
	assert.Len(t, snap.Transactions, 7)
	assert.Len(t, cashflow.BudgetsFor(snap.Budgets, domain.BudgetMonthly), 1)
	assert.Len(t, cashflow.BudgetsFor(snap.Budgets, domain.BudgetYearly), 1)
}

func TestNewSnapshot_Empty(t *testing.T) {
	snap, err := cashflow.NewSnapshot(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, snap.Transactions)
	assert.NotNil(t, snap.Budgets)
}

func TestNewSnapshot_Rejects(t *testing.T) {
	negative := sampleTransactions()
	negative[2].Amount = decimal.NewFromInt(-5)

	duplicate := sampleTransactions()
	duplicate[3].ID = duplicate[0].ID

	badType := sampleTransactions()
	badType[0].Type = "income"

	tests := []struct {
		name    string
		txs     []domain.Transaction
		budgets []domain.Budget
	}{
		{name: "negative amount", txs: negative},
		{name: "duplicate id", txs: duplicate},
		{name: "unknown type", txs: badType},
		{name: "duplicate budget", budgets: []domain.Budget{
			{ID: "b1", Category: domain.CategoryFood, Limit: decimal.NewFromInt(1), Period: domain.BudgetMonthly},
			{ID: "b2", Category: domain.CategoryFood, Limit: decimal.NewFromInt(2), Period: domain.BudgetMonthly},
		}},
		{name: "non-positive budget", budgets: []domain.Budget{
			{ID: "b1", Category: domain.CategoryFood, Limit: decimal.Zero, Period: domain.BudgetMonthly},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := cashflow.NewSnapshot(tt.txs, tt.budgets)
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestSnapshot_Fingerprint(t *testing.T) {
	a, err := cashflow.NewSnapshot(sampleTransactions(), nil)
	require.NoError(t, err)
	b, err := cashflow.NewSnapshot(sampleTransactions(), nil)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	changed := sampleTransactions()
	changed[0].Amount = decimal.NewFromInt(5001)
	c, err := cashflow.NewSnapshot(changed, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
