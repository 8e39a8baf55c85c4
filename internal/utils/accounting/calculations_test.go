package accounting

import (
	"testing"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSumByType_NoFloatDrift(t *testing.T) {
	var txs []domain.Transaction
	for i := 0; i < 10; i++ {
		txs = append(txs, domain.Transaction{Type: domain.Income, Amount: decimal.RequireFromString("0.10")})
	}
	txs = append(txs, domain.Transaction{Type: domain.Expense, Amount: decimal.RequireFromString("0.30")})

	income, expense := SumByType(txs)
	assert.Equal(t, "1", income.String())
	assert.Equal(t, "0.3", expense.String())
}
