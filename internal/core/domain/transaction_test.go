package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	valid := domain.Transaction{
		ID:          "txn_123",
		Amount:      decimal.NewFromFloat(100.00),
		Date:        now,
		Type:        domain.Expense,
		Category:    domain.CategoryHousing,
		Description: "Aluguel",
	}

	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid expense",
			mutate:  func(tx *domain.Transaction) {},
			wantErr: false,
		},
		{
			name:    "zero amount is allowed",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.Zero },
			wantErr: false,
		},
		{
			name:    "missing id",
			mutate:  func(tx *domain.Transaction) { tx.ID = "  " },
			wantErr: true,
			errMsg:  "transaction id is required",
		},
		{
			name:    "negative amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-1) },
			wantErr: true,
			errMsg:  "negative amount",
		},
		{
			name:    "zero date",
			mutate:  func(tx *domain.Transaction) { tx.Date = time.Time{} },
			wantErr: true,
			errMsg:  "has no date",
		},
		{
			name:    "unknown type",
			mutate:  func(tx *domain.Transaction) { tx.Type = "income" },
			wantErr: true,
			errMsg:  "unknown type",
		},
		{
			name:    "unknown category",
			mutate:  func(tx *domain.Transaction) { tx.Category = "Viagem" },
			wantErr: true,
			errMsg:  "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTransactionDate(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain date uses location",
			value: "2025-03-10",
			want:  time.Date(2025, 3, 10, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:  "local datetime without offset",
			value: "2025-03-10T08:30:00",
			want:  time.Date(2025, 3, 10, 8, 30, 0, 0, saoPaulo),
		},
		{
			name:  "datetime with offset is converted",
			value: "2025-03-10T11:30:00Z",
			want:  time.Date(2025, 3, 10, 8, 30, 0, 0, saoPaulo),
		},
		{
			name:    "garbage",
			value:   "10/03/2025",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTransactionDate(tt.value, saoPaulo)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCategory_Color(t *testing.T) {
	assert.Equal(t, "#F59E0B", domain.CategoryHousing.Color())
	assert.Equal(t, domain.DefaultCategoryColor, domain.Category("Viagem").Color())
	for _, c := range domain.Categories() {
		assert.True(t, c.IsValid(), string(c))
	}
}

func TestBudget_Validate(t *testing.T) {
	b := domain.Budget{ID: "b1", Category: domain.CategoryHousing, Limit: decimal.NewFromInt(500), Period: domain.BudgetMonthly}
	assert.NoError(t, b.Validate())

	b.Limit = decimal.Zero
	assert.ErrorIs(t, b.Validate(), apperrors.ErrValidation)

	b.Limit = decimal.NewFromInt(10)
	b.Period = "week"
	assert.ErrorIs(t, b.Validate(), apperrors.ErrValidation)
}

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("10.50")
	assert.True(t, amount.Equal(domain.Transaction{Type: domain.Income, Amount: amount}.SignedAmount()))
	assert.True(t, amount.Neg().Equal(domain.Transaction{Type: domain.Expense, Amount: amount}.SignedAmount()))
	assert.True(t, domain.Transaction{Type: "transfer", Amount: amount}.SignedAmount().IsZero())
}
