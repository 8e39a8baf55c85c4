package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/SscSPs/meufluxo/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainTransaction_Template(t *testing.T) {
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	freq := "weekly"
	m := models.Transaction{
		ID:                  "gym",
		Amount:              decimal.RequireFromString("89.90"),
		Date:                time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC),
		Type:                models.Expense,
		Category:            "Saúde",
		Description:         "Academia",
		RecurrenceFrequency: &freq,
		RecurrenceWeekdays:  []int32{1, 4},
		RecurrenceEndDate:   &end,
	}

	d := ToDomainTransaction(m)

	assert.Equal(t, domain.Expense, d.Type)
	assert.Equal(t, domain.CategoryHealth, d.Category)
	require.NotNil(t, d.Recurrence)
	assert.Equal(t, domain.Weekly, d.Recurrence.Frequency)
	assert.Equal(t, []time.Weekday{time.Monday, time.Thursday}, d.Recurrence.Weekdays)
	assert.Zero(t, d.Recurrence.DayOfMonth)
	assert.Equal(t, &end, d.Recurrence.EndDate)
}

func TestToDomainTransaction_Plain(t *testing.T) {
	dom := int32(5)
	m := models.Transaction{ID: "x", Amount: decimal.NewFromInt(1), Type: models.Income, Category: "Salário", RecurrenceDayOfMonth: &dom}
	assert.Nil(t, ToDomainTransaction(m).Recurrence, "a day of month without a frequency is not a rule")
}

func TestToDomainBudgets(t *testing.T) {
	got := ToDomainBudgets([]models.Budget{{ID: "b1", Category: "Moradia", Limit: decimal.NewFromInt(1400), Period: "month"}})
	require.Len(t, got, 1)
	assert.Equal(t, domain.CategoryHousing, got[0].Category)
	assert.Equal(t, domain.BudgetMonthly, got[0].Period)
}
