package domain

import (
	"fmt"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence basis of a budget limit.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "month"
	BudgetYearly  BudgetPeriod = "year"
)

// IsValid reports whether p is a known budget period.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetMonthly || p == BudgetYearly
}

// Budget is a spending limit for one category over one period type.
type Budget struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Period   BudgetPeriod    `json:"period"`
}

// Validate checks the budget invariants.
func (b Budget) Validate() error {
	if !b.Category.IsValid() {
		return fmt.Errorf("%w: budget %s has unknown category %q", apperrors.ErrValidation, b.ID, b.Category)
	}
	if !b.Limit.IsPositive() {
		return fmt.Errorf("%w: budget %s limit must be positive, got %s", apperrors.ErrValidation, b.ID, b.Limit.String())
	}
	if !b.Period.IsValid() {
		return fmt.Errorf("%w: budget %s has unknown period %q", apperrors.ErrValidation, b.ID, b.Period)
	}
	return nil
}
