package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType tells whether money enters or leaves the user's pocket.
// The literal values are the tags used by the data store.
type TransactionType string

const (
	Income  TransactionType = "entrada"
	Expense TransactionType = "saida"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is a single dated money movement as delivered by the data store.
// Instances are treated as immutable snapshot items.
type Transaction struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"` // Non-negative; sign comes from Type
	Date         time.Time       `json:"date"`
	Type         TransactionType `json:"type"`
	Category     Category        `json:"category"`
	Description  string          `json:"description"`
	HasReminder  bool            `json:"has_reminder"`
	ReminderSent bool            `json:"reminder_sent"`
	CreatedAt    time.Time       `json:"created_at"`
	Recurrence   *Recurrence     `json:"recurrence,omitempty"` // Only meaningful for templates, see package recurrence
}

// IsIncome reports whether the transaction adds money.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}

// IsExpense reports whether the transaction removes money.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}

// SignedAmount is the cash-flow effect of the transaction: positive for income, negative for
// expense and zero for an unknown type.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Type {
	case Income:
		return t.Amount
	case Expense:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// Validate checks the invariants every snapshot item must satisfy.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction %s has negative amount %s", apperrors.ErrValidation, t.ID, t.Amount.String())
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction %s has no date", apperrors.ErrValidation, t.ID)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: transaction %s has unknown type %q", apperrors.ErrValidation, t.ID, t.Type)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: transaction %s has unknown category %q", apperrors.ErrValidation, t.ID, t.Category)
	}
	return nil
}

// dateLayouts are the date encodings the store is known to produce, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTransactionDate parses an ISO-8601 date as stored upstream. Values without an offset
// are interpreted in loc.
func ParseTransactionDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if layout == time.RFC3339Nano {
			if t, err := time.Parse(layout, value); err == nil {
				return t.In(loc), nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %q", apperrors.ErrValidation, value)
}
