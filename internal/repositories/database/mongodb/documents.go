package mongodb

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// transactionDocument is the shape the transactions collection has always used: float
// amounts and ISO-8601 date strings. created_at was written both as a BSON date and as a
// string over time.
type transactionDocument struct {
	ID           string              `bson:"id"`
	Amount       float64             `bson:"amount"`
	Date         string              `bson:"date"`
	Type         string              `bson:"type"`
	Category     string              `bson:"category"`
	Description  string              `bson:"description"`
	HasReminder  bool                `bson:"has_reminder"`
	ReminderSent bool                `bson:"reminder_sent"`
	CreatedAt    any                 `bson:"created_at"`
	Recurrence   *recurrenceDocument `bson:"recurrence,omitempty"`
}

type recurrenceDocument struct {
	Frequency  string     `bson:"frequency"`
	Weekdays   []int      `bson:"weekdays,omitempty"`
	DayOfMonth int        `bson:"day_of_month,omitempty"`
	EndDate    *time.Time `bson:"end_date,omitempty"`
}

type budgetDocument struct {
	ID       string  `bson:"id"`
	Category string  `bson:"category"`
	Limit    float64 `bson:"limit"`
	Period   string  `bson:"period"`
}

func (d transactionDocument) toDomain(loc *time.Location) (domain.Transaction, error) {
	amount, err := finiteDecimal(d.Amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", d.ID, err)
	}
	date, err := domain.ParseTransactionDate(d.Date, loc)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", d.ID, err)
	}
	createdAt, err := decodeCreatedAt(d.CreatedAt, loc)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", d.ID, err)
	}

	txn := domain.Transaction{
		ID:           d.ID,
		Amount:       amount,
		Date:         date,
		Type:         domain.TransactionType(d.Type),
		Category:     domain.Category(d.Category),
		Description:  d.Description,
		HasReminder:  d.HasReminder,
		ReminderSent: d.ReminderSent,
		CreatedAt:    createdAt,
	}
	if d.Recurrence != nil {
		rule := &domain.Recurrence{
			Frequency:  domain.Frequency(d.Recurrence.Frequency),
			DayOfMonth: d.Recurrence.DayOfMonth,
			EndDate:    d.Recurrence.EndDate,
		}
		for _, wd := range d.Recurrence.Weekdays {
			rule.Weekdays = append(rule.Weekdays, time.Weekday(wd))
		}
		txn.Recurrence = rule
	}
	return txn, nil
}

func (d budgetDocument) toDomain() (domain.Budget, error) {
	limit, err := finiteDecimal(d.Limit)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("budget %s: %w", d.ID, err)
	}
	return domain.Budget{
		ID:       d.ID,
		Category: domain.Category(d.Category),
		Limit:    limit,
		Period:   domain.BudgetPeriod(d.Period),
	}, nil
}

func finiteDecimal(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: non-finite amount %v", apperrors.ErrValidation, f)
	}
	return decimal.NewFromFloat(f), nil
}

func decodeCreatedAt(v any, loc *time.Location) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, nil
	case primitive.DateTime:
		return t.Time().In(loc), nil
	case time.Time:
		return t.In(loc), nil
	case string:
		return domain.ParseTransactionDate(t, loc)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported created_at value of type %T", apperrors.ErrValidation, v)
	}
}
