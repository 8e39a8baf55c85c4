package cashflow

import (
	"fmt"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/SscSPs/meufluxo/internal/utils/accounting"
)

// Period names a calendar window relative to "now".
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates a period name.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, s)
}

// Aggregate totals a transaction subset. It does not look at dates; callers restrict the
// subset to a window first (see InWindow).
func Aggregate(transactions []domain.Transaction) domain.PeriodStats {
	income, expense := accounting.SumByType(transactions)
	subset := make([]domain.Transaction, len(transactions))
	copy(subset, transactions)
	return domain.PeriodStats{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		Transactions: subset,
	}
}

// InWindow returns the transactions dated inside w, keeping their order.
func InWindow(transactions []domain.Transaction, w domain.Window) []domain.Transaction {
	return Select(transactions, func(txn domain.Transaction) bool { return w.Contains(txn.Date) })
}

// WindowFor returns the calendar window of period p that contains now.
func WindowFor(p Period, now time.Time) domain.Window {
	switch p {
	case PeriodWeek:
		return WeekWindow(now)
	case PeriodYear:
		return YearWindow(now)
	default:
		return MonthWindow(now)
	}
}

// WeekWindow is the Monday-to-Sunday week containing now.
func WeekWindow(now time.Time) domain.Window {
	offset := (int(now.Weekday()) + 6) % 7
	start := startOfDay(now).AddDate(0, 0, -offset)
	return domain.Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthWindow is the calendar month containing now.
func MonthWindow(now time.Time) domain.Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return domain.Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// PreviousMonthWindow is the calendar month immediately before the one containing now.
func PreviousMonthWindow(now time.Time) domain.Window {
	current := MonthWindow(now)
	return domain.Window{Start: current.Start.AddDate(0, -1, 0), End: current.Start}
}

// YearWindow is the calendar year containing now.
func YearWindow(now time.Time) domain.Window {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return domain.Window{Start: start, End: start.AddDate(1, 0, 0)}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
