package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStats holds the totals of a transaction subset.
type PeriodStats struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"` // TotalIncome - TotalExpense
	Transactions []Transaction   `json:"transactions"`
}

// CategoryStat is the expense consumption of one category, optionally against its budget.
type CategoryStat struct {
	Category     Category         `json:"category"`
	Color        string           `json:"color"`
	Total        decimal.Decimal  `json:"total"`
	Percentage   decimal.Decimal  `json:"percentage"` // Share of all expenses, 0-100
	BudgetLimit  *decimal.Decimal `json:"budget_limit,omitempty"`
	Remaining    *decimal.Decimal `json:"remaining,omitempty"` // May be negative
	UsagePercent *decimal.Decimal `json:"usage_percent,omitempty"`
	Exceeded     bool             `json:"exceeded"`
	NearLimit    bool             `json:"near_limit"`
}

// TimelineEntry is one upcoming transaction with the running balance after it.
type TimelineEntry struct {
	Transaction    Transaction     `json:"transaction"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	DaysUntil      int             `json:"days_until"`
	IsNegative     bool            `json:"is_negative"`
}

// Alert is a near-term transaction worth telling the user about.
type Alert struct {
	ID        string          `json:"id"`
	Message   string          `json:"message"`
	Date      time.Time       `json:"date"`
	Type      TransactionType `json:"type"`
	DaysUntil int             `json:"days_until"`
	Label     string          `json:"label"`
}

// PercentChange is a period-over-period percentage. Defined is false when the previous
// period was zero and the current one is not, i.e. there is no baseline to compare with.
type PercentChange struct {
	Value   decimal.Decimal `json:"value"`
	Defined bool            `json:"defined"`
}

// Trend classifies a change from the user's point of view.
type Trend string

const (
	Favorable   Trend = "favorable"
	Unfavorable Trend = "unfavorable"
	Unchanged   Trend = "unchanged"
)

// Comparison is the current period measured against the previous one.
type Comparison struct {
	CurrentPeriod  PeriodStats     `json:"current_period"`
	PreviousPeriod PeriodStats     `json:"previous_period"`
	IncomeChange   PercentChange   `json:"income_change"`
	ExpenseChange  PercentChange   `json:"expense_change"`
	BalanceChange  decimal.Decimal `json:"balance_change"` // Absolute, not a percentage
	IncomeTrend    Trend           `json:"income_trend"`
	ExpenseTrend   Trend           `json:"expense_trend"`
	BalanceTrend   Trend           `json:"balance_trend"`
}

// UpcomingSummary splits everything dated after "now" into money in and money out.
type UpcomingSummary struct {
	Income       []Transaction   `json:"income"`
	Expense      []Transaction   `json:"expense"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
