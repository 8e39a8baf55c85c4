package dto

import (
	"time"

	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// percentPlaces is the precision percentages are rendered with.
const percentPlaces = 2

// PeriodStatsResponse represents the totals of one period window.
type PeriodStatsResponse struct {
	Period       string                `json:"period,omitempty"`
	TotalIncome  decimal.Decimal       `json:"total_income"`
	TotalExpense decimal.Decimal       `json:"total_expense"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ComparisonResponse represents the current month measured against the previous one.
// A change is null when the previous period was zero and the current one is not; the matching
// *_no_baseline flag is then true.
type ComparisonResponse struct {
	CurrentPeriod     PeriodStatsResponse `json:"current_period"`
	PreviousPeriod    PeriodStatsResponse `json:"previous_period"`
	IncomeChange      *decimal.Decimal    `json:"income_change"`
	IncomeNoBaseline  bool                `json:"income_no_baseline"`
	ExpenseChange     *decimal.Decimal    `json:"expense_change"`
	ExpenseNoBaseline bool                `json:"expense_no_baseline"`
	BalanceChange     decimal.Decimal     `json:"balance_change"`
	IncomeTrend       domain.Trend        `json:"income_trend"`
	ExpenseTrend      domain.Trend        `json:"expense_trend"`
	BalanceTrend      domain.Trend        `json:"balance_trend"`
}

// CategoryStatResponse represents the consumption of one expense category.
type CategoryStatResponse struct {
	Category     domain.Category  `json:"category"`
	Color        string           `json:"color"`
	Total        decimal.Decimal  `json:"total"`
	Percentage   decimal.Decimal  `json:"percentage"`
	BudgetLimit  *decimal.Decimal `json:"budget_limit,omitempty"`
	Remaining    *decimal.Decimal `json:"remaining,omitempty"`
	UsagePercent *decimal.Decimal `json:"usage_percent,omitempty"`
	Exceeded     bool             `json:"exceeded"`
	NearLimit    bool             `json:"near_limit"`
}

// TimelineEntryResponse is a transaction with the projected balance after it.
type TimelineEntryResponse struct {
	TransactionResponse
	Balance    decimal.Decimal `json:"balance"`
	DaysUntil  int             `json:"days_until"`
	IsNegative bool            `json:"is_negative"`
}

// AlertResponse represents one upcoming-transaction alert.
type AlertResponse struct {
	ID        string                 `json:"id"`
	Message   string                 `json:"message"`
	Date      time.Time              `json:"date"`
	Type      domain.TransactionType `json:"type"`
	DaysUntil int                    `json:"days_until"`
	Label     string                 `json:"label"`
}

// UpcomingResponse splits future transactions into income and expense.
type UpcomingResponse struct {
	Income       []TransactionResponse `json:"income"`
	Expense      []TransactionResponse `json:"expense"`
	TotalIncome  decimal.Decimal       `json:"total_income"`
	TotalExpense decimal.Decimal       `json:"total_expense"`
}

// DashboardResponse bundles every view.
type DashboardResponse struct {
	GeneratedAt    time.Time               `json:"generated_at"`
	Week           PeriodStatsResponse     `json:"week"`
	Month          PeriodStatsResponse     `json:"month"`
	Year           PeriodStatsResponse     `json:"year"`
	Comparison     ComparisonResponse      `json:"comparison"`
	MonthlyBudgets []CategoryStatResponse  `json:"monthly_budgets"`
	YearlyBudgets  []CategoryStatResponse  `json:"yearly_budgets"`
	Timeline       []TimelineEntryResponse `json:"timeline"`
	Alerts         []AlertResponse         `json:"alerts"`
	Upcoming       UpcomingResponse        `json:"upcoming"`
}

// ToPeriodStatsResponse converts period totals. period may be empty.
func ToPeriodStatsResponse(period cashflow.Period, s domain.PeriodStats) PeriodStatsResponse {
	return PeriodStatsResponse{
		Period:       string(period),
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
		Transactions: ToTransactionResponses(s.Transactions),
	}
}

// ToComparisonResponse converts a month-over-month comparison.
func ToComparisonResponse(c domain.Comparison) ComparisonResponse {
	resp := ComparisonResponse{
		CurrentPeriod:     ToPeriodStatsResponse("", c.CurrentPeriod),
		PreviousPeriod:    ToPeriodStatsResponse("", c.PreviousPeriod),
		IncomeNoBaseline:  !c.IncomeChange.Defined,
		ExpenseNoBaseline: !c.ExpenseChange.Defined,
		BalanceChange:     c.BalanceChange,
		IncomeTrend:       c.IncomeTrend,
		ExpenseTrend:      c.ExpenseTrend,
		BalanceTrend:      c.BalanceTrend,
	}
	resp.IncomeChange = percentPtr(c.IncomeChange)
	resp.ExpenseChange = percentPtr(c.ExpenseChange)
	return resp
}

func percentPtr(p domain.PercentChange) *decimal.Decimal {
	if !p.Defined {
		return nil
	}
	v := p.Value.Round(percentPlaces)
	return &v
}

// ToCategoryStatResponses converts a category breakdown, never returning nil.
func ToCategoryStatResponses(stats []domain.CategoryStat) []CategoryStatResponse {
	out := make([]CategoryStatResponse, len(stats))
	for i, s := range stats {
		out[i] = CategoryStatResponse{
			Category:    s.Category,
			Color:       s.Color,
			Total:       s.Total,
			Percentage:  s.Percentage.Round(percentPlaces),
			BudgetLimit: s.BudgetLimit,
			Remaining:   s.Remaining,
			Exceeded:    s.Exceeded,
			NearLimit:   s.NearLimit,
		}
		if s.UsagePercent != nil {
			usage := s.UsagePercent.Round(percentPlaces)
			out[i].UsagePercent = &usage
		}
	}
	return out
}

// ToTimelineResponses converts timeline entries, never returning nil.
func ToTimelineResponses(entries []domain.TimelineEntry) []TimelineEntryResponse {
	out := make([]TimelineEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = TimelineEntryResponse{
			TransactionResponse: ToTransactionResponse(e.Transaction),
			Balance:             e.RunningBalance,
			DaysUntil:           e.DaysUntil,
			IsNegative:          e.IsNegative,
		}
	}
	return out
}

// ToAlertResponses converts alerts, never returning nil.
func ToAlertResponses(alerts []domain.Alert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = AlertResponse{
			ID:        a.ID,
			Message:   a.Message,
			Date:      a.Date,
			Type:      a.Type,
			DaysUntil: a.DaysUntil,
			Label:     a.Label,
		}
	}
	return out
}

// ToUpcomingResponse converts the upcoming summary.
func ToUpcomingResponse(u domain.UpcomingSummary) UpcomingResponse {
	return UpcomingResponse{
		Income:       ToTransactionResponses(u.Income),
		Expense:      ToTransactionResponses(u.Expense),
		TotalIncome:  u.TotalIncome,
		TotalExpense: u.TotalExpense,
	}
}

// ToDashboardResponse converts every view of a dashboard.
func ToDashboardResponse(d *portssvc.Dashboard) DashboardResponse {
	return DashboardResponse{
		GeneratedAt:    d.GeneratedAt,
		Week:           ToPeriodStatsResponse(cashflow.PeriodWeek, d.Week),
		Month:          ToPeriodStatsResponse(cashflow.PeriodMonth, d.Month),
		Year:           ToPeriodStatsResponse(cashflow.PeriodYear, d.Year),
		Comparison:     ToComparisonResponse(d.Comparison),
		MonthlyBudgets: ToCategoryStatResponses(d.MonthlyBudgets),
		YearlyBudgets:  ToCategoryStatResponses(d.YearlyBudgets),
		Timeline:       ToTimelineResponses(d.Timeline),
		Alerts:         ToAlertResponses(d.Alerts),
		Upcoming:       ToUpcomingResponse(d.Upcoming),
	}
}
