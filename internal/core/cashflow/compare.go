package cashflow

import (
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Compare measures the current period against the previous one.
func Compare(current, previous domain.PeriodStats) domain.Comparison {
	incomeChange := PercentChangeOf(current.TotalIncome, previous.TotalIncome)
	expenseChange := PercentChangeOf(current.TotalExpense, previous.TotalExpense)
	balanceChange := current.Balance.Sub(previous.Balance)

	return domain.Comparison{
		CurrentPeriod:  current,
		PreviousPeriod: previous,
		IncomeChange:   incomeChange,
		ExpenseChange:  expenseChange,
		BalanceChange:  balanceChange,
		IncomeTrend:    trendOf(incomeChange, current.TotalIncome, true),
		ExpenseTrend:   trendOf(expenseChange, current.TotalExpense, false),
		BalanceTrend:   directionTrend(balanceChange.Sign(), true),
	}
}

// PercentChangeOf is 100*(current-previous)/previous. A zero previous value yields 0 when the
// current value is also zero and an undefined change otherwise.
func PercentChangeOf(current, previous decimal.Decimal) domain.PercentChange {
	if previous.IsZero() {
		if current.IsZero() {
			return domain.PercentChange{Value: decimal.Zero, Defined: true}
		}
		return domain.PercentChange{Value: decimal.Zero, Defined: false}
	}
	return domain.PercentChange{
		Value:   current.Sub(previous).Mul(hundred).Div(previous),
		Defined: true,
	}
}

// trendOf classifies a percentage change. Without a baseline, the direction is the sign of the
// current value.
func trendOf(change domain.PercentChange, current decimal.Decimal, upIsGood bool) domain.Trend {
	if !change.Defined {
		return directionTrend(current.Sign(), upIsGood)
	}
	return directionTrend(change.Value.Sign(), upIsGood)
}

func directionTrend(sign int, upIsGood bool) domain.Trend {
	switch {
	case sign == 0:
		return domain.Unchanged
	case (sign > 0) == upIsGood:
		return domain.Favorable
	default:
		return domain.Unfavorable
	}
}
