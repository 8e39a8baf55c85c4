package cashflow

import (
	"sort"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// nearLimitShare is the fraction of a budget below which the remaining amount counts as "near the limit".
	nearLimitShare = decimal.RequireFromString("0.2")
)

// CategoryStats groups the expenses of a window by category and measures each group against
// its budget. budgets should hold the budgets of the window's period type; the first budget
// for a category wins. Income transactions are ignored and categories without expenses are
// omitted. The result is ordered by descending total, then by category name.
func CategoryStats(transactions []domain.Transaction, budgets []domain.Budget) []domain.CategoryStat {
	totals := make(map[domain.Category]decimal.Decimal)
	grand := decimal.Zero
	for _, txn := range transactions {
		if !txn.IsExpense() {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
		grand = grand.Add(txn.Amount)
	}

	limits := make(map[domain.Category]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		if _, ok := limits[b.Category]; !ok {
			limits[b.Category] = b.Limit
		}
	}

	stats := make([]domain.CategoryStat, 0, len(totals))
	for category, total := range totals {
		stat := domain.CategoryStat{
			Category:   category,
			Color:      category.Color(),
			Total:      total,
			Percentage: decimal.Zero,
		}
		if !grand.IsZero() {
			stat.Percentage = total.Mul(hundred).Div(grand)
		}
		if limit, ok := limits[category]; ok {
			applyBudget(&stat, limit)
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if c := stats[i].Total.Cmp(stats[j].Total); c != 0 {
			return c > 0
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

func applyBudget(stat *domain.CategoryStat, limit decimal.Decimal) {
	remaining := limit.Sub(stat.Total)
	stat.BudgetLimit = &limit
	stat.Remaining = &remaining
	stat.Exceeded = stat.Total.GreaterThan(limit)
	stat.NearLimit = !stat.Exceeded && remaining.LessThan(limit.Mul(nearLimitShare))
	if limit.IsPositive() {
		usage := stat.Total.Mul(hundred).Div(limit)
		stat.UsagePercent = &usage
	}
}
