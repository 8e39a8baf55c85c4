package mapping

import (
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/SscSPs/meufluxo/internal/models"
)

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		ID:       m.ID,
		Category: domain.Category(m.Category),
		Limit:    m.Limit,
		Period:   domain.BudgetPeriod(m.Period),
	}
}

// ToDomainBudgets converts a slice of model Budgets to domain Budgets
func ToDomainBudgets(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
