package accounting

import (
	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumByType returns the income and expense totals of a transaction set.
// Transactions with an unknown type are ignored; snapshots are validated before they get here.
func SumByType(transactions []domain.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
		}
	}
	return income, expense
}
