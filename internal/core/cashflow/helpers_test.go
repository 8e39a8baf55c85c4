package cashflow_test

import (
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
)

var refNow = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC) // a Wednesday

func txn(id string, typ domain.TransactionType, amount int64, date time.Time, category domain.Category, desc string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Type:        typ,
		Category:    category,
		Description: desc,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ids(txs []domain.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.ID)
	}
	return out
}

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		txn("t1", domain.Income, 5000, refNow.AddDate(0, 0, -10), domain.CategorySalary, "Salário março"),
		txn("t2", domain.Expense, 1500, refNow.AddDate(0, 0, -9), domain.CategoryHousing, "Aluguel"),
		txn("t3", domain.Expense, 320, refNow.AddDate(0, 0, -2), domain.CategoryFood, "Supermercado"),
		txn("t4", domain.Expense, 80, refNow.AddDate(0, 0, 1), domain.CategoryTransport, "Uber"),
		txn("t5", domain.Income, 700, refNow.AddDate(0, 0, 2), domain.CategoryOther, "Freela site"),
		txn("t6", domain.Expense, 250, refNow.AddDate(0, 0, 5), domain.CategoryLeisure, "Show"),
		txn("t7", domain.Expense, 900, refNow.AddDate(0, -1, 0), domain.CategoryCreditCard, "Fatura cartão"),
	}
}
