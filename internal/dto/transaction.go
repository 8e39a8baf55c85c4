package dto

import (
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse is the API shape of one transaction.
type TransactionResponse struct {
	ID            string                 `json:"id"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	Type          domain.TransactionType `json:"type"`
	Category      domain.Category        `json:"category"`
	CategoryColor string                 `json:"category_color"`
	Description   string                 `json:"description"`
	HasReminder   bool                   `json:"has_reminder"`
	ReminderSent  bool                   `json:"reminder_sent"`
	CreatedAt     *time.Time             `json:"created_at,omitempty"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"next_token"`
}

// ToTransactionResponse converts a domain transaction to its response.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            t.ID,
		Amount:        t.Amount,
		Date:          t.Date,
		Type:          t.Type,
		Category:      t.Category,
		CategoryColor: t.Category.Color(),
		Description:   t.Description,
		HasReminder:   t.HasReminder,
		ReminderSent:  t.ReminderSent,
	}
	if !t.CreatedAt.IsZero() {
		createdAt := t.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

// ToTransactionResponses converts a slice, never returning nil.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// ToListTransactionsResponse builds a page response. An empty token means the last page.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	resp := ListTransactionsResponse{Transactions: ToTransactionResponses(txns)}
	if nextToken != "" {
		resp.NextToken = &nextToken
	}
	return resp
}
