package cashflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
)

// All is the wildcard value for the type and category filters.
const All = "all"

// Filter is the caller-owned search and filter state applied to a snapshot.
// Zero values (empty strings, nil dates) match everything.
type Filter struct {
	SearchText string
	Type       string     // "all", "entrada" or "saida"
	Category   string     // "all" or one of domain.Categories()
	DateFrom   *time.Time // Inclusive, compared by calendar day in DateFrom's location
	DateTo     *time.Time // Inclusive, compared by calendar day in DateTo's location
}

// Predicate selects transactions.
type Predicate func(domain.Transaction) bool

// Validate rejects type and category values outside the known enumerations.
func (f Filter) Validate() error {
	if f.Type != "" && f.Type != All && !domain.TransactionType(f.Type).IsValid() {
		return fmt.Errorf("%w: unknown type filter %q", apperrors.ErrValidation, f.Type)
	}
	if f.Category != "" && f.Category != All && !domain.Category(f.Category).IsValid() {
		return fmt.Errorf("%w: unknown category filter %q", apperrors.ErrValidation, f.Category)
	}
	return nil
}

// IsEmpty reports whether the filter lets every transaction through.
func (f Filter) IsEmpty() bool {
	return f.SearchText == "" &&
		(f.Type == "" || f.Type == All) &&
		(f.Category == "" || f.Category == All) &&
		f.DateFrom == nil && f.DateTo == nil
}

// Matches reports whether txn satisfies every predicate of the filter.
func (f Filter) Matches(txn domain.Transaction) bool {
	if f.SearchText != "" {
		needle := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(txn.Description), needle) &&
			!strings.Contains(strings.ToLower(string(txn.Category)), needle) {
			return false
		}
	}
	if f.Type != "" && f.Type != All && string(txn.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != All && string(txn.Category) != f.Category {
		return false
	}
	if f.DateFrom != nil && dayKey(txn.Date.In(f.DateFrom.Location())) < dayKey(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && dayKey(txn.Date.In(f.DateTo.Location())) > dayKey(*f.DateTo) {
		return false
	}
	return true
}

// ApplyFilter returns the transactions matching f, keeping their relative order.
func ApplyFilter(transactions []domain.Transaction, f Filter) []domain.Transaction {
	return Select(transactions, f.Matches)
}

// Select returns the transactions satisfying all predicates, keeping their relative order.
func Select(transactions []domain.Transaction, predicates ...Predicate) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
next:
	for _, txn := range transactions {
		for _, p := range predicates {
			if !p(txn) {
				continue next
			}
		}
		out = append(out, txn)
	}
	return out
}

// dayKey collapses a time to its calendar day as yyyymmdd.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
