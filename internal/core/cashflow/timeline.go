package cashflow

import (
	"sort"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultHorizonDays is how far ahead the timeline looks when the caller has no preference.
const DefaultHorizonDays = 30

const day = 24 * time.Hour

// DaysUntil is the number of days from now to t, rounded up.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	days := d / day
	if d%day > 0 {
		days++
	}
	return int(days)
}

// Upcoming reports whether t lies in (now, now + days], with days counted as calendar days.
func Upcoming(now, t time.Time, days int) bool {
	return t.After(now) && !t.After(now.AddDate(0, 0, days))
}

// ProjectTimeline orders the transactions due within the horizon and accumulates the running
// balance, starting from zero, after each of them. Transactions on the same instant keep
// their snapshot order.
func ProjectTimeline(transactions []domain.Transaction, now time.Time, horizonDays int) []domain.TimelineEntry {
	upcoming := Select(transactions, func(txn domain.Transaction) bool {
		return Upcoming(now, txn.Date, horizonDays)
	})
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	entries := make([]domain.TimelineEntry, 0, len(upcoming))
	running := decimal.Zero
	for _, txn := range upcoming {
		running = running.Add(txn.SignedAmount())
		entries = append(entries, domain.TimelineEntry{
			Transaction:    txn,
			RunningBalance: running,
			DaysUntil:      DaysUntil(now, txn.Date),
			IsNegative:     running.IsNegative(),
		})
	}
	return entries
}

// FirstNegative returns the index of the first timeline entry whose running balance is
// negative, or -1.
func FirstNegative(entries []domain.TimelineEntry) int {
	for i, e := range entries {
		if e.IsNegative {
			return i
		}
	}
	return -1
}
