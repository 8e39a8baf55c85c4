package cashflow

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/meufluxo/internal/core/domain"
	"github.com/SscSPs/meufluxo/internal/utils"
)

// DefaultAlertWindowDays is the look-ahead used for alerts when the caller has no preference.
const DefaultAlertWindowDays = 3

// ScheduleAlerts builds an alert for every transaction due in the next windowDays days.
// Alerts keep snapshot order.
func ScheduleAlerts(transactions []domain.Transaction, now time.Time, windowDays int) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	for _, txn := range transactions {
		if !Upcoming(now, txn.Date, windowDays) {
			continue
		}
		days := DaysUntil(now, txn.Date)
		alerts = append(alerts, domain.Alert{
			ID:        txn.ID,
			Message:   AlertMessage(txn),
			Date:      txn.Date,
			Type:      txn.Type,
			DaysUntil: days,
			Label:     DayLabel(days),
		})
	}
	return alerts
}

// AlertMessage renders the user-facing text of an alert.
func AlertMessage(txn domain.Transaction) string {
	icon := "💳"
	if txn.IsIncome() {
		icon = "💰"
	}
	return fmt.Sprintf("%s %s - %s", icon, txn.Description, utils.FormatBRL(txn.Amount))
}

// DayLabel turns a day distance into the label shown next to an alert.
func DayLabel(days int) string {
	switch days {
	case 0:
		return "Hoje"
	case 1:
		return "Amanhã"
	default:
		return fmt.Sprintf("Em %d dias", days)
	}
}

// DismissalSet remembers which alerts the user has dismissed. It is owned by the caller and
// safe for concurrent use; the zero value is ready to use.
type DismissalSet struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewDismissalSet returns a set holding ids.
func NewDismissalSet(ids ...string) *DismissalSet {
	s := &DismissalSet{}
	for _, id := range ids {
		s.Dismiss(id)
	}
	return s
}

// Dismiss hides the alert with the given id.
func (s *DismissalSet) Dismiss(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
}

// IsDismissed reports whether id was dismissed.
func (s *DismissalSet) IsDismissed(id string) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Reset forgets every dismissal.
func (s *DismissalSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
}

// Len is the number of dismissed ids.
func (s *DismissalSet) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// IDs lists the dismissed ids in lexical order.
func (s *DismissalSet) IDs() []string {
	if s == nil {
		return []string{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// VisibleAlerts drops the dismissed alerts. A nil set hides nothing.
func VisibleAlerts(alerts []domain.Alert, dismissed *DismissalSet) []domain.Alert {
	out := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !dismissed.IsDismissed(a.ID) {
			out = append(out, a)
		}
	}
	return out
}
