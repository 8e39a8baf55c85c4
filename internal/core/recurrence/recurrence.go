// Package recurrence expands template transactions into concrete, dated instances.
//
// Each frequency has its own matcher that decides whether a calendar day carries an
// occurrence of the template. The expansion runs before a snapshot reaches the cash-flow
// engine, which only ever sees plain transactions.
package recurrence

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/domain"
)

// Matcher decides whether day holds an occurrence of a template anchored at anchor.
type Matcher interface {
	Matches(anchor, day time.Time, rule domain.Recurrence) bool
}

// DailyMatcher matches every day.
type DailyMatcher struct{}

func (DailyMatcher) Matches(_, _ time.Time, _ domain.Recurrence) bool {
	return true
}

// WeeklyMatcher matches the selected weekdays, or the anchor's weekday when none are selected.
type WeeklyMatcher struct{}

func (WeeklyMatcher) Matches(anchor, day time.Time, rule domain.Recurrence) bool {
	if len(rule.Weekdays) == 0 {
		return day.Weekday() == anchor.Weekday()
	}
	return slices.Contains(rule.Weekdays, day.Weekday())
}

// MonthlyMatcher matches the target day of every month. Targets past the end of a short month
// fall on its last day.
type MonthlyMatcher struct{}

func (MonthlyMatcher) Matches(anchor, day time.Time, rule domain.Recurrence) bool {
	target := rule.DayOfMonth
	if target == 0 {
		target = anchor.Day()
	}
	return day.Day() == clampDay(day.Year(), day.Month(), target, day.Location())
}

// YearlyMatcher matches the anchor's month and day every year; 29 February becomes 28 February
// in common years.
type YearlyMatcher struct{}

func (YearlyMatcher) Matches(anchor, day time.Time, _ domain.Recurrence) bool {
	if day.Month() != anchor.Month() {
		return false
	}
	return day.Day() == clampDay(day.Year(), day.Month(), anchor.Day(), day.Location())
}

var matchers = map[domain.Frequency]Matcher{
	domain.Daily:   DailyMatcher{},
	domain.Weekly:  WeeklyMatcher{},
	domain.Monthly: MonthlyMatcher{},
	domain.Yearly:  YearlyMatcher{},
}

// MatcherFor returns the matcher of a frequency.
func MatcherFor(frequency domain.Frequency) (Matcher, error) {
	m, ok := matchers[frequency]
	if !ok {
		return nil, fmt.Errorf("%w: unknown recurrence frequency %q", apperrors.ErrValidation, frequency)
	}
	return m, nil
}

// IsTemplate reports whether txn carries a recurrence rule.
func IsTemplate(txn domain.Transaction) bool {
	return txn.Recurrence != nil
}

// Expand returns the occurrences of template dated within [from, until], never before the
// template's own date nor after the rule's end date. Occurrences keep the template's time of
// day and get the id "<templateID>-<yyyymmdd>".
func Expand(template domain.Transaction, from, until time.Time) ([]domain.Transaction, error) {
	if template.Recurrence == nil {
		return nil, fmt.Errorf("%w: transaction %s has no recurrence rule", apperrors.ErrValidation, template.ID)
	}
	rule := *template.Recurrence
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("template %s: %w", template.ID, err)
	}
	matcher, err := MatcherFor(rule.Frequency)
	if err != nil {
		return nil, err
	}

	anchor := template.Date
	lower := from
	if anchor.After(lower) {
		lower = anchor
	}
	upper := until
	if rule.EndDate != nil && rule.EndDate.Before(upper) {
		upper = *rule.EndDate
	}

	instances := make([]domain.Transaction, 0)
	if upper.Before(lower) {
		return instances, nil
	}

	loc := anchor.Location()
	lower, upper = lower.In(loc), upper.In(loc)
	last := startOfDay(upper)
	for day := startOfDay(lower); !day.After(last); day = day.AddDate(0, 0, 1) {
		if !matcher.Matches(anchor, day, rule) {
			continue
		}
		at := time.Date(day.Year(), day.Month(), day.Day(), anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), loc)
		if at.Before(lower) || at.After(upper) {
			continue
		}
		instances = append(instances, instance(template, at))
	}
	return instances, nil
}

// Materialize replaces every template in transactions with its occurrences in [from, until].
// Plain transactions pass through untouched and in order; occurrences are appended in
// template order. An occurrence whose id already exists is skipped, so instances the store
// already persisted are not counted twice.
func Materialize(transactions []domain.Transaction, from, until time.Time) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(transactions))
	seen := make(map[string]struct{}, len(transactions))
	var templates []domain.Transaction
	for _, txn := range transactions {
		if IsTemplate(txn) {
			templates = append(templates, txn)
			continue
		}
		seen[txn.ID] = struct{}{}
		out = append(out, txn)
	}

	for _, tmpl := range templates {
		instances, err := Expand(tmpl, from, until)
		if err != nil {
			return nil, err
		}
		for _, inst := range instances {
			if _, dup := seen[inst.ID]; dup {
				continue
			}
			seen[inst.ID] = struct{}{}
			out = append(out, inst)
		}
	}
	return out, nil
}

// InstanceID derives the id of the occurrence of templateID on date.
func InstanceID(templateID string, date time.Time) string {
	return fmt.Sprintf("%s-%s", templateID, date.Format("20060102"))
}

func instance(template domain.Transaction, at time.Time) domain.Transaction {
	inst := template
	inst.ID = InstanceID(template.ID, at)
	inst.Date = at
	inst.Recurrence = nil
	inst.ReminderSent = false
	return inst
}

func clampDay(year int, month time.Month, day int, loc *time.Location) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		return last
	}
	return day
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
