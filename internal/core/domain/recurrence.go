package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
)

// Frequency is how often a recurring transaction repeats.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Recurrence describes how a template transaction repeats. The aggregation engine never
// looks at it; templates are expanded into concrete instances beforehand.
type Recurrence struct {
	Frequency  Frequency      `json:"frequency"`
	Weekdays   []time.Weekday `json:"weekdays,omitempty"`     // Weekly only; empty means the template's weekday
	DayOfMonth int            `json:"day_of_month,omitempty"` // Monthly only; 0 means the template's day
	EndDate    *time.Time     `json:"end_date,omitempty"`
}

// Validate checks that the descriptor can be expanded.
func (r Recurrence) Validate() error {
	switch r.Frequency {
	case Daily, Weekly, Monthly, Yearly:
	default:
		return fmt.Errorf("%w: unknown recurrence frequency %q", apperrors.ErrValidation, r.Frequency)
	}
	for _, wd := range r.Weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("%w: invalid weekday %d", apperrors.ErrValidation, wd)
		}
	}
	if r.DayOfMonth < 0 || r.DayOfMonth > 31 {
		return fmt.Errorf("%w: day of month must be between 1 and 31, got %d", apperrors.ErrValidation, r.DayOfMonth)
	}
	return nil
}
