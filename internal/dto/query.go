package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/meufluxo/internal/apperrors"
	"github.com/SscSPs/meufluxo/internal/core/cashflow"
	"github.com/SscSPs/meufluxo/internal/core/domain"
	portssvc "github.com/SscSPs/meufluxo/internal/core/ports/services"
)

// ViewQuery defines the filter and look-ahead query parameters shared by every view.
type ViewQuery struct {
	Search      string   `form:"search" binding:"max=200"`
	Type        string   `form:"type" binding:"omitempty,oneof=all entrada saida"`
	Category    string   `form:"category"`
	DateFrom    string   `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo      string   `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	HorizonDays int      `form:"horizonDays" binding:"min=0,max=366"`
	WindowDays  int      `form:"windowDays" binding:"min=0,max=366"`
	Dismissed   []string `form:"dismissed"` // Repeated or comma separated
}

// ToViewParams converts the query into service parameters. Calendar dates are read in loc.
func (q ViewQuery) ToViewParams(now time.Time, loc *time.Location) (portssvc.ViewParams, error) {
	params := portssvc.ViewParams{
		Now: now,
		Filter: cashflow.Filter{
			SearchText: strings.TrimSpace(q.Search),
			Type:       q.Type,
			Category:   q.Category,
		},
		HorizonDays: q.HorizonDays,
		WindowDays:  q.WindowDays,
		Dismissed:   splitList(q.Dismissed),
	}

	if q.DateFrom != "" {
		from, err := domain.ParseTransactionDate(q.DateFrom, loc)
		if err != nil {
			return portssvc.ViewParams{}, err
		}
		params.Filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := domain.ParseTransactionDate(q.DateTo, loc)
		if err != nil {
			return portssvc.ViewParams{}, err
		}
		params.Filter.DateTo = &to
	}
	if params.Filter.DateFrom != nil && params.Filter.DateTo != nil && params.Filter.DateTo.Before(*params.Filter.DateFrom) {
		return portssvc.ViewParams{}, fmt.Errorf("%w: dateTo %s is before dateFrom %s", apperrors.ErrValidation, q.DateTo, q.DateFrom)
	}
	return params, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ListTransactionsQuery defines query parameters for listing transactions.
type ListTransactionsQuery struct {
	ViewQuery
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// CategoryStatsQuery defines query parameters for the category breakdown.
type CategoryStatsQuery struct {
	ViewQuery
	Period string `form:"period,default=month" binding:"oneof=month year"`
}
