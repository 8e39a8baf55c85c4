package models

import "github.com/shopspring/decimal"

// Budget is a stored budget limit.
type Budget struct {
	ID       string          `db:"id" validate:"required"`
	Category string          `db:"category" validate:"required"`
	Limit    decimal.Decimal `db:"limit_amount"`
	Period   string          `db:"period" validate:"required,oneof=month year"`
}
