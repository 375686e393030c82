package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency mirrors the currencies table.
type Currency struct {
	CurrencyID int64
	Code       string
	Name       string
	Symbol     string
	Precision  int
	IsBase     bool
	AuditFields
}

// ExchangeRate mirrors the exchange_rates table.
type ExchangeRate struct {
	RateID         int64
	FromCurrencyID int64
	ToCurrencyID   int64
	Rate           decimal.Decimal
	RateDate       time.Time
	AuditFields
}
