package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency. Exactly one currency is marked
// as the base currency at any time; all base_amount values are normalized
// to it.
type Currency struct {
	CurrencyID int64  `json:"currencyID"` // Primary Key
	Code       string `json:"code"`       // ISO-style code, e.g. "AFN"
	Name       string `json:"name"`       // e.g. "Afghan Afghani"
	Symbol     string `json:"symbol"`     // e.g. "؋"
	Precision  int    `json:"precision"`  // Display fraction digits
	IsBase     bool   `json:"isBase"`
	AuditFields
}

// ExchangeRate expresses "1 unit of FromCurrency = Rate units of ToCurrency"
// effective on RateDate. Multiple rates per pair form a history; lookups fall
// back to the most recent rate on or before the requested date.
type ExchangeRate struct {
	RateID         int64           `json:"rateID"` // Primary Key
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	RateDate       time.Time       `json:"rateDate"`
	AuditFields
}
