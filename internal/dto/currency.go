package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code      string `json:"code" binding:"required,len=3,uppercase"`
	Name      string `json:"name" binding:"required"`
	Symbol    string `json:"symbol"`
	Precision int    `json:"precision" binding:"gte=0,lte=18"`
	IsBase    bool   `json:"isBase"` // Only honored when no base currency exists yet
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID int64  `json:"currencyID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Precision  int    `json:"precision"`
	IsBase     bool   `json:"isBase"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: c.CurrencyID,
		Code:       c.Code,
		Name:       c.Name,
		Symbol:     c.Symbol,
		Precision:  c.Precision,
		IsBase:     c.IsBase,
	}
}

// ToCurrencyResponses converts a slice of domain.Currency to DTOs
func ToCurrencyResponses(cs []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCurrencyResponse(&c)
	}
	return res
}

// CreateExchangeRateRequest defines the data needed to record a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyID int64           `json:"fromCurrencyID" binding:"required,gt=0"`
	ToCurrencyID   int64           `json:"toCurrencyID" binding:"required,gt=0"`
	Rate           decimal.Decimal `json:"rate" binding:"required"`
	RateDate       time.Time       `json:"rateDate" binding:"required"`
}

// GetExchangeRateParams defines query parameters for rate lookup.
type GetExchangeRateParams struct {
	From int64      `form:"from" binding:"required,gt=0"`
	To   int64      `form:"to" binding:"required,gt=0"`
	Date *time.Time `form:"date" time_format:"2006-01-02"`
}

// ExchangeRateResponse defines the data returned for an exchange rate lookup.
type ExchangeRateResponse struct {
	FromCurrencyID int64           `json:"fromCurrencyID"`
	ToCurrencyID   int64           `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	RateDate       time.Time       `json:"rateDate"`
}
