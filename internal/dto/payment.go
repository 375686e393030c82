package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment against a sale.
type CreatePaymentRequest struct {
	AccountID    *int64          `json:"accountID"` // Optional: account receiving the money
	CurrencyID   int64           `json:"currencyID" binding:"required,gt=0"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Date         time.Time       `json:"date" binding:"required"`
}

// PaymentResponse defines the data returned for a sale payment.
type PaymentResponse struct {
	PaymentID    int64           `json:"paymentID"`
	SaleID       int64           `json:"saleID"`
	AccountID    *int64          `json:"accountID,omitempty"`
	CurrencyID   int64           `json:"currencyID"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
}

// ToPaymentResponse converts a domain.SalePayment to its DTO.
func ToPaymentResponse(p *domain.SalePayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		SaleID:       p.SaleID,
		AccountID:    p.AccountID,
		CurrencyID:   p.CurrencyID,
		ExchangeRate: p.ExchangeRate,
		Amount:       p.Amount,
		Date:         p.PaymentDate,
	}
}

// ToPaymentResponses converts a slice of domain.SalePayment to DTOs
func ToPaymentResponses(ps []domain.SalePayment) []PaymentResponse {
	res := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}
