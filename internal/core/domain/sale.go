package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the aggregate root for a customer sale. It exclusively owns its
// items and additional costs, and references its payments. TotalAmount,
// BaseAmount, and PaidAmount are recomputed from the full child set on every
// write; Remaining is always derived, never stored.
type Sale struct {
	SaleID       int64           `json:"saleID"` // Primary Key
	CustomerID   int64           `json:"customerID"`
	SaleDate     time.Time       `json:"saleDate"`
	CurrencyID   int64           `json:"currencyID"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Rate to base at sale time
	Notes        string          `json:"notes"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	AuditFields
	Items           []SaleItem       `json:"items,omitempty"`
	AdditionalCosts []AdditionalCost `json:"additionalCosts,omitempty"`
}

// Remaining returns the outstanding balance of the sale in its own currency.
// Overpayment is permitted and surfaces as a negative remaining.
func (s Sale) Remaining() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaidAmount)
}

// SaleItem is one product line on a sale. Total = PerPrice * Quantity.
type SaleItem struct {
	ItemID    int64           `json:"itemID"` // Primary Key
	SaleID    int64           `json:"saleID"`
	ProductID int64           `json:"productID"`
	UnitID    int64           `json:"unitID"`
	PerPrice  decimal.Decimal `json:"perPrice"`
	Quantity  decimal.Decimal `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// AdditionalCost is an extra charge (freight, fees) added to the sale total
// but not tied to a product.
type AdditionalCost struct {
	CostID int64           `json:"costID"` // Primary Key
	SaleID int64           `json:"saleID"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SalePayment settles part of a sale. Creating one raises the sale's
// PaidAmount and, when AccountID is set, posts a deposit-equivalent
// transaction to that account. Deleting one reverses both effects.
type SalePayment struct {
	PaymentID    int64           `json:"paymentID"` // Primary Key
	SaleID       int64           `json:"saleID"`
	AccountID    *int64          `json:"accountID,omitempty"` // Nullable
	CurrencyID   int64           `json:"currencyID"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDate  time.Time       `json:"paymentDate"`
	AuditFields
}
