package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors the sales table.
type Sale struct {
	SaleID       int64
	CustomerID   int64
	SaleDate     time.Time
	CurrencyID   int64
	ExchangeRate decimal.Decimal
	Notes        string
	TotalAmount  decimal.Decimal
	BaseAmount   decimal.Decimal
	PaidAmount   decimal.Decimal
	AuditFields
}

// SaleItem mirrors the sale_items table.
type SaleItem struct {
	ItemID    int64
	SaleID    int64
	ProductID int64
	UnitID    int64
	PerPrice  decimal.Decimal
	Quantity  decimal.Decimal
	Total     decimal.Decimal
}

// AdditionalCost mirrors the additional_costs table.
type AdditionalCost struct {
	CostID int64
	SaleID int64
	Name   string
	Amount decimal.Decimal
}

// SalePayment mirrors the sale_payments table.
type SalePayment struct {
	PaymentID    int64
	SaleID       int64
	AccountID    *int64
	CurrencyID   int64
	ExchangeRate decimal.Decimal
	Amount       decimal.Decimal
	PaymentDate  time.Time
	AuditFields
}
