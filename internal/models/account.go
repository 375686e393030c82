package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table.
type Account struct {
	AccountID      int64
	Name           string
	CurrencyID     *int64
	InitialBalance decimal.Decimal
	Notes          string
	AuditFields
}

// AccountTransaction mirrors the account_transactions table.
type AccountTransaction struct {
	TxnID         int64
	AccountID     int64
	TxnType       string
	Amount        decimal.Decimal
	CurrencyID    int64
	Rate          decimal.Decimal
	Total         decimal.Decimal
	TxnDate       time.Time
	IsFull        bool
	Notes         string
	ReferenceType string
	ReferenceID   *int64
	AuditFields
}
