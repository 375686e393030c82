package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a monetary account (cash box, bank account, safe).
// Its balance is never stored: it is derived from InitialBalance plus the
// posted transaction history, scoped per currency.
type Account struct {
	AccountID      int64           `json:"accountID"`  // Primary Key
	Name           string          `json:"name"`       // User-defined name
	CurrencyID     *int64          `json:"currencyID"` // Nullable: currency of the initial balance
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Notes          string          `json:"notes"`
	AuditFields
}

// TransactionType indicates the direction of an account transaction.
type TransactionType string

const (
	Deposit  TransactionType = "DEPOSIT"
	Withdraw TransactionType = "WITHDRAW"
)

// ReferenceSalePayment marks account transactions posted on behalf of a sale
// payment. Manual movements carry ReferenceManual.
const ReferenceSalePayment = "sale_payment"

// AccountTransaction is one posting against an account: a deposit, a
// withdrawal, or a settlement posting created on behalf of a sale payment.
// Total = Amount * Rate unless IsFull is set, in which case the transaction
// closes out the account's entire balance for that currency. Immutable once
// created except by deletion, which reverses its effect on the derived
// balance.
type AccountTransaction struct {
	TxnID         int64           `json:"txnID"` // Primary Key
	AccountID     int64           `json:"accountID"`
	TxnType       TransactionType `json:"txnType"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyID    int64           `json:"currencyID"`
	Rate          decimal.Decimal `json:"rate"`
	Total         decimal.Decimal `json:"total"`
	TxnDate       time.Time       `json:"txnDate"`
	IsFull        bool            `json:"isFull"`
	Notes         string          `json:"notes"`
	ReferenceType string          `json:"referenceType"`         // "manual" or "sale_payment"
	ReferenceID   *int64          `json:"referenceID,omitempty"` // e.g. the originating payment
	AuditFields
}
