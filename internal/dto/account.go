package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	CurrencyID     *int64          `json:"currencyID"` // Optional: currency of the initial balance
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Notes          string          `json:"notes"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      int64           `json:"accountID"`
	Name           string          `json:"name"`
	CurrencyID     *int64          `json:"currencyID,omitempty"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		CurrencyID:     a.CurrencyID,
		InitialBalance: a.InitialBalance,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account to DTOs
func ToAccountResponses(as []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(as))
	for i, a := range as {
		res[i] = ToAccountResponse(&a)
	}
	return res
}

// MovementRequest defines the data for a deposit or a withdrawal. When
// IsFull is set the amount is ignored and the transaction closes out the
// account's entire balance for the currency.
type MovementRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	CurrencyID int64           `json:"currencyID" binding:"required,gt=0"`
	Rate       decimal.Decimal `json:"rate"`
	Date       time.Time       `json:"date" binding:"required"`
	IsFull     bool            `json:"isFull"`
	Notes      string          `json:"notes"`
}

// AccountTransactionResponse defines the data returned for an account transaction.
type AccountTransactionResponse struct {
	TxnID         int64           `json:"txnID"`
	AccountID     int64           `json:"accountID"`
	TxnType       string          `json:"txnType"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyID    int64           `json:"currencyID"`
	Rate          decimal.Decimal `json:"rate"`
	Total         decimal.Decimal `json:"total"`
	TxnDate       time.Time       `json:"txnDate"`
	IsFull        bool            `json:"isFull"`
	Notes         string          `json:"notes"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   *int64          `json:"referenceID,omitempty"`
}

// ToAccountTransactionResponse converts a domain.AccountTransaction to its DTO.
func ToAccountTransactionResponse(t *domain.AccountTransaction) AccountTransactionResponse {
	return AccountTransactionResponse{
		TxnID:         t.TxnID,
		AccountID:     t.AccountID,
		TxnType:       string(t.TxnType),
		Amount:        t.Amount,
		CurrencyID:    t.CurrencyID,
		Rate:          t.Rate,
		Total:         t.Total,
		TxnDate:       t.TxnDate,
		IsFull:        t.IsFull,
		Notes:         t.Notes,
		ReferenceType: t.ReferenceType,
		ReferenceID:   t.ReferenceID,
	}
}

// ToAccountTransactionResponses converts a slice of domain.AccountTransaction to DTOs
func ToAccountTransactionResponses(ts []domain.AccountTransaction) []AccountTransactionResponse {
	res := make([]AccountTransactionResponse, len(ts))
	for i, t := range ts {
		res[i] = ToAccountTransactionResponse(&t)
	}
	return res
}

// BalanceParams defines query parameters for a balance lookup.
type BalanceParams struct {
	CurrencyID *int64     `form:"currencyID"`
	AsOf       *time.Time `form:"asOf" time_format:"2006-01-02"`
}

// AccountBalanceResponse defines the data returned for a balance query.
// Formatted is the balance rendered for display in the resolved currency.
type AccountBalanceResponse struct {
	AccountID  int64           `json:"accountID"`
	CurrencyID int64           `json:"currencyID"`
	Balance    decimal.Decimal `json:"balance"`
	Formatted  string          `json:"formatted"`
}
