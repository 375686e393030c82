package services

import (
	"context"
	"time"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetBalance derives the account balance for a currency (the account's
	// own currency when currencyID is nil), optionally bounded by asOf.
	GetBalance(ctx context.Context, accountID int64, currencyID *int64, asOf *time.Time) (*dto.AccountBalanceResponse, error)

	// ListTransactions retrieves an account's transaction history.
	ListTransactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// Deposit posts a deposit transaction to the account.
	Deposit(ctx context.Context, accountID int64, req dto.MovementRequest) (*domain.AccountTransaction, error)

	// Withdraw posts a withdrawal transaction to the account.
	Withdraw(ctx context.Context, accountID int64, req dto.MovementRequest) (*domain.AccountTransaction, error)

	// DeleteTransaction removes a posted transaction, reversing its balance effect.
	DeleteTransaction(ctx context.Context, txnID int64) error

	// DeleteAccount removes an unreferenced account.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
