package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// Balance derives the account balance for one currency: initial_balance
	// (when the account's currency matches) plus deposit totals minus
	// withdrawal totals, optionally bounded by asOf.
	Balance(ctx context.Context, accountID, currencyID int64, asOf *time.Time) (decimal.Decimal, error)

	// ListTransactions retrieves an account's transactions, newest first.
	ListTransactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned ID.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// DeleteAccount removes an account and its own transactions. It fails
	// with ErrAccountInUse while any journal line or sale payment references
	// the account.
	DeleteAccount(ctx context.Context, accountID int64) error

	// SaveTransaction persists a single account transaction.
	SaveTransaction(ctx context.Context, txn domain.AccountTransaction) (*domain.AccountTransaction, error)

	// DeleteTransaction removes a transaction, reversing its effect on the
	// derived balance.
	DeleteTransaction(ctx context.Context, txnID int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
