package repositories

import (
	"context"
	"time"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its unique identifier.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// FindBaseCurrency retrieves the currency currently marked as base.
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency and returns it with its assigned ID.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// SetBaseCurrency atomically marks the given currency as base and unmarks
	// any previous base. At no point do other operations observe zero or two
	// base currencies.
	SetBaseCurrency(ctx context.Context, currencyID int64) error

	// DeleteCurrency removes a currency. It fails with ErrCurrencyInUse while
	// any account, exchange rate, journal line, or sale references it.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRateOnOrBefore retrieves the most recent rate for the given pair
	// with rate_date <= asOf. Returns ErrNotFound when no such rate exists.
	FindRateOnOrBefore(ctx context.Context, fromCurrencyID, toCurrencyID int64, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves rates with optional pair filtering, newest first.
	ListExchangeRates(ctx context.Context, fromCurrencyID, toCurrencyID *int64, limit, offset int) ([]domain.ExchangeRate, int, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new rate, replacing an existing rate for the
	// same pair and date.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
