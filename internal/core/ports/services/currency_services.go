package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetBaseCurrency retrieves the currency currently marked as base.
	GetBaseCurrency(ctx context.Context) (*domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// SetBaseCurrency atomically switches the base currency. Historical
	// base_amount snapshots are not recomputed.
	SetBaseCurrency(ctx context.Context, currencyID int64) error

	// DeleteCurrency removes an unreferenced currency.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// RateResolverSvc resolves exchange rates against the base currency.
type RateResolverSvc interface {
	// ResolveRate returns the rate converting the given currency to the base
	// currency on asOf: 1 for the base currency itself, otherwise the most
	// recent stored rate on or before asOf. Fails with ErrRateUnavailable
	// when no rate exists.
	ResolveRate(ctx context.Context, currencyID int64, asOf time.Time) (decimal.Decimal, error)
}

// ExchangeRateSvcFacade combines rate resolution with rate maintenance.
type ExchangeRateSvcFacade interface {
	RateResolverSvc

	// CreateExchangeRate records a new rate for a currency pair.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)

	// GetExchangeRate retrieves the rate between two currencies effective on
	// the given date (today when nil), falling back to the most recent
	// earlier rate.
	GetExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID int64, date *time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves a page of rates with optional pair
	// filtering, newest first, plus the total matching count.
	ListExchangeRates(ctx context.Context, fromCurrencyID, toCurrencyID *int64, limit, offset int) ([]domain.ExchangeRate, int, error)
}
