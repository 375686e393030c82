package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
)

const (
	rateCacheTTL     = 5 * time.Minute
	rateCacheCleanup = 10 * time.Minute
)

// ExchangeRateService handles rate maintenance and resolution against the
// base currency. Resolved rates are cached briefly since journal posting and
// sale creation hit the same pairs repeatedly; any rate write flushes the
// cache.
type ExchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateCache    *cache.Cache
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		rateCache:    cache.New(rateCacheTTL, rateCacheCleanup),
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// ResolveRate returns the rate converting currencyID to the base currency on
// asOf. The base currency resolves to 1 without touching storage.
func (s *ExchangeRateService) ResolveRate(ctx context.Context, currencyID int64, asOf time.Time) (decimal.Decimal, error) {
	base, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve base currency: %w", err)
	}
	if currencyID == base.CurrencyID {
		return decimal.NewFromInt(1), nil
	}

	cacheKey := fmt.Sprintf("rate:%d:%d:%s", currencyID, base.CurrencyID, asOf.Format("2006-01-02"))
	if cached, ok := s.rateCache.Get(cacheKey); ok {
		return cached.(decimal.Decimal), nil
	}

	rate, err := s.rateRepo.FindRateOnOrBefore(ctx, currencyID, base.CurrencyID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: currency %d to base on %s",
				apperrors.ErrRateUnavailable, currencyID, asOf.Format("2006-01-02"))
		}
		return decimal.Zero, fmt.Errorf("failed to look up exchange rate: %w", err)
	}

	s.rateCache.Set(cacheKey, rate.Rate, cache.DefaultExpiration)
	return rate.Rate, nil
}

// CreateExchangeRate records a rate for a currency pair. A rate for the same
// pair and date replaces the previous one.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, apperrors.NewValidationError("from and to currency must differ")
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrInvalidAmount)
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.FromCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: from currency %d", apperrors.ErrUnknownReference, req.FromCurrencyID)
		}
		return nil, fmt.Errorf("failed to verify from currency: %w", err)
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.ToCurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: to currency %d", apperrors.ErrUnknownReference, req.ToCurrencyID)
		}
		return nil, fmt.Errorf("failed to verify to currency: %w", err)
	}

	rate := domain.ExchangeRate{
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           req.Rate,
		RateDate:       req.RateDate,
		AuditFields:    utils.NewAuditFields(),
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	// Stale cached resolutions must not outlive the new rate.
	s.rateCache.Flush()

	logger.InfoContext(ctx, "exchange rate recorded",
		slog.Int64("from_currency_id", saved.FromCurrencyID),
		slog.Int64("to_currency_id", saved.ToCurrencyID),
		slog.String("rate", saved.Rate.String()),
	)
	return saved, nil
}

// GetExchangeRate retrieves the rate between two currencies effective on the
// given date, today when nil, falling back to the most recent earlier rate.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID int64, date *time.Time) (*domain.ExchangeRate, error) {
	asOf := time.Now().UTC()
	if date != nil {
		asOf = *date
	}

	rate, err := s.rateRepo.FindRateOnOrBefore(ctx, fromCurrencyID, toCurrencyID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d to %d on %s",
				apperrors.ErrRateUnavailable, fromCurrencyID, toCurrencyID, asOf.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to look up exchange rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves a page of rates with optional pair filtering.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context, fromCurrencyID, toCurrencyID *int64, limit, offset int) ([]domain.ExchangeRate, int, error) {
	return s.rateRepo.ListExchangeRates(ctx, fromCurrencyID, toCurrencyID, limit, offset)
}
