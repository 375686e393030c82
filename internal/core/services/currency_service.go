package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
)

// CurrencyService handles business logic for currency maintenance.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// ListCurrencies retrieves all currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}

// GetBaseCurrency retrieves the currency currently marked as base.
func (s *CurrencyService) GetBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	return s.currencyRepo.FindBaseCurrency(ctx)
}

// CreateCurrency persists a new currency. The isBase flag on the request is
// honored only while no base currency exists; switching an established base
// goes through SetBaseCurrency instead.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	isBase := req.IsBase
	if isBase {
		_, err := s.currencyRepo.FindBaseCurrency(ctx)
		switch {
		case err == nil:
			isBase = false
		case errors.Is(err, apperrors.ErrNotFound):
			// No base yet, the new currency may claim the flag.
		default:
			return nil, fmt.Errorf("failed to check for existing base currency: %w", err)
		}
	}

	currency := domain.Currency{
		Code:        req.Code,
		Name:        req.Name,
		Symbol:      req.Symbol,
		Precision:   req.Precision,
		IsBase:      isBase,
		AuditFields: utils.NewAuditFields(),
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency %s: %w", req.Code, err)
	}

	logger.InfoContext(ctx, "currency created",
		slog.Int64("currency_id", saved.CurrencyID),
		slog.String("code", saved.Code),
		slog.Bool("is_base", saved.IsBase),
	)
	return saved, nil
}

// SetBaseCurrency switches the base currency. Stored base_amount snapshots on
// journal lines and sales keep the rates they were posted with.
func (s *CurrencyService) SetBaseCurrency(ctx context.Context, currencyID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.currencyRepo.SetBaseCurrency(ctx, currencyID); err != nil {
		return fmt.Errorf("failed to set base currency: %w", err)
	}

	logger.InfoContext(ctx, "base currency switched", slog.Int64("currency_id", currencyID))
	return nil
}

// DeleteCurrency removes a currency that nothing references.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		return fmt.Errorf("failed to delete currency: %w", err)
	}

	logger.InfoContext(ctx, "currency deleted", slog.Int64("currency_id", currencyID))
	return nil
}
