package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
	"github.com/shopbooks/shopbooks_backend/internal/utils/accounting"
)

// SaleService handles business logic for sales. Totals are always recomputed
// from the full item and cost set, never adjusted incrementally.
type SaleService struct {
	saleRepo     portsrepo.SaleRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	references   portsrepo.ReferenceChecker
	rates        portssvc.RateResolverSvc
}

// NewSaleService creates a new SaleService.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	references portsrepo.ReferenceChecker,
	rates portssvc.RateResolverSvc,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		currencyRepo: currencyRepo,
		references:   references,
		rates:        rates,
	}
}

var _ portssvc.SaleSvcFacade = (*SaleService)(nil)

// GetSaleByID retrieves a sale with its items and additional costs.
func (s *SaleService) GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

// ListSales retrieves a page of sales with the total matching count.
func (s *SaleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	sales, total, err := s.saleRepo.ListSales(ctx, portsrepo.ListSalesFilter{
		Limit:     params.Limit(),
		Offset:    params.Offset(),
		Search:    params.Search,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &dto.ListSalesResponse{Items: dto.ToSaleResponses(sales), Total: total}, nil
}

// GetAdditionalCosts retrieves the additional costs of a sale.
func (s *SaleService) GetAdditionalCosts(ctx context.Context, saleID int64) ([]domain.AdditionalCost, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, err
	}
	return s.saleRepo.FindCostsBySaleID(ctx, saleID)
}

// CreateSale validates and persists a sale with its items and costs.
func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sale, items, costs, err := s.buildSale(ctx, req)
	if err != nil {
		return nil, err
	}

	saved, err := s.saleRepo.SaveSale(ctx, *sale, items, costs)
	if err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	full, err := s.saleRepo.FindSaleByID(ctx, saved.SaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created sale: %w", err)
	}

	logger.InfoContext(ctx, "sale created",
		slog.Int64("sale_id", full.SaleID),
		slog.Int64("customer_id", full.CustomerID),
		slog.String("total", full.TotalAmount.String()),
	)
	return full, nil
}

// UpdateSale replaces the sale's header, items, and costs. The paid amount is
// untouched since payments are managed separately; remaining shifts with the
// new total.
func (s *SaleService) UpdateSale(ctx context.Context, saleID int64, req dto.CreateSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, err
	}

	sale, items, costs, err := s.buildSale(ctx, req)
	if err != nil {
		return nil, err
	}
	sale.SaleID = saleID

	if _, err := s.saleRepo.ReplaceSale(ctx, *sale, items, costs); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	full, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated sale: %w", err)
	}

	logger.InfoContext(ctx, "sale updated",
		slog.Int64("sale_id", saleID),
		slog.String("total", full.TotalAmount.String()),
	)
	return full, nil
}

// DeleteSale removes a sale and everything hanging off it, including the
// account-balance effects of its payments.
func (s *SaleService) DeleteSale(ctx context.Context, saleID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	logger.InfoContext(ctx, "sale deleted", slog.Int64("sale_id", saleID))
	return nil
}

// buildSale validates the request and assembles the domain objects with all
// totals computed.
func (s *SaleService) buildSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, []domain.SaleItem, []domain.AdditionalCost, error) {
	exists, err := s.references.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to verify customer: %w", err)
	}
	if !exists {
		return nil, nil, nil, fmt.Errorf("%w: customer %d", apperrors.ErrUnknownReference, req.CustomerID)
	}

	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: currency %d", apperrors.ErrUnknownReference, req.CurrencyID)
		}
		return nil, nil, nil, fmt.Errorf("failed to verify sale currency: %w", err)
	}

	items := make([]domain.SaleItem, len(req.Items))
	for i, ir := range req.Items {
		if !ir.Quantity.IsPositive() {
			return nil, nil, nil, fmt.Errorf("%w: item %d quantity must be positive", apperrors.ErrInvalidAmount, i+1)
		}
		if !ir.PerPrice.IsPositive() {
			return nil, nil, nil, fmt.Errorf("%w: item %d price must be positive", apperrors.ErrInvalidAmount, i+1)
		}

		ok, err := s.references.ProductExists(ctx, ir.ProductID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to verify product: %w", err)
		}
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: product %d on item %d", apperrors.ErrUnknownReference, ir.ProductID, i+1)
		}
		ok, err = s.references.UnitExists(ctx, ir.UnitID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to verify unit: %w", err)
		}
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: unit %d on item %d", apperrors.ErrUnknownReference, ir.UnitID, i+1)
		}

		items[i] = domain.SaleItem{
			ProductID: ir.ProductID,
			UnitID:    ir.UnitID,
			PerPrice:  ir.PerPrice,
			Quantity:  ir.Quantity,
			Total:     ir.PerPrice.Mul(ir.Quantity),
		}
	}

	costs := make([]domain.AdditionalCost, len(req.AdditionalCosts))
	for i, cr := range req.AdditionalCosts {
		if cr.Amount.IsNegative() {
			return nil, nil, nil, fmt.Errorf("%w: cost %q cannot be negative", apperrors.ErrInvalidAmount, cr.Name)
		}
		costs[i] = domain.AdditionalCost{Name: cr.Name, Amount: cr.Amount}
	}

	rate := req.ExchangeRate
	if rate.IsZero() {
		rate, err = s.rates.ResolveRate(ctx, req.CurrencyID, req.Date)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if rate.IsNegative() {
		return nil, nil, nil, fmt.Errorf("%w: exchange rate cannot be negative", apperrors.ErrInvalidAmount)
	}

	total := accounting.SaleTotal(items, costs)

	sale := &domain.Sale{
		CustomerID:   req.CustomerID,
		SaleDate:     req.Date,
		CurrencyID:   req.CurrencyID,
		ExchangeRate: rate,
		Notes:        req.Notes,
		TotalAmount:  total,
		BaseAmount:   total.Mul(rate),
		PaidAmount:   decimal.Zero,
		AuditFields:  utils.NewAuditFields(),
	}
	return sale, items, costs, nil
}
