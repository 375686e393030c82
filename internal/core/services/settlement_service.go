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

// SettlementService records and reverses payments against sales. Overpayment
// is permitted; the sale's remaining amount simply goes negative.
type SettlementService struct {
	paymentRepo  portsrepo.PaymentRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rates        portssvc.RateResolverSvc
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rates portssvc.RateResolverSvc,
) *SettlementService {
	return &SettlementService{
		paymentRepo:  paymentRepo,
		saleRepo:     saleRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		rates:        rates,
	}
}

var _ portssvc.SettlementSvcFacade = (*SettlementService)(nil)

// AddPayment records a payment against a sale. The sale's paid amount and the
// optional account posting commit together or not at all.
func (s *SettlementService) AddPayment(ctx context.Context, saleID int64, req dto.CreatePaymentRequest) (*domain.SalePayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrInvalidAmount)
	}

	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, err
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d", apperrors.ErrUnknownReference, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to verify payment currency: %w", err)
	}
	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %d", apperrors.ErrUnknownReference, *req.AccountID)
			}
			return nil, fmt.Errorf("failed to verify payment account: %w", err)
		}
	}

	rate := req.ExchangeRate
	if rate.IsZero() {
		var err error
		rate, err = s.rates.ResolveRate(ctx, req.CurrencyID, req.Date)
		if err != nil {
			return nil, err
		}
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("%w: exchange rate cannot be negative", apperrors.ErrInvalidAmount)
	}

	payment := domain.SalePayment{
		SaleID:       saleID,
		AccountID:    req.AccountID,
		CurrencyID:   req.CurrencyID,
		ExchangeRate: rate,
		Amount:       req.Amount,
		PaymentDate:  req.Date,
		AuditFields:  utils.NewAuditFields(),
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	logger.InfoContext(ctx, "payment recorded",
		slog.Int64("payment_id", saved.PaymentID),
		slog.Int64("sale_id", saleID),
		slog.String("amount", saved.Amount.String()),
	)
	return saved, nil
}

// DeletePayment reverses a payment's effects on the sale and the linked
// account atomically.
func (s *SettlementService) DeletePayment(ctx context.Context, paymentID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	logger.InfoContext(ctx, "payment deleted", slog.Int64("payment_id", paymentID))
	return nil
}

// ListPayments retrieves a sale's payments in posting order.
func (s *SettlementService) ListPayments(ctx context.Context, saleID int64) ([]domain.SalePayment, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsBySaleID(ctx, saleID)
}
