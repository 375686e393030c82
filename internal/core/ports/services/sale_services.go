package services

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// SaleReaderSvc defines read operations for sale data
type SaleReaderSvc interface {
	// GetSaleByID retrieves a sale with its items and additional costs.
	GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// ListSales retrieves a page of sales with the total matching count.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)

	// GetAdditionalCosts retrieves the additional costs of a sale.
	GetAdditionalCosts(ctx context.Context, saleID int64) ([]domain.AdditionalCost, error)
}

// SaleWriterSvc defines write operations for sale data
type SaleWriterSvc interface {
	// CreateSale validates and persists a sale with its items and costs.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// UpdateSale replaces the sale's header, items, and costs, recomputing
	// all totals from the full child set.
	UpdateSale(ctx context.Context, saleID int64, req dto.CreateSaleRequest) (*domain.Sale, error)

	// DeleteSale removes a sale, cascading to items, costs, and payments and
	// reversing any account-balance effects of the payments.
	DeleteSale(ctx context.Context, saleID int64) error
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}

// SettlementSvcFacade records and reverses payments against sales.
type SettlementSvcFacade interface {
	// AddPayment records a payment, recomputes the sale's paid amount, and
	// posts the optional account transaction atomically.
	AddPayment(ctx context.Context, saleID int64, req dto.CreatePaymentRequest) (*domain.SalePayment, error)

	// DeletePayment reverses a payment's effects on the sale and the linked
	// account atomically.
	DeletePayment(ctx context.Context, paymentID int64) error

	// ListPayments retrieves a sale's payments ordered by date asc, id asc.
	ListPayments(ctx context.Context, saleID int64) ([]domain.SalePayment, error)
}
