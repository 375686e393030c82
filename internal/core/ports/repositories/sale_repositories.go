package repositories

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// ListSalesFilter holds filtering and ordering options for sale listings.
type ListSalesFilter struct {
	Limit     int
	Offset    int
	Search    string // Matches against sale notes and customer name
	SortBy    string // One of: date, total, paid; defaults to date
	SortOrder string // asc or desc; defaults to desc
}

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale together with its items and additional costs.
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// ListSales retrieves a page of sales plus the total matching count.
	ListSales(ctx context.Context, filter ListSalesFilter) ([]domain.Sale, int, error)

	// FindCostsBySaleID retrieves the additional costs of a sale.
	FindCostsBySaleID(ctx context.Context, saleID int64) ([]domain.AdditionalCost, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists a sale with all items and costs in one transaction.
	SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, costs []domain.AdditionalCost) (*domain.Sale, error)

	// ReplaceSale updates the sale header and replaces the full item and cost
	// collections (delete-then-reinsert) in one transaction. PaidAmount is
	// left untouched.
	ReplaceSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, costs []domain.AdditionalCost) (*domain.Sale, error)

	// DeleteSale removes a sale and cascades to its items, costs, payments,
	// and the account transactions those payments posted, in one transaction.
	DeleteSale(ctx context.Context, saleID int64) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
