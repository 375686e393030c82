package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/utils/pagination"
)

// SaleItemRequest is one product line of a sale write request.
type SaleItemRequest struct {
	ProductID int64           `json:"productID" binding:"required,gt=0"`
	UnitID    int64           `json:"unitID" binding:"required,gt=0"`
	PerPrice  decimal.Decimal `json:"perPrice" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// AdditionalCostRequest is one extra charge of a sale write request.
type AdditionalCostRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateSaleRequest defines the data needed to create or update a sale.
// Updates replace the full item and cost collections.
type CreateSaleRequest struct {
	CustomerID      int64                   `json:"customerID" binding:"required,gt=0"`
	Date            time.Time               `json:"date" binding:"required"`
	CurrencyID      int64                   `json:"currencyID" binding:"required,gt=0"`
	ExchangeRate    decimal.Decimal         `json:"exchangeRate"` // Zero resolves via the rate resolver
	Notes           string                  `json:"notes"`
	Items           []SaleItemRequest       `json:"items" binding:"required,min=1,dive"`
	AdditionalCosts []AdditionalCostRequest `json:"additionalCosts" binding:"dive"`
}

// SaleItemResponse defines the data returned for a sale item.
type SaleItemResponse struct {
	ItemID    int64           `json:"itemID"`
	ProductID int64           `json:"productID"`
	UnitID    int64           `json:"unitID"`
	PerPrice  decimal.Decimal `json:"perPrice"`
	Quantity  decimal.Decimal `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// AdditionalCostResponse defines the data returned for an additional cost.
type AdditionalCostResponse struct {
	CostID int64           `json:"costID"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID          int64                    `json:"saleID"`
	CustomerID      int64                    `json:"customerID"`
	Date            time.Time                `json:"date"`
	CurrencyID      int64                    `json:"currencyID"`
	ExchangeRate    decimal.Decimal          `json:"exchangeRate"`
	Notes           string                   `json:"notes"`
	TotalAmount     decimal.Decimal          `json:"totalAmount"`
	BaseAmount      decimal.Decimal          `json:"baseAmount"`
	PaidAmount      decimal.Decimal          `json:"paidAmount"`
	Remaining       decimal.Decimal          `json:"remaining"`
	Items           []SaleItemResponse       `json:"items,omitempty"`
	AdditionalCosts []AdditionalCostResponse `json:"additionalCosts,omitempty"`
}

// ToSaleResponse converts a domain.Sale (and loaded children) to its DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	resp := SaleResponse{
		SaleID:       s.SaleID,
		CustomerID:   s.CustomerID,
		Date:         s.SaleDate,
		CurrencyID:   s.CurrencyID,
		ExchangeRate: s.ExchangeRate,
		Notes:        s.Notes,
		TotalAmount:  s.TotalAmount,
		BaseAmount:   s.BaseAmount,
		PaidAmount:   s.PaidAmount,
		Remaining:    s.Remaining(),
	}
	if len(s.Items) > 0 {
		resp.Items = make([]SaleItemResponse, len(s.Items))
		for i, item := range s.Items {
			resp.Items[i] = SaleItemResponse{
				ItemID:    item.ItemID,
				ProductID: item.ProductID,
				UnitID:    item.UnitID,
				PerPrice:  item.PerPrice,
				Quantity:  item.Quantity,
				Total:     item.Total,
			}
		}
	}
	if len(s.AdditionalCosts) > 0 {
		resp.AdditionalCosts = make([]AdditionalCostResponse, len(s.AdditionalCosts))
		for i, cost := range s.AdditionalCosts {
			resp.AdditionalCosts[i] = AdditionalCostResponse{
				CostID: cost.CostID,
				Name:   cost.Name,
				Amount: cost.Amount,
			}
		}
	}
	return resp
}

// ToSaleResponses converts a slice of domain.Sale to DTOs
func ToSaleResponses(ss []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(ss))
	for i, s := range ss {
		res[i] = ToSaleResponse(&s)
	}
	return res
}

// ToAdditionalCostResponses converts a slice of domain.AdditionalCost to DTOs
func ToAdditionalCostResponses(cs []domain.AdditionalCost) []AdditionalCostResponse {
	res := make([]AdditionalCostResponse, len(cs))
	for i, c := range cs {
		res[i] = AdditionalCostResponse{CostID: c.CostID, Name: c.Name, Amount: c.Amount}
	}
	return res
}

// ListSalesParams defines query parameters for listing sales.
type ListSalesParams struct {
	pagination.Params
	Search    string `form:"search"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=date total paid"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// ListSalesResponse wraps a page of sales with the total count.
type ListSalesResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
