package mapping

import (
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:       d.SaleID,
		CustomerID:   d.CustomerID,
		SaleDate:     d.SaleDate,
		CurrencyID:   d.CurrencyID,
		ExchangeRate: d.ExchangeRate,
		Notes:        d.Notes,
		TotalAmount:  d.TotalAmount,
		BaseAmount:   d.BaseAmount,
		PaidAmount:   d.PaidAmount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:       m.SaleID,
		CustomerID:   m.CustomerID,
		SaleDate:     m.SaleDate,
		CurrencyID:   m.CurrencyID,
		ExchangeRate: m.ExchangeRate,
		Notes:        m.Notes,
		TotalAmount:  m.TotalAmount,
		BaseAmount:   m.BaseAmount,
		PaidAmount:   m.PaidAmount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleItem converts a domain SaleItem to a model SaleItem
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		ItemID:    d.ItemID,
		SaleID:    d.SaleID,
		ProductID: d.ProductID,
		UnitID:    d.UnitID,
		PerPrice:  d.PerPrice,
		Quantity:  d.Quantity,
		Total:     d.Total,
	}
}

// ToModelAdditionalCost converts a domain AdditionalCost to a model AdditionalCost
func ToModelAdditionalCost(d domain.AdditionalCost) models.AdditionalCost {
	return models.AdditionalCost{
		CostID: d.CostID,
		SaleID: d.SaleID,
		Name:   d.Name,
		Amount: d.Amount,
	}
}

// ToDomainSaleItem converts a model SaleItem to a domain SaleItem
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		ItemID:    m.ItemID,
		SaleID:    m.SaleID,
		ProductID: m.ProductID,
		UnitID:    m.UnitID,
		PerPrice:  m.PerPrice,
		Quantity:  m.Quantity,
		Total:     m.Total,
	}
}

// ToDomainSaleItemSlice converts a slice of model SaleItems to domain
func ToDomainSaleItemSlice(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleItem(m)
	}
	return ds
}

// ToDomainAdditionalCost converts a model AdditionalCost to a domain AdditionalCost
func ToDomainAdditionalCost(m models.AdditionalCost) domain.AdditionalCost {
	return domain.AdditionalCost{
		CostID: m.CostID,
		SaleID: m.SaleID,
		Name:   m.Name,
		Amount: m.Amount,
	}
}

// ToDomainAdditionalCostSlice converts a slice of model AdditionalCosts to domain
func ToDomainAdditionalCostSlice(ms []models.AdditionalCost) []domain.AdditionalCost {
	ds := make([]domain.AdditionalCost, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdditionalCost(m)
	}
	return ds
}

// ToModelSalePayment converts a domain SalePayment to a model SalePayment
func ToModelSalePayment(d domain.SalePayment) models.SalePayment {
	return models.SalePayment{
		PaymentID:    d.PaymentID,
		SaleID:       d.SaleID,
		AccountID:    d.AccountID,
		CurrencyID:   d.CurrencyID,
		ExchangeRate: d.ExchangeRate,
		Amount:       d.Amount,
		PaymentDate:  d.PaymentDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalePayment converts a model SalePayment to a domain SalePayment
func ToDomainSalePayment(m models.SalePayment) domain.SalePayment {
	return domain.SalePayment{
		PaymentID:    m.PaymentID,
		SaleID:       m.SaleID,
		AccountID:    m.AccountID,
		CurrencyID:   m.CurrencyID,
		ExchangeRate: m.ExchangeRate,
		Amount:       m.Amount,
		PaymentDate:  m.PaymentDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSalePaymentSlice converts a slice of model SalePayments to domain
func ToDomainSalePaymentSlice(ms []models.SalePayment) []domain.SalePayment {
	ds := make([]domain.SalePayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalePayment(m)
	}
	return ds
}
