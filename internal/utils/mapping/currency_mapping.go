package mapping

import (
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:  d.CurrencyID,
		Code:        d.Code,
		Name:        d.Name,
		Symbol:      d.Symbol,
		Precision:   d.Precision,
		IsBase:      d.IsBase,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:  m.CurrencyID,
		Code:        m.Code,
		Name:        m.Name,
		Symbol:      m.Symbol,
		Precision:   m.Precision,
		IsBase:      m.IsBase,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		RateID:         d.RateID,
		FromCurrencyID: d.FromCurrencyID,
		ToCurrencyID:   d.ToCurrencyID,
		Rate:           d.Rate,
		RateDate:       d.RateDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		RateID:         m.RateID,
		FromCurrencyID: m.FromCurrencyID,
		ToCurrencyID:   m.ToCurrencyID,
		Rate:           m.Rate,
		RateDate:       m.RateDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
