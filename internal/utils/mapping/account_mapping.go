package mapping

import (
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		CurrencyID:     d.CurrencyID,
		InitialBalance: d.InitialBalance,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		CurrencyID:     m.CurrencyID,
		InitialBalance: m.InitialBalance,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccountTransaction converts a domain AccountTransaction to a model AccountTransaction
func ToModelAccountTransaction(d domain.AccountTransaction) models.AccountTransaction {
	return models.AccountTransaction{
		TxnID:         d.TxnID,
		AccountID:     d.AccountID,
		TxnType:       string(d.TxnType),
		Amount:        d.Amount,
		CurrencyID:    d.CurrencyID,
		Rate:          d.Rate,
		Total:         d.Total,
		TxnDate:       d.TxnDate,
		IsFull:        d.IsFull,
		Notes:         d.Notes,
		ReferenceType: d.ReferenceType,
		ReferenceID:   d.ReferenceID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountTransaction converts a model AccountTransaction to a domain AccountTransaction
func ToDomainAccountTransaction(m models.AccountTransaction) domain.AccountTransaction {
	return domain.AccountTransaction{
		TxnID:         m.TxnID,
		AccountID:     m.AccountID,
		TxnType:       domain.TransactionType(m.TxnType),
		Amount:        m.Amount,
		CurrencyID:    m.CurrencyID,
		Rate:          m.Rate,
		Total:         m.Total,
		TxnDate:       m.TxnDate,
		IsFull:        m.IsFull,
		Notes:         m.Notes,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountTransactionSlice converts a slice of model AccountTransactions to domain
func ToDomainAccountTransactionSlice(ms []models.AccountTransaction) []domain.AccountTransaction {
	ds := make([]domain.AccountTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccountTransaction(m)
	}
	return ds
}
