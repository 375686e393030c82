package mapping

import (
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		EntryNumber:   d.EntryNumber,
		EntryDate:     d.EntryDate,
		Description:   d.Description,
		ReferenceType: d.ReferenceType,
		ReferenceID:   d.ReferenceID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		EntryNumber:   m.EntryNumber,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		CurrencyID:   d.CurrencyID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		ExchangeRate: d.ExchangeRate,
		BaseAmount:   d.BaseAmount,
		Description:  d.Description,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		CurrencyID:   m.CurrencyID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		ExchangeRate: m.ExchangeRate,
		BaseAmount:   m.BaseAmount,
		Description:  m.Description,
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
