package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/utils/pagination"
)

// CreateJournalLineRequest is one line of a new journal entry. Exactly one
// of debit/credit must be positive; the service enforces this beyond what
// binding can express.
type CreateJournalLineRequest struct {
	AccountID   int64           `json:"accountID" binding:"required,gt=0"`
	CurrencyID  int64           `json:"currencyID" binding:"required,gt=0"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to post a journal entry.
type CreateJournalEntryRequest struct {
	Date          time.Time                  `json:"date" binding:"required"`
	Description   string                     `json:"description"`
	ReferenceType string                     `json:"referenceType"`
	ReferenceID   *int64                     `json:"referenceID"`
	Lines         []CreateJournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       int64           `json:"lineID"`
	AccountID    int64           `json:"accountID"`
	CurrencyID   int64           `json:"currencyID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	Description  string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID       int64                 `json:"entryID"`
	EntryNumber   string                `json:"entryNumber"`
	EntryDate     time.Time             `json:"entryDate"`
	Description   string                `json:"description"`
	ReferenceType string                `json:"referenceType"`
	ReferenceID   *int64                `json:"referenceID,omitempty"`
	Lines         []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	pagination.Params
}

// ListJournalEntriesResponse wraps a page of entries with the total count.
type ListJournalEntriesResponse struct {
	Items []JournalEntryResponse `json:"items"`
	Total int                    `json:"total"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       l.LineID,
		AccountID:    l.AccountID,
		CurrencyID:   l.CurrencyID,
		Debit:        l.Debit,
		Credit:       l.Credit,
		ExchangeRate: l.ExchangeRate,
		BaseAmount:   l.BaseAmount,
		Description:  l.Description,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry (and its lines, if
// loaded) to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:       e.EntryID,
		EntryNumber:   e.EntryNumber,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = ToJournalLineResponse(&l)
		}
	}
	return resp
}
