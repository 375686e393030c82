package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal entry reference types link auto-generated entries back to the
// business event that created them.
const (
	ReferenceManual = "manual"
	ReferenceSale   = "sale"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple lines. Once persisted an entry is immutable.
type JournalEntry struct {
	EntryID       int64     `json:"entryID"`     // Primary Key
	EntryNumber   string    `json:"entryNumber"` // Unique, sequential, human-readable (JE-000001)
	EntryDate     time.Time `json:"entryDate"`
	Description   string    `json:"description"`
	ReferenceType string    `json:"referenceType"`
	ReferenceID   *int64    `json:"referenceID,omitempty"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"` // Often loaded separately
}

// JournalLine is one posting within a journal entry, against one account,
// in one currency. Exactly one of Debit/Credit is strictly positive and the
// other exactly zero. BaseAmount is a point-in-time snapshot computed at
// creation with the exchange rate effective on the entry date; it is never
// recomputed when the base currency changes later.
type JournalLine struct {
	LineID       int64           `json:"lineID"` // Primary Key
	EntryID      int64           `json:"entryID"`
	AccountID    int64           `json:"accountID"`
	CurrencyID   int64           `json:"currencyID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	Description  string          `json:"description"`
}

// Amount returns the line's posted amount regardless of side.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// IsDebit reports whether the line posts to the debit side.
func (l JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}
