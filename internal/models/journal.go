package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors the journal_entries table.
type JournalEntry struct {
	EntryID       int64
	EntryNumber   string
	EntryDate     time.Time
	Description   string
	ReferenceType string
	ReferenceID   *int64
	AuditFields
}

// JournalLine mirrors the journal_lines table.
type JournalLine struct {
	LineID       int64
	EntryID      int64
	AccountID    int64
	CurrencyID   int64
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	ExchangeRate decimal.Decimal
	BaseAmount   decimal.Decimal
	Description  string
}
