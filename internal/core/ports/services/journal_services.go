package services

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its lines.
	GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries with the total count.
	ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateEntry validates, balances, and persists a new journal entry with
	// all its lines atomically.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
