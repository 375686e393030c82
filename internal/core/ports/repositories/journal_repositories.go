package repositories

import (
	"context"

	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry (without lines).
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of a journal entry.
	FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.JournalLine, error)

	// ListEntries retrieves a page of entries ordered by entry_date desc,
	// entry_id desc, together with the total entry count.
	ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, int, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveEntry persists an entry and all its lines in one transaction,
	// assigning the next sequential entry number from the journal sequence
	// row. Numbers are never reused; a failed insert rolls back everything
	// including the sequence increment.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
