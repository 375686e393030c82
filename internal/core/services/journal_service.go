package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
	"github.com/shopbooks/shopbooks_backend/internal/utils"
	"github.com/shopbooks/shopbooks_backend/internal/utils/accounting"
)

// JournalService posts and reads double-entry journal entries. Posted entries
// are immutable; corrections happen through new entries.
type JournalService struct {
	journalRepo  portsrepo.JournalRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rates        portssvc.RateResolverSvc
}

// NewJournalService creates a new JournalService.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rates portssvc.RateResolverSvc,
) *JournalService {
	return &JournalService{
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		rates:        rates,
	}
}

var _ portssvc.JournalSvcFacade = (*JournalService)(nil)

// CreateEntry validates the double-entry invariants, resolves the base
// conversion per line, and persists the entry with all its lines atomically.
func (s *JournalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	referenceType := req.ReferenceType
	if referenceType == "" {
		referenceType = domain.ReferenceManual
	}
	if referenceType != domain.ReferenceManual && referenceType != domain.ReferenceSale {
		return nil, apperrors.NewValidationError("unknown reference type " + referenceType)
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lr := range req.Lines {
		lines[i] = domain.JournalLine{
			AccountID:   lr.AccountID,
			CurrencyID:  lr.CurrencyID,
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			Description: lr.Description,
		}
	}

	if err := accounting.ValidateLineSides(lines); err != nil {
		return nil, err
	}
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, err
	}

	for i := range lines {
		if _, err := s.accountRepo.FindAccountByID(ctx, lines[i].AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %d on line %d", apperrors.ErrUnknownReference, lines[i].AccountID, i+1)
			}
			return nil, fmt.Errorf("failed to verify line account: %w", err)
		}
		if _, err := s.currencyRepo.FindCurrencyByID(ctx, lines[i].CurrencyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency %d on line %d", apperrors.ErrUnknownReference, lines[i].CurrencyID, i+1)
			}
			return nil, fmt.Errorf("failed to verify line currency: %w", err)
		}

		rate, err := s.rates.ResolveRate(ctx, lines[i].CurrencyID, req.Date)
		if err != nil {
			return nil, err
		}
		lines[i].ExchangeRate = rate
		lines[i].BaseAmount = lines[i].Amount().Mul(rate)
	}

	entry := domain.JournalEntry{
		EntryDate:     req.Date,
		Description:   req.Description,
		ReferenceType: referenceType,
		ReferenceID:   req.ReferenceID,
		AuditFields:   utils.NewAuditFields(),
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry, lines)
	if err != nil {
		return nil, fmt.Errorf("failed to post journal entry: %w", err)
	}

	savedLines, err := s.journalRepo.FindLinesByEntryID(ctx, saved.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posted lines: %w", err)
	}
	saved.Lines = savedLines

	logger.InfoContext(ctx, "journal entry posted",
		slog.Int64("entry_id", saved.EntryID),
		slog.String("entry_number", saved.EntryNumber),
		slog.Int("lines", len(savedLines)),
	)
	return saved, nil
}

// GetEntryByID retrieves a journal entry with its lines.
func (s *JournalService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entry lines: %w", err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a page of entries newest first.
func (s *JournalService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	entries, total, err := s.journalRepo.ListEntries(ctx, params.Limit(), params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	items := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		items[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return &dto.ListJournalEntriesResponse{Items: items, Total: total}, nil
}
