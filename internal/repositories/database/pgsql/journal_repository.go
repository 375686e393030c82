package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

// PgxJournalRepository implements the journal repository using pgxpool.
type PgxJournalRepository struct {
	BaseRepository
}

// NewPgxJournalRepository creates a new PgxJournalRepository.
func NewPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalEntryColumns = `entry_id, entry_number, entry_date, description, reference_type, reference_id, created_at, last_updated_at`

func scanJournalEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEntry persists the entry and its lines in one transaction. The entry
// number comes from the journal_sequence row, incremented inside the same
// transaction, so a failed insert never consumes a number.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var nextNumber int64
	err = tx.QueryRow(ctx, `UPDATE journal_sequence SET last_number = last_number + 1 WHERE sequence_id = 1 RETURNING last_number;`).Scan(&nextNumber)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to advance journal sequence", err)
	}

	m := mapping.ToModelJournalEntry(entry)
	m.EntryNumber = fmt.Sprintf("JE-%06d", nextNumber)

	err = tx.QueryRow(ctx, `
		INSERT INTO journal_entries (entry_number, entry_date, description, reference_type, reference_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING entry_id;
	`, m.EntryNumber, m.EntryDate, m.Description, m.ReferenceType, m.ReferenceID, m.CreatedAt, m.LastUpdatedAt).Scan(&m.EntryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entry", err)
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelJournalLine(line)
		batch.Queue(`
			INSERT INTO journal_lines (entry_id, account_id, currency_id, debit, credit, exchange_rate, base_amount, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`, m.EntryID, lm.AccountID, lm.CurrencyID, lm.Debit, lm.Credit, lm.ExchangeRate, lm.BaseAmount, lm.Description)
	}
	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to insert journal line", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close journal line batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainJournalEntry(m)
	return &saved, nil
}

// FindEntryByID retrieves a journal entry without its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+strconv.FormatInt(entryID, 10), err)
	}
	d := mapping.ToDomainJournalEntry(*m)
	return &d, nil
}

// FindLinesByEntryID retrieves all lines of a journal entry in line order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, currency_id, debit, credit, exchange_rate, base_amount, description
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	ms := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.CurrencyID, &m.Debit, &m.Credit, &m.ExchangeRate, &m.BaseAmount, &m.Description)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return mapping.ToDomainJournalLineSlice(ms), nil
}

// ListEntries retrieves a page of entries newest first with the total count.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit, offset int) ([]domain.JournalEntry, int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count journal entries", err)
	}

	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		ORDER BY entry_date DESC, entry_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return entries, total, nil
}
