package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

// PgxCurrencyRepository implements the currency repository using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new PgxCurrencyRepository.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_id, code, name, symbol, precision, is_base, created_at, last_updated_at`

func scanCurrency(row pgx.Row) (*models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.CurrencyID,
		&m.Code,
		&m.Name,
		&m.Symbol,
		&m.Precision,
		&m.IsBase,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCurrency inserts a new currency and returns it with its assigned ID.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (code, name, symbol, precision, is_base, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING currency_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Code, m.Name, m.Symbol, m.Precision, m.IsBase, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&m.CurrencyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert currency "+m.Code, err)
	}

	saved := mapping.ToDomainCurrency(m)
	return &saved, nil
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = $1;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find currency by ID "+strconv.FormatInt(currencyID, 10), err)
	}
	d := mapping.ToDomainCurrency(*m)
	return &d, nil
}

// FindBaseCurrency retrieves the single currency marked as base.
func (r *PgxCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE is_base;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no base currency configured")
		}
		return nil, apperrors.NewAppError(500, "failed to find base currency", err)
	}
	d := mapping.ToDomainCurrency(*m)
	return &d, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", err)
	}
	defer rows.Close()

	currencies := []domain.Currency{}
	for rows.Next() {
		m, err := scanCurrency(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency row", err)
		}
		currencies = append(currencies, mapping.ToDomainCurrency(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rows", err)
	}
	return currencies, nil
}

// SetBaseCurrency switches the base flag in one transaction so no reader
// ever observes zero or two base currencies.
func (r *PgxCurrencyRepository) SetBaseCurrency(ctx context.Context, currencyID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// The single-base unique index is enforced per statement, so the old
	// base must be cleared before the new one is claimed.
	_, err = tx.Exec(ctx, `UPDATE currencies SET is_base = FALSE, last_updated_at = NOW() WHERE is_base AND currency_id <> $1;`, currencyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to unmark previous base currency", err)
	}

	cmdTag, err := tx.Exec(ctx, `UPDATE currencies SET is_base = TRUE, last_updated_at = NOW() WHERE currency_id = $1;`, currencyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark base currency", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + strconv.FormatInt(currencyID, 10) + " not found")
	}

	return r.Commit(ctx, tx)
}

// DeleteCurrency removes a currency unless accounts, exchange rates,
// journal lines, or sales still reference it.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// The reference check runs inside the delete transaction so no row can
	// start referencing the currency between the check and the delete.
	query := `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE currency_id = $1)
		    OR EXISTS(SELECT 1 FROM exchange_rates WHERE from_currency_id = $1 OR to_currency_id = $1)
		    OR EXISTS(SELECT 1 FROM journal_lines WHERE currency_id = $1)
		    OR EXISTS(SELECT 1 FROM sales WHERE currency_id = $1);
	`
	var inUse bool
	if err := tx.QueryRow(ctx, query, currencyID).Scan(&inUse); err != nil {
		return apperrors.NewAppError(500, "failed to check currency references", err)
	}
	if inUse {
		return apperrors.ErrCurrencyInUse
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1;`, currencyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete currency", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + strconv.FormatInt(currencyID, 10) + " not found")
	}
	return r.Commit(ctx, tx)
}
