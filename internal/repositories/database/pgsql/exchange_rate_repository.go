package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange rate repository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `rate_id, from_currency_id, to_currency_id, rate, rate_date, created_at, last_updated_at`

func scanExchangeRate(row pgx.Row) (*models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.RateID,
		&m.FromCurrencyID,
		&m.ToCurrencyID,
		&m.Rate,
		&m.RateDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveExchangeRate upserts the rate for a currency pair and date. Posting a
// second rate for the same pair and date replaces the first.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	m := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (from_currency_id, to_currency_id, rate, rate_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (from_currency_id, to_currency_id, rate_date)
		DO UPDATE SET rate = EXCLUDED.rate, last_updated_at = EXCLUDED.last_updated_at
		RETURNING rate_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.FromCurrencyID, m.ToCurrencyID, m.Rate, m.RateDate, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&m.RateID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save exchange rate", err)
	}

	saved := mapping.ToDomainExchangeRate(m)
	return &saved, nil
}

// FindRateOnOrBefore retrieves the most recent rate for the pair dated on or
// before asOf.
func (r *PgxExchangeRateRepository) FindRateOnOrBefore(ctx context.Context, fromCurrencyID, toCurrencyID int64, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_id = $1 AND to_currency_id = $2 AND rate_date <= $3
		ORDER BY rate_date DESC
		LIMIT 1;
	`
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, fromCurrencyID, toCurrencyID, asOf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}
	d := mapping.ToDomainExchangeRate(*m)
	return &d, nil
}

// ListExchangeRates retrieves rates newest first with optional pair filtering.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, fromCurrencyID, toCurrencyID *int64, limit, offset int) ([]domain.ExchangeRate, int, error) {
	filter := ` WHERE ($1::BIGINT IS NULL OR from_currency_id = $1) AND ($2::BIGINT IS NULL OR to_currency_id = $2)`

	var total int
	countQuery := `SELECT COUNT(*) FROM exchange_rates` + filter + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, fromCurrencyID, toCurrencyID).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count exchange rates", err)
	}

	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates` + filter + `
		ORDER BY rate_date DESC, rate_id DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, fromCurrencyID, toCurrencyID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query exchange rates", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan exchange rate row", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating exchange rate rows", err)
	}
	return rates, total, nil
}
