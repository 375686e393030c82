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

// PgxPaymentRepository implements the sale payment repository using pgxpool.
type PgxPaymentRepository struct {
	BaseRepository
}

// NewPgxPaymentRepository creates a new PgxPaymentRepository.
func NewPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, sale_id, account_id, currency_id, exchange_rate, amount, payment_date, created_at, last_updated_at`

func scanPayment(row pgx.Row) (*models.SalePayment, error) {
	var m models.SalePayment
	err := row.Scan(
		&m.PaymentID,
		&m.SaleID,
		&m.AccountID,
		&m.CurrencyID,
		&m.ExchangeRate,
		&m.Amount,
		&m.PaymentDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// recomputePaidAmount rewrites the sale's paid_amount as the sum of its live
// payments. Summing in SQL inside the surrounding transaction keeps the
// stored figure consistent with the payment rows.
func recomputePaidAmount(ctx context.Context, tx pgx.Tx, saleID int64) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE sales
		SET paid_amount = COALESCE((SELECT SUM(amount) FROM sale_payments WHERE sale_id = $1), 0),
		    last_updated_at = NOW()
		WHERE sale_id = $1;
	`, saleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to recompute sale paid amount", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("sale " + strconv.FormatInt(saleID, 10) + " not found")
	}
	return nil
}

// SavePayment inserts the payment, recomputes the sale's paid amount, and
// posts the matching account transaction when an account is attached.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.SalePayment) (*domain.SalePayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelSalePayment(payment)
	err = tx.QueryRow(ctx, `
		INSERT INTO sale_payments (sale_id, account_id, currency_id, exchange_rate, amount, payment_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING payment_id;
	`, m.SaleID, m.AccountID, m.CurrencyID, m.ExchangeRate, m.Amount, m.PaymentDate, m.CreatedAt, m.LastUpdatedAt).Scan(&m.PaymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert sale payment", err)
	}

	if err := recomputePaidAmount(ctx, tx, m.SaleID); err != nil {
		return nil, err
	}

	if m.AccountID != nil {
		// The posting stays in the payment's currency, so its rate is 1.
		_, err = tx.Exec(ctx, `
			INSERT INTO account_transactions (account_id, txn_type, amount, currency_id, rate, total, txn_date, is_full, notes, reference_type, reference_id, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, 1, $5, $6, FALSE, '', $7, $8, $9, $10);
		`, *m.AccountID, string(domain.Deposit), m.Amount, m.CurrencyID, m.Amount,
			m.PaymentDate, domain.ReferenceSalePayment, m.PaymentID, m.CreatedAt, m.LastUpdatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to post payment account transaction", err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainSalePayment(m)
	return &saved, nil
}

// DeletePayment removes the payment, its account transaction, and recomputes
// the sale's paid amount, all atomically.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var saleID int64
	err = tx.QueryRow(ctx, `SELECT sale_id FROM sale_payments WHERE payment_id = $1 FOR UPDATE;`, paymentID).Scan(&saleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("payment " + strconv.FormatInt(paymentID, 10) + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock sale payment", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM account_transactions WHERE reference_type = $1 AND reference_id = $2;`, domain.ReferenceSalePayment, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment account transaction", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_payments WHERE payment_id = $1;`, paymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete sale payment", err)
	}

	if err := recomputePaidAmount(ctx, tx, saleID); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.SalePayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM sale_payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+strconv.FormatInt(paymentID, 10), err)
	}
	d := mapping.ToDomainSalePayment(*m)
	return &d, nil
}

// ListPaymentsBySaleID retrieves a sale's payments in posting order.
func (r *PgxPaymentRepository) ListPaymentsBySaleID(ctx context.Context, saleID int64) ([]domain.SalePayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM sale_payments
		WHERE sale_id = $1
		ORDER BY payment_date ASC, payment_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sale payments", err)
	}
	defer rows.Close()

	ms := []models.SalePayment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale payment row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale payment rows", err)
	}
	return mapping.ToDomainSalePaymentSlice(ms), nil
}
