package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	"github.com/shopbooks/shopbooks_backend/internal/core/domain"
	portsrepo "github.com/shopbooks/shopbooks_backend/internal/core/ports/repositories"
	"github.com/shopbooks/shopbooks_backend/internal/models"
	"github.com/shopbooks/shopbooks_backend/internal/utils/mapping"
)

// PgxAccountRepository implements the account repository using pgxpool.
type PgxAccountRepository struct {
	BaseRepository
}

// NewPgxAccountRepository creates a new PgxAccountRepository.
func NewPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, currency_id, initial_balance, notes, created_at, last_updated_at`

const accountTxnColumns = `txn_id, account_id, txn_type, amount, currency_id, rate, total, txn_date, is_full, notes, reference_type, reference_id, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.CurrencyID,
		&m.InitialBalance,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanAccountTransaction(row pgx.Row) (*models.AccountTransaction, error) {
	var m models.AccountTransaction
	err := row.Scan(
		&m.TxnID,
		&m.AccountID,
		&m.TxnType,
		&m.Amount,
		&m.CurrencyID,
		&m.Rate,
		&m.Total,
		&m.TxnDate,
		&m.IsFull,
		&m.Notes,
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

// SaveAccount inserts a new account and returns it with its assigned ID.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (name, currency_id, initial_balance, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING account_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.CurrencyID, m.InitialBalance, m.Notes, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&m.AccountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert account "+m.Name, err)
	}

	saved := mapping.ToDomainAccount(m)
	return &saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+strconv.FormatInt(accountID, 10), err)
	}
	d := mapping.ToDomainAccount(*m)
	return &d, nil
}

// ListAccounts retrieves all accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// Balance derives the balance for one currency from the transaction log.
// The stored initial_balance contributes only when the account's own currency
// matches the requested one. Balances are never stored, so deleting a
// transaction reverses its effect with no compensating write.
func (r *PgxAccountRepository) Balance(ctx context.Context, accountID, currencyID int64, asOf *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT initial_balance FROM accounts WHERE account_id = $1 AND currency_id = $2), 0)
			+ COALESCE((
				SELECT SUM(CASE WHEN txn_type = 'DEPOSIT' THEN total ELSE -total END)
				FROM account_transactions
				WHERE account_id = $1 AND currency_id = $2 AND ($3::TIMESTAMPTZ IS NULL OR txn_date <= $3)
			), 0);
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, currencyID, asOf).Scan(&balance); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to derive account balance", err)
	}
	return balance, nil
}

// ListTransactions retrieves an account's transactions, newest first.
func (r *PgxAccountRepository) ListTransactions(ctx context.Context, accountID int64) ([]domain.AccountTransaction, error) {
	query := `
		SELECT ` + accountTxnColumns + `
		FROM account_transactions
		WHERE account_id = $1
		ORDER BY txn_date DESC, txn_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account transactions", err)
	}
	defer rows.Close()

	ms := []models.AccountTransaction{}
	for rows.Next() {
		m, err := scanAccountTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account transaction row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account transaction rows", err)
	}
	return mapping.ToDomainAccountTransactionSlice(ms), nil
}

// SaveTransaction inserts a single account transaction.
func (r *PgxAccountRepository) SaveTransaction(ctx context.Context, txn domain.AccountTransaction) (*domain.AccountTransaction, error) {
	m := mapping.ToModelAccountTransaction(txn)
	query := `
		INSERT INTO account_transactions (account_id, txn_type, amount, currency_id, rate, total, txn_date, is_full, notes, reference_type, reference_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING txn_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.AccountID, m.TxnType, m.Amount, m.CurrencyID, m.Rate, m.Total, m.TxnDate,
		m.IsFull, m.Notes, m.ReferenceType, m.ReferenceID, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&m.TxnID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert account transaction", err)
	}

	saved := mapping.ToDomainAccountTransaction(m)
	return &saved, nil
}

// DeleteTransaction removes a manual transaction. The derived balance
// reflects the removal immediately. Settlement postings are only removed
// through their payment, which keeps the sale's paid amount in step.
func (r *PgxAccountRepository) DeleteTransaction(ctx context.Context, txnID int64) error {
	var referenceType string
	err := r.Pool.QueryRow(ctx, `SELECT reference_type FROM account_transactions WHERE txn_id = $1;`, txnID).Scan(&referenceType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("transaction " + strconv.FormatInt(txnID, 10) + " not found")
		}
		return apperrors.NewAppError(500, "failed to load account transaction", err)
	}
	if referenceType == domain.ReferenceSalePayment {
		return apperrors.ErrConflict
	}

	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM account_transactions WHERE txn_id = $1;`, txnID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete account transaction", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + strconv.FormatInt(txnID, 10) + " not found")
	}
	return nil
}

// DeleteAccount removes an account and its own transactions unless journal
// lines or sale payments still reference it.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// The reference check runs inside the delete transaction so no journal
	// line or payment can attach between the check and the delete.
	query := `
		SELECT EXISTS(SELECT 1 FROM journal_lines WHERE account_id = $1)
		    OR EXISTS(SELECT 1 FROM sale_payments WHERE account_id = $1);
	`
	var inUse bool
	if err := tx.QueryRow(ctx, query, accountID).Scan(&inUse); err != nil {
		return apperrors.NewAppError(500, "failed to check account references", err)
	}
	if inUse {
		return apperrors.ErrAccountInUse
	}

	if _, err := tx.Exec(ctx, `DELETE FROM account_transactions WHERE account_id = $1;`, accountID); err != nil {
		return apperrors.NewAppError(500, "failed to delete account transactions", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete account", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + strconv.FormatInt(accountID, 10) + " not found")
	}

	return r.Commit(ctx, tx)
}
